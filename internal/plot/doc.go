// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

/*
Package plot computes the data behind common exploratory charts and renders
tables as text or JSON.

The helpers do not draw. Each one reduces a column to the numbers a chart
needs and returns them together with a Style carrying the chart title and
axis labels:

  - Histogram: equal-width bins over the non-absent values of a numeric column
  - BoxPlot: quartiles by linear interpolation, whiskers at coef times the IQR, outliers
  - CountPlot: value counts ordered by count, then by first occurrence
  - DailySeries: per-day counts of a timestamp column with empty days filled in

Every result converts to a *table.Table, so RenderTable and WriteJSON serve
both raw query results and chart data:

	hist, err := plot.Histogram(col, 10, plot.Style{Title: "Call duration"})
	if err != nil {
	    return err
	}
	plot.RenderTable(os.Stdout, hist.Table(), hist.Style)
*/
package plot
