// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package plot

import "errors"

var (
	// ErrNoValues is returned when a column has no non-absent values to plot.
	ErrNoValues = errors.New("no values to plot")

	// ErrInvalidBins is returned for a histogram bin count below 1.
	ErrInvalidBins = errors.New("bin count must be at least 1")

	// ErrInvalidCoef is returned for a non-positive box plot whisker coefficient.
	ErrInvalidCoef = errors.New("whisker coefficient must be positive")

	// ErrNonNumericColumn is returned when a numeric chart targets a non-numeric column.
	ErrNonNumericColumn = errors.New("non-numeric column")

	// ErrNotTimestamp is returned when a time series column holds values that
	// are not timestamps.
	ErrNotTimestamp = errors.New("column is not a timestamp")
)

