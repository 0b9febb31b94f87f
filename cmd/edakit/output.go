// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/edakit/internal/metrics"
	"github.com/tomtom215/edakit/internal/plot"
	"github.com/tomtom215/edakit/internal/table"
)

func jsonOutput(env *environment) bool {
	return *env.flags.format == "json"
}

// emitTable prints a table in the selected format.
func emitTable(env *environment, t *table.Table, style plot.Style) error {
	if jsonOutput(env) {
		return plot.WriteJSON(env.stdout, t)
	}
	plot.RenderTable(env.stdout, t, style)
	return nil
}

// emitValue prints a single result value.
func emitValue(env *environment, column string, v any) error {
	if jsonOutput(env) {
		return json.NewEncoder(env.stdout).Encode(struct {
			Column string `json:"column"`
			Value  any    `json:"value"`
		}{column, v})
	}
	_, err := fmt.Fprintln(env.stdout, plot.FormatCell(v))
	return err
}

// emitChart prints chart data: the full structure as JSON, or its table form.
func emitChart(env *environment, data any, t *table.Table, style plot.Style) error {
	if jsonOutput(env) {
		return json.NewEncoder(env.stdout).Encode(data)
	}
	plot.RenderTable(env.stdout, t, style)
	return nil
}

// dumpMetrics writes the edakit and circuit breaker metrics to w.
func dumpMetrics(w io.Writer) error {
	return metrics.WriteText(w, prometheus.DefaultGatherer, "edakit_", "circuit_breaker_")
}
