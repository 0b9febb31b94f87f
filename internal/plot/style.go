// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package plot

import (
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/edakit/internal/table"
)

// Style carries the presentation attributes of a chart.
type Style struct {
	Title  string `json:"title,omitempty"`
	XLabel string `json:"x_label,omitempty"`
	YLabel string `json:"y_label,omitempty"`
}

// withDefaults fills empty labels from the column name and chart kind.
func (s Style) withDefaults(xLabel, yLabel string) Style {
	if s.XLabel == "" {
		s.XLabel = xLabel
	}
	if s.YLabel == "" {
		s.YLabel = yLabel
	}
	return s
}

// numericValues returns the finite values of a numeric column, sorted.
// Absent cells and infinities are skipped.
func numericValues(col *table.Column) ([]float64, error) {
	if !col.Kind.IsNumeric() {
		return nil, fmt.Errorf("%w: %q is %s", ErrNonNumericColumn, col.Name, col.Kind)
	}

	values := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		if f, ok := table.AsFloat(v); ok && !math.IsInf(f, 0) {
			values = append(values, f)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoValues, col.Name)
	}
	sort.Float64s(values)
	return values, nil
}
