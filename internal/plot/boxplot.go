// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package plot

import (
	"fmt"
	"math"

	"github.com/tomtom215/edakit/internal/table"
)

// DefaultBoxCoef is the conventional whisker reach in multiples of the IQR.
const DefaultBoxCoef = 1.5

// BoxStats holds the five-number summary drawn by a box plot.
// The whiskers end at the most extreme values inside the fences
// Q1 - coef*IQR and Q3 + coef*IQR; values beyond them are outliers.
// When every value is an outlier the whiskers collapse onto Q1 and Q3.
type BoxStats struct {
	Column       string    `json:"column"`
	N            int       `json:"n"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	IQR          float64   `json:"iqr"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
	Style        Style     `json:"style"`
}

// BoxPlot computes box plot statistics over the non-absent values of a
// numeric column.
func BoxPlot(col *table.Column, coef float64, style Style) (*BoxStats, error) {
	if coef <= 0 || math.IsNaN(coef) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCoef, coef)
	}
	values, err := numericValues(col)
	if err != nil {
		return nil, err
	}

	b := &BoxStats{
		Column:   col.Name,
		N:        len(values),
		Q1:       quantile(values, 0.25),
		Median:   quantile(values, 0.5),
		Q3:       quantile(values, 0.75),
		Outliers: []float64{},
		Style:    style.withDefaults(col.Name, ""),
	}
	b.IQR = b.Q3 - b.Q1
	lowFence, highFence := b.Q1-coef*b.IQR, b.Q3+coef*b.IQR

	b.LowerWhisker, b.UpperWhisker = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < lowFence || v > highFence {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		b.LowerWhisker = math.Min(b.LowerWhisker, v)
		b.UpperWhisker = math.Max(b.UpperWhisker, v)
	}
	if len(b.Outliers) == len(values) {
		b.LowerWhisker, b.UpperWhisker = b.Q1, b.Q3
	}
	return b, nil
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}

// Table returns the statistics as a two-column name/value table.
func (b *BoxStats) Table() *table.Table {
	names := []any{"n", "lower_whisker", "q1", "median", "q3", "upper_whisker", "iqr", "outliers"}
	values := []any{
		float64(b.N), b.LowerWhisker, b.Q1, b.Median, b.Q3, b.UpperWhisker, b.IQR, float64(len(b.Outliers)),
	}
	return table.MustNew(
		table.NewColumn("statistic", table.KindText, names...),
		table.NewColumn("value", table.KindFloat, values...),
	)
}
