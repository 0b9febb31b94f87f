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

// Bin is one histogram bucket covering [Lower, Upper). The last bin of a
// histogram also includes its upper edge.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// DensityPoint is one point of a kernel density estimate.
type DensityPoint struct {
	X       float64 `json:"x"`
	Density float64 `json:"density"`
}

// HistogramData holds the bins of a histogram and the kernel density
// estimate drawn over it.
type HistogramData struct {
	Column    string         `json:"column"`
	Bins      []Bin          `json:"bins"`
	Total     int            `json:"total"`
	Bandwidth float64        `json:"bandwidth,omitempty"`
	KDE       []DensityPoint `json:"kde,omitempty"`
	Style     Style          `json:"style"`
}

// Histogram splits the finite values of a numeric column into bins
// equal-width bins spanning the value range. When every value is equal the
// range is widened by 0.5 on each side.
//
// A Gaussian kernel density estimate with Scott's rule bandwidth is evaluated
// at the bin centres. It is omitted when the sample has fewer than two values
// or zero variance.
func Histogram(col *table.Column, bins int, style Style) (*HistogramData, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBins, bins)
	}
	values, err := numericValues(col)
	if err != nil {
		return nil, err
	}

	lo, hi := values[0], values[len(values)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	n := float64(bins)
	width := (hi - lo) / n
	if math.IsInf(width, 0) {
		width = hi/n - lo/n
	}

	h := &HistogramData{
		Column: col.Name,
		Bins:   make([]Bin, bins),
		Total:  len(values),
		Style:  style.withDefaults(col.Name, "count"),
	}
	edge := func(i int) float64 {
		if e := lo + float64(i)*width; !math.IsInf(e, 0) {
			return e
		}
		f := float64(i) / n
		return (1-f)*lo + f*hi
	}
	for i := range h.Bins {
		h.Bins[i].Lower = edge(i)
		h.Bins[i].Upper = edge(i + 1)
	}
	h.Bins[bins-1].Upper = hi

	for _, v := range values {
		pos := (v - lo) / width
		if math.IsInf(pos, 0) {
			pos = v/width - lo/width
		}
		h.Bins[binIndex(pos, bins)].Count++
	}

	if bw := scottBandwidth(values); bw > 0 {
		h.Bandwidth = bw
		h.KDE = make([]DensityPoint, bins)
		for i, b := range h.Bins {
			x := b.Lower + (b.Upper-b.Lower)/2
			h.KDE[i] = DensityPoint{X: x, Density: gaussianKDE(values, bw, x)}
		}
	}
	return h, nil
}

// binIndex clamps a fractional bin position to [0, bins).
func binIndex(pos float64, bins int) int {
	switch {
	case !(pos >= 0):
		return 0
	case pos >= float64(bins):
		return bins - 1
	}
	return int(pos)
}

// scottBandwidth returns sigma * n^(-1/5) using the sample standard deviation,
// or 0 when no density can be estimated.
func scottBandwidth(values []float64) float64 {
	n := float64(len(values))
	if len(values) < 2 {
		return 0
	}

	var mean float64
	for _, v := range values {
		mean += v / n
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	bw := math.Sqrt(ss/(n-1)) * math.Pow(n, -0.2)
	if bw == 0 || math.IsInf(bw, 0) || math.IsNaN(bw) {
		return 0
	}
	return bw
}

// gaussianKDE evaluates the Gaussian kernel density estimate of values at x.
func gaussianKDE(values []float64, bandwidth, x float64) float64 {
	var sum float64
	for _, v := range values {
		z := (x - v) / bandwidth
		sum += math.Exp(-0.5 * z * z)
	}
	return sum / (float64(len(values)) * bandwidth * math.Sqrt(2*math.Pi))
}

// Table returns one row per bin. Density cells are absent when no
// density estimate was computed.
func (h *HistogramData) Table() *table.Table {
	lower := make([]any, len(h.Bins))
	upper := make([]any, len(h.Bins))
	count := make([]any, len(h.Bins))
	density := make([]any, len(h.Bins))
	for i, b := range h.Bins {
		lower[i], upper[i], count[i] = b.Lower, b.Upper, b.Count
		if i < len(h.KDE) {
			density[i] = h.KDE[i].Density
		}
	}
	return table.MustNew(
		table.NewColumn("lower", table.KindFloat, lower...),
		table.NewColumn("upper", table.KindFloat, upper...),
		table.NewColumn("count", table.KindInteger, count...),
		table.NewColumn("density", table.KindFloat, density...),
	)
}
