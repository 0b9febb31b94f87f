// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package plot

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/edakit/internal/table"
)

// ValueCount is one bar of a count plot.
type ValueCount struct {
	Value any `json:"value"`
	Count int `json:"count"`
}

// CountData holds the bars of a count plot.
type CountData struct {
	Column string       `json:"column"`
	Kind   table.Kind   `json:"-"`
	Counts []ValueCount `json:"counts"`
	Style  Style        `json:"style"`
}

// CountPlot counts the non-absent values of a column. Bars are ordered by
// count, highest first; equal counts keep first-occurrence order.
func CountPlot(col *table.Column, style Style) (*CountData, error) {
	index := make(map[any]int)
	var counts []ValueCount
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		k := countKey(v)
		i, ok := index[k]
		if !ok {
			i = len(counts)
			index[k] = i
			counts = append(counts, ValueCount{Value: v})
		}
		counts[i].Count++
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoValues, col.Name)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return &CountData{
		Column: col.Name,
		Kind:   col.Kind,
		Counts: counts,
		Style:  style.withDefaults(col.Name, "count"),
	}, nil
}

// Table returns one row per distinct value.
func (c *CountData) Table() *table.Table {
	values := make([]any, len(c.Counts))
	counts := make([]any, len(c.Counts))
	for i, vc := range c.Counts {
		values[i], counts[i] = vc.Value, vc.Count
	}
	return table.MustNew(
		table.NewColumn(c.Column, c.Kind, values...),
		table.NewColumn("count", table.KindInteger, counts...),
	)
}

// countKey maps a cell to a comparable key; instants compare by time, not location.
func countKey(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.UnixNano()
	case string, int64, float64, bool:
		return x
	default:
		return fmt.Sprintf("%T:%v", v, v)
	}
}
