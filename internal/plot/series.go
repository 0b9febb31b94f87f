// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package plot

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/edakit/internal/table"
)

// DayCount is the number of events on one UTC calendar day.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// SeriesData holds a daily time series.
type SeriesData struct {
	Column string     `json:"column"`
	Days   []DayCount `json:"days"`
	Style  Style      `json:"style"`
}

// textTimeLayouts are accepted when a text column is plotted as a time series.
var textTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DailySeries counts the non-absent values of a timestamp column per UTC day.
// Every day between the first and last event is present, with zero counts for
// days without events. Text columns are parsed as timestamps.
func DailySeries(col *table.Column, style Style) (*SeriesData, error) {
	days := make(map[time.Time]int)
	var first, last time.Time
	for row, v := range col.Values {
		if v == nil {
			continue
		}
		ts, err := asTime(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q row %d: %w", ErrNotTimestamp, col.Name, row, err)
		}

		day := truncateDay(ts)
		if len(days) == 0 || day.Before(first) {
			first = day
		}
		if len(days) == 0 || day.After(last) {
			last = day
		}
		days[day]++
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoValues, col.Name)
	}

	s := &SeriesData{Column: col.Name, Style: style.withDefaults("day", "count")}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		s.Days = append(s.Days, DayCount{Day: day, Count: days[day]})
	}
	return s, nil
}

// Table returns one row per day.
func (s *SeriesData) Table() *table.Table {
	days := make([]any, len(s.Days))
	counts := make([]any, len(s.Days))
	for i, d := range s.Days {
		days[i], counts[i] = d.Day, d.Count
	}
	return table.MustNew(
		table.NewColumn("day", table.KindTimestamp, days...),
		table.NewColumn("count", table.KindInteger, counts...),
	)
}

func asTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range textTimeLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized time %q", x)
	default:
		return time.Time{}, fmt.Errorf("unexpected %T", v)
	}
}

func truncateDay(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
