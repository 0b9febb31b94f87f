// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package plot

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/edakit/internal/table"
)

func intColumn(name string, values ...any) *table.Column {
	tbl := table.MustNew(table.NewColumn(name, table.KindInteger, values...))
	col, _ := tbl.Column(name)
	return col
}

func floatColumn(name string, values ...any) *table.Column {
	tbl := table.MustNew(table.NewColumn(name, table.KindFloat, values...))
	col, _ := tbl.Column(name)
	return col
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHistogram(t *testing.T) {
	t.Parallel()

	col := intColumn("duration", 1, 2, 3, 4, nil, 5, 6, 7, 8, 9, 10)

	h, err := Histogram(col, 3, Style{Title: "Duration"})
	if err != nil {
		t.Fatalf("Histogram() error = %v", err)
	}

	want := []Bin{
		{Lower: 1, Upper: 4, Count: 3},
		{Lower: 4, Upper: 7, Count: 3},
		{Lower: 7, Upper: 10, Count: 4},
	}
	if !reflect.DeepEqual(h.Bins, want) {
		t.Errorf("Bins = %+v, want %+v", h.Bins, want)
	}

	sum := 0
	for _, b := range h.Bins {
		sum += b.Count
	}
	if sum != col.NonAbsent() || h.Total != col.NonAbsent() {
		t.Errorf("bin counts sum to %d, total %d, want %d", sum, h.Total, col.NonAbsent())
	}
	if h.Style.Title != "Duration" || h.Style.XLabel != "duration" || h.Style.YLabel != "count" {
		t.Errorf("Style = %+v", h.Style)
	}
	if got := h.Table().NumRows(); got != 3 {
		t.Errorf("Table().NumRows() = %d, want 3", got)
	}
}

func TestHistogram_SingleValue(t *testing.T) {
	t.Parallel()

	h, err := Histogram(intColumn("n", 5, 5, 5), 2, Style{})
	if err != nil {
		t.Fatalf("Histogram() error = %v", err)
	}
	want := []Bin{
		{Lower: 4.5, Upper: 5, Count: 0},
		{Lower: 5, Upper: 5.5, Count: 3},
	}
	if !reflect.DeepEqual(h.Bins, want) {
		t.Errorf("Bins = %+v, want %+v", h.Bins, want)
	}
}

func TestHistogram_NonFinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		col  *table.Column
		want []int
	}{
		{name: "positive infinity", col: floatColumn("x", 1.0, 2.0, math.Inf(1)), want: []int{1, 0, 0, 1}},
		{name: "both infinities", col: floatColumn("x", math.Inf(-1), 1.0, 2.0, math.Inf(1), nil), want: []int{1, 0, 0, 1}},
		{name: "extreme range", col: floatColumn("x", -math.MaxFloat64, math.MaxFloat64), want: []int{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := Histogram(tt.col, 4, Style{})
			if err != nil {
				t.Fatalf("Histogram() error = %v", err)
			}
			got := make([]int, len(h.Bins))
			for i, b := range h.Bins {
				got[i] = b.Count
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("bin counts = %v, want %v", got, tt.want)
			}
			if h.Total != 2 {
				t.Errorf("Total = %d, want 2", h.Total)
			}
			if _, err := json.Marshal(h); err != nil {
				t.Errorf("json.Marshal() error = %v", err)
			}
		})
	}

	if _, err := Histogram(floatColumn("x", math.Inf(1), math.Inf(-1)), 4, Style{}); !errors.Is(err, ErrNoValues) {
		t.Errorf("Histogram(only infinities) error = %v, want ErrNoValues", err)
	}
}

func TestHistogram_KDE(t *testing.T) {
	t.Parallel()

	t.Run("symmetric pair", func(t *testing.T) {
		t.Parallel()

		h, err := Histogram(floatColumn("x", -1.0, 1.0), 2, Style{})
		if err != nil {
			t.Fatalf("Histogram() error = %v", err)
		}
		if !approxEqual(h.Bandwidth, 1.2311444133449163) {
			t.Errorf("Bandwidth = %v, want 1.2311444133449163", h.Bandwidth)
		}
		want := []DensityPoint{{X: -0.5, Density: 0.2263260608100979}, {X: 0.5, Density: 0.2263260608100979}}
		if len(h.KDE) != len(want) {
			t.Fatalf("KDE = %+v, want %+v", h.KDE, want)
		}
		for i := range want {
			if !approxEqual(h.KDE[i].X, want[i].X) || !approxEqual(h.KDE[i].Density, want[i].Density) {
				t.Errorf("KDE[%d] = %+v, want %+v", i, h.KDE[i], want[i])
			}
		}
	})

	t.Run("one to ten", func(t *testing.T) {
		t.Parallel()

		h, err := Histogram(intColumn("n", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10), 3, Style{})
		if err != nil {
			t.Fatalf("Histogram() error = %v", err)
		}
		want := []float64{0.08552258644715348, 0.09918905677028131, 0.08552258644715349}
		for i, d := range want {
			if !approxEqual(h.KDE[i].Density, d) {
				t.Errorf("KDE[%d].Density = %v, want %v", i, h.KDE[i].Density, d)
			}
		}
		density, _ := h.Table().Column("density")
		if got, _ := table.AsFloat(density.Values[1]); !approxEqual(got, want[1]) {
			t.Errorf("density column = %v", density.Values)
		}
	})

	t.Run("no variance", func(t *testing.T) {
		t.Parallel()

		h, err := Histogram(intColumn("n", 5, 5, 5), 2, Style{})
		if err != nil {
			t.Fatalf("Histogram() error = %v", err)
		}
		if h.KDE != nil || h.Bandwidth != 0 {
			t.Errorf("KDE = %+v bandwidth %v, want none", h.KDE, h.Bandwidth)
		}
	})
}

func TestGaussianKDE_IntegratesToOne(t *testing.T) {
	t.Parallel()

	values := []float64{1, 2, 2, 3, 7}
	bw := scottBandwidth(values)

	const step = 0.01
	var area float64
	for x := -20.0; x <= 30; x += step {
		area += gaussianKDE(values, bw, x) * step
	}
	if math.Abs(area-1) > 1e-3 {
		t.Errorf("density integrates to %v, want 1", area)
	}
}

func TestHistogram_Errors(t *testing.T) {
	t.Parallel()

	text := table.NewColumn("name", table.KindText, "a")

	tests := []struct {
		name    string
		col     *table.Column
		bins    int
		wantErr error
	}{
		{name: "zero bins", col: intColumn("n", 1), bins: 0, wantErr: ErrInvalidBins},
		{name: "text column", col: text, bins: 5, wantErr: ErrNonNumericColumn},
		{name: "only absent", col: intColumn("n", nil, nil), bins: 5, wantErr: ErrNoValues},
		{name: "zero rows", col: intColumn("n"), bins: 5, wantErr: ErrNoValues},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Histogram(tt.col, tt.bins, Style{}); !errors.Is(err, tt.wantErr) {
				t.Errorf("Histogram() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBoxPlot(t *testing.T) {
	t.Parallel()

	t.Run("one to nine", func(t *testing.T) {
		t.Parallel()

		b, err := BoxPlot(intColumn("n", 9, 1, 8, 2, 7, 3, 6, 4, 5), DefaultBoxCoef, Style{})
		if err != nil {
			t.Fatalf("BoxPlot() error = %v", err)
		}
		if b.Q1 != 3 || b.Median != 5 || b.Q3 != 7 || b.IQR != 4 {
			t.Errorf("quartiles = %v/%v/%v iqr %v, want 3/5/7 iqr 4", b.Q1, b.Median, b.Q3, b.IQR)
		}
		if b.LowerWhisker != 1 || b.UpperWhisker != 9 {
			t.Errorf("whiskers = %v..%v, want 1..9", b.LowerWhisker, b.UpperWhisker)
		}
		if len(b.Outliers) != 0 || b.N != 9 {
			t.Errorf("outliers = %v, n = %d", b.Outliers, b.N)
		}
	})

	t.Run("interpolated with outlier", func(t *testing.T) {
		t.Parallel()

		b, err := BoxPlot(intColumn("n", 1, 2, 3, 4, 5, 6, 7, 8, 9, 100, nil), DefaultBoxCoef, Style{})
		if err != nil {
			t.Fatalf("BoxPlot() error = %v", err)
		}
		if b.Q1 != 3.25 || b.Median != 5.5 || b.Q3 != 7.75 {
			t.Errorf("quartiles = %v/%v/%v, want 3.25/5.5/7.75", b.Q1, b.Median, b.Q3)
		}
		if b.UpperWhisker != 9 {
			t.Errorf("upper whisker = %v, want 9", b.UpperWhisker)
		}
		if !reflect.DeepEqual(b.Outliers, []float64{100}) {
			t.Errorf("outliers = %v, want [100]", b.Outliers)
		}
		if got := b.Table().NumRows(); got != 8 {
			t.Errorf("Table().NumRows() = %d, want 8", got)
		}
	})

	t.Run("every value outside the fences", func(t *testing.T) {
		t.Parallel()

		b, err := BoxPlot(intColumn("n", 0, 100), 0.1, Style{})
		if err != nil {
			t.Fatalf("BoxPlot() error = %v", err)
		}
		if b.LowerWhisker != b.Q1 || b.UpperWhisker != b.Q3 || b.Q1 != 25 || b.Q3 != 75 {
			t.Errorf("whiskers = %v..%v, want 25..75", b.LowerWhisker, b.UpperWhisker)
		}
		if !reflect.DeepEqual(b.Outliers, []float64{0, 100}) {
			t.Errorf("outliers = %v, want [0 100]", b.Outliers)
		}
		if _, err := json.Marshal(b); err != nil {
			t.Errorf("json.Marshal() error = %v", err)
		}
	})

	t.Run("infinities skipped", func(t *testing.T) {
		t.Parallel()

		b, err := BoxPlot(floatColumn("x", 1.0, 2.0, 3.0, math.Inf(1)), DefaultBoxCoef, Style{})
		if err != nil {
			t.Fatalf("BoxPlot() error = %v", err)
		}
		if b.N != 3 || b.Median != 2 || b.UpperWhisker != 3 {
			t.Errorf("n = %d median = %v upper = %v, want 3/2/3", b.N, b.Median, b.UpperWhisker)
		}
	})

	t.Run("invalid coefficient", func(t *testing.T) {
		t.Parallel()
		if _, err := BoxPlot(intColumn("n", 1), 0, Style{}); !errors.Is(err, ErrInvalidCoef) {
			t.Errorf("BoxPlot() error = %v, want ErrInvalidCoef", err)
		}
	})
}

func TestCountPlot(t *testing.T) {
	t.Parallel()

	col := table.NewColumn("network", table.KindText, "4G", "3G", "5G", "3G", nil, "5G", "4G", "4G")

	c, err := CountPlot(col, Style{})
	if err != nil {
		t.Fatalf("CountPlot() error = %v", err)
	}

	want := []ValueCount{{"4G", 3}, {"3G", 2}, {"5G", 2}}
	if !reflect.DeepEqual(c.Counts, want) {
		t.Errorf("Counts = %+v, want %+v", c.Counts, want)
	}

	tbl := c.Table()
	if names := tbl.ColumnNames(); !reflect.DeepEqual(names, []string{"network", "count"}) {
		t.Errorf("Table() columns = %v", names)
	}

	if _, err := CountPlot(table.NewColumn("x", table.KindText, nil), Style{}); !errors.Is(err, ErrNoValues) {
		t.Errorf("CountPlot(all absent) error = %v, want ErrNoValues", err)
	}
}

func TestDailySeries(t *testing.T) {
	t.Parallel()

	day := func(d, h int) time.Time { return time.Date(2024, 1, d, h, 0, 0, 0, time.UTC) }

	t.Run("timestamps with gaps", func(t *testing.T) {
		t.Parallel()

		col := table.NewColumn("start", table.KindTimestamp, day(3, 8), day(1, 23), nil, day(3, 1), day(1, 0))
		s, err := DailySeries(col, Style{})
		if err != nil {
			t.Fatalf("DailySeries() error = %v", err)
		}
		want := []DayCount{{day(1, 0), 2}, {day(2, 0), 0}, {day(3, 0), 2}}
		if !reflect.DeepEqual(s.Days, want) {
			t.Errorf("Days = %+v, want %+v", s.Days, want)
		}
	})

	t.Run("text timestamps", func(t *testing.T) {
		t.Parallel()

		col := table.NewColumn("start", table.KindText, "2024-01-02 10:00:00", "2024-01-02", "2024-01-01T05:00:00Z")
		s, err := DailySeries(col, Style{})
		if err != nil {
			t.Fatalf("DailySeries() error = %v", err)
		}
		want := []DayCount{{day(1, 0), 1}, {day(2, 0), 2}}
		if !reflect.DeepEqual(s.Days, want) {
			t.Errorf("Days = %+v, want %+v", s.Days, want)
		}
		if s.Table().NumRows() != 2 {
			t.Errorf("Table().NumRows() = %d, want 2", s.Table().NumRows())
		}
	})

	t.Run("not a timestamp", func(t *testing.T) {
		t.Parallel()

		if _, err := DailySeries(table.NewColumn("x", table.KindText, "yesterday"), Style{}); !errors.Is(err, ErrNotTimestamp) {
			t.Errorf("DailySeries() error = %v, want ErrNotTimestamp", err)
		}
		if _, err := DailySeries(table.NewColumn("x", table.KindTimestamp, nil), Style{}); !errors.Is(err, ErrNoValues) {
			t.Errorf("DailySeries(all absent) error = %v, want ErrNoValues", err)
		}
	})
}
