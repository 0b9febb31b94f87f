// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package filter

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/tomtom215/edakit/internal/logging"
	"github.com/tomtom215/edakit/internal/source"
	"github.com/tomtom215/edakit/internal/table"
)

// DefaultThreshold is the threshold used by FilterNumericColumnsDefault.
const DefaultThreshold = 0

// TableFilter wraps one table and exposes analytical operations over it.
type TableFilter struct {
	table  *table.Table
	loader source.Loader
}

// Option configures a TableFilter.
type Option func(*TableFilter)

// WithLoader sets the Loader used by LoadFromSource.
// The default is a call-scoped source.SQLSource.
func WithLoader(loader source.Loader) Option {
	return func(f *TableFilter) {
		f.loader = loader
	}
}

// NewTableFilter wraps t. A nil table is wrapped as an empty table.
func NewTableFilter(t *table.Table, opts ...Option) *TableFilter {
	if t == nil {
		t = table.Empty()
	}
	f := &TableFilter{table: t, loader: source.NewSQLSource()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Table returns the currently wrapped table.
func (f *TableFilter) Table() *table.Table {
	return f.table
}

// FilterNumericColumns returns a new table holding only the integer and float
// columns. Values not strictly greater than threshold become absent, so the
// row count matches the wrapped table. A table without numeric columns yields
// an empty table.
func (f *TableFilter) FilterNumericColumns(threshold float64) *table.Table {
	var numeric []*table.Column
	for _, col := range f.table.Columns() {
		if !col.Kind.IsNumeric() {
			continue
		}

		values := make([]any, len(col.Values))
		for i, v := range col.Values {
			if n, ok := table.AsFloat(v); ok && n > threshold {
				values[i] = v
			}
		}
		numeric = append(numeric, table.NewColumn(col.Name, col.Kind, values...))
	}

	if len(numeric) == 0 {
		return table.Empty()
	}
	// Names and kinds come from a valid table, so New cannot fail here.
	return table.MustNew(numeric...)
}

// FilterNumericColumnsDefault is FilterNumericColumns with DefaultThreshold.
func (f *TableFilter) FilterNumericColumnsDefault() *table.Table {
	return f.FilterNumericColumns(DefaultThreshold)
}

// UniqueValues returns the distinct values of a column in first-occurrence
// order. Absent cells appear once as nil.
func (f *TableFilter) UniqueValues(column string) ([]any, error) {
	col, err := f.column(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[any]struct{}, len(col.Values))
	unique := make([]any, 0)
	for _, v := range col.Values {
		k := cellKey(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, v)
	}
	return unique, nil
}

// MostRepeatedValue returns the most frequent value of a column. Ties go to
// the value that occurs first.
func (f *TableFilter) MostRepeatedValue(column string) (any, error) {
	col, err := f.column(column)
	if err != nil {
		return nil, err
	}
	if col.Len() == 0 {
		return nil, fmt.Errorf("%w: %q has no rows", ErrEmptyColumn, column)
	}

	counts := make(map[any]int, len(col.Values))
	var order []any
	for _, v := range col.Values {
		k := cellKey(v)
		if counts[k] == 0 {
			order = append(order, v)
		}
		counts[k]++
	}

	// Walking in first-occurrence order with a strict comparison keeps the
	// earliest value on ties.
	best, bestCount := order[0], 0
	for _, v := range order {
		if c := counts[cellKey(v)]; c > bestCount {
			best, bestCount = v, c
		}
	}
	return best, nil
}

// Average returns the arithmetic mean of a numeric column, ignoring absent cells.
func (f *TableFilter) Average(column string) (float64, error) {
	col, err := f.column(column)
	if err != nil {
		return 0, err
	}
	if !col.Kind.IsNumeric() {
		return 0, fmt.Errorf("%w: %q is %s", ErrNonNumericColumn, column, col.Kind)
	}

	var (
		sum float64
		n   int
	)
	for _, v := range col.Values {
		if x, ok := table.AsFloat(v); ok {
			sum += x
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %q has no values", ErrEmptyColumn, column)
	}
	return sum / float64(n), nil
}

// LoadFromSource runs query against target and replaces the wrapped table
// with the result. On error the wrapped table is unchanged.
func (f *TableFilter) LoadFromSource(ctx context.Context, target source.Target, query string) error {
	ctx = logging.ContextWithNewLoadID(ctx)

	tbl, err := f.loader.Load(ctx, target, query)
	if err != nil {
		return fmt.Errorf("load from %s: %w", target, err)
	}

	f.table = tbl
	return nil
}

// Close is a no-op kept for callers that pair every load with a close.
// TableFilter holds no connection between calls.
func (f *TableFilter) Close() error {
	return nil
}

func (f *TableFilter) column(name string) (*table.Column, error) {
	col, ok := f.table.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return col, nil
}

type timeKey struct{ unixNano int64 }

type printedKey struct {
	typ  string
	repr string
}

// cellKey maps a cell to a comparable map key. Equal instants compare equal
// regardless of location; non-comparable driver values compare by their
// printed form.
func cellKey(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return timeKey{x.UnixNano()}
	}
	if reflect.TypeOf(v).Comparable() {
		return v
	}
	return printedKey{typ: fmt.Sprintf("%T", v), repr: fmt.Sprintf("%v", v)}
}
