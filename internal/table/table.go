// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package table

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrLengthMismatch is returned when columns of a table differ in length.
	ErrLengthMismatch = errors.New("columns have different lengths")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrInvalidValue is returned when a cell cannot be stored in its column's kind.
	ErrInvalidValue = errors.New("value does not match column kind")
)

// Column is a named, typed sequence of cell values. A nil cell is absent.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// NewColumn builds a column from raw values. Values are coerced to the kind's
// cell type when the column is added to a table via New.
func NewColumn(name string, kind Kind, values ...any) *Column {
	return &Column{Name: name, Kind: kind, Values: values}
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// NonAbsent returns the number of cells that hold a value.
func (c *Column) NonAbsent() int {
	n := 0
	for _, v := range c.Values {
		if v != nil {
			n++
		}
	}
	return n
}

// Table is an ordered collection of equal-length named columns.
type Table struct {
	columns []*Column
	index   map[string]int
}

// Empty returns a table with no columns and no rows.
func Empty() *Table {
	return &Table{index: map[string]int{}}
}

// New builds a table from columns, coercing every cell to its column's kind.
// The supplied columns are copied so later edits by the caller do not leak in.
func New(columns ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("column %d is nil", i)
		}
		if _, dup := t.index[col.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Name)
		}
		if i > 0 && col.Len() != columns[0].Len() {
			return nil, fmt.Errorf("%w: %q has %d rows, %q has %d",
				ErrLengthMismatch, col.Name, col.Len(), columns[0].Name, columns[0].Len())
		}

		values := make([]any, len(col.Values))
		for row, v := range col.Values {
			cv, err := Coerce(col.Kind, v)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", col.Name, row, err)
			}
			values[row] = cv
		}

		t.index[col.Name] = len(t.columns)
		t.columns = append(t.columns, &Column{Name: col.Name, Kind: col.Kind, Values: values})
	}

	return t, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(columns ...*Column) *Table {
	t, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// NumRows returns the number of rows (0 for a table without columns).
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in order. Callers must not modify them.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column looks up a column by name. Callers must not modify it.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for c, col := range t.columns {
		row[c] = col.Values[i]
	}
	return row
}

// Coerce converts v to the cell type used by kind. nil passes through as absent,
// and float NaN becomes absent.
func Coerce(kind Kind, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch kind {
	case KindInteger:
		return toInt64(v)
	case KindFloat:
		f, err := toFloat64(v)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) {
			return nil, nil
		}
		return f, nil
	case KindText:
		switch s := v.(type) {
		case string:
			return s, nil
		case []byte:
			return string(s), nil
		}
	case KindBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindTimestamp:
		if ts, ok := v.(time.Time); ok {
			return ts, nil
		}
	default:
		if b, ok := v.([]byte); ok {
			return string(b), nil
		}
		return v, nil
	}

	return nil, fmt.Errorf("%w: %T for %s", ErrInvalidValue, v, kind)
}

func toInt64(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return uintToInt64(n)
	}
	return nil, fmt.Errorf("%w: %T for %s", ErrInvalidValue, v, KindInteger)
}

func uintToInt64(n uint64) (any, error) {
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrInvalidValue, n)
	}
	return int64(n), nil
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	}
	i, err := toInt64(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %T for %s", ErrInvalidValue, v, KindFloat)
	}
	return float64(i.(int64)), nil
}

// AsFloat returns the numeric value of an Integer or Float cell.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
