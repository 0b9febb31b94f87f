// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package table

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tbl, err := New(
		NewColumn("id", KindInteger, 1, int32(2), uint8(3)),
		NewColumn("score", KindFloat, 1.5, 2, math.NaN()),
		NewColumn("name", KindText, "A", []byte("B"), nil),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if tbl.NumRows() != 3 {
		t.Errorf("NumRows() = %d, want 3", tbl.NumRows())
	}
	if tbl.NumColumns() != 3 {
		t.Errorf("NumColumns() = %d, want 3", tbl.NumColumns())
	}
	if got := tbl.ColumnNames(); !reflect.DeepEqual(got, []string{"id", "score", "name"}) {
		t.Errorf("ColumnNames() = %v", got)
	}

	id, _ := tbl.Column("id")
	if !reflect.DeepEqual(id.Values, []any{int64(1), int64(2), int64(3)}) {
		t.Errorf("id values = %#v, want int64 cells", id.Values)
	}

	score, _ := tbl.Column("score")
	if !reflect.DeepEqual(score.Values, []any{1.5, 2.0, nil}) {
		t.Errorf("score values = %#v, NaN should become absent", score.Values)
	}

	name, _ := tbl.Column("name")
	if !reflect.DeepEqual(name.Values, []any{"A", "B", nil}) {
		t.Errorf("name values = %#v", name.Values)
	}
	if name.NonAbsent() != 2 {
		t.Errorf("NonAbsent() = %d, want 2", name.NonAbsent())
	}

	if got := tbl.Row(1); !reflect.DeepEqual(got, []any{int64(2), 2.0, "B"}) {
		t.Errorf("Row(1) = %#v", got)
	}
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns []*Column
		wantErr error
	}{
		{
			name: "length mismatch",
			columns: []*Column{
				NewColumn("a", KindInteger, 1, 2),
				NewColumn("b", KindInteger, 1),
			},
			wantErr: ErrLengthMismatch,
		},
		{
			name: "duplicate name",
			columns: []*Column{
				NewColumn("a", KindInteger, 1),
				NewColumn("a", KindText, "x"),
			},
			wantErr: ErrDuplicateColumn,
		},
		{
			name:    "text in integer column",
			columns: []*Column{NewColumn("a", KindInteger, "one")},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "uint64 overflow",
			columns: []*Column{NewColumn("a", KindInteger, uint64(math.MaxUint64))},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.columns...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	col := NewColumn("a", KindInteger, 1, 2)
	tbl := MustNew(col)
	col.Values[0] = 99

	got, _ := tbl.Column("a")
	if got.Values[0] != int64(1) {
		t.Errorf("table cell changed after caller edit: %v", got.Values[0])
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	tbl := Empty()
	if tbl.NumRows() != 0 || tbl.NumColumns() != 0 {
		t.Errorf("Empty() = %d rows, %d columns", tbl.NumRows(), tbl.NumColumns())
	}
	if _, ok := tbl.Column("x"); ok {
		t.Error("Column() found a column in an empty table")
	}
}

func TestKindFromDatabaseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Kind
	}{
		{"INTEGER", KindInteger},
		{"bigint", KindInteger},
		{"UNSIGNED BIGINT", KindInteger},
		{"DOUBLE", KindFloat},
		{"DECIMAL(18,3)", KindFloat},
		{"VARCHAR(32)", KindText},
		{"TEXT", KindText},
		{"BOOLEAN", KindBoolean},
		{"TIMESTAMPTZ", KindTimestamp},
		{"DATE", KindTimestamp},
		{"BLOB", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := KindFromDatabaseType(tt.input); got != tt.want {
				t.Errorf("KindFromDatabaseType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestInferKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []any
		want   Kind
	}{
		{"integers", []any{int64(1), nil, int64(3)}, KindInteger},
		{"mixed numeric", []any{int64(1), 2.5}, KindFloat},
		{"text", []any{"a", []byte("b")}, KindText},
		{"timestamps", []any{time.Now()}, KindTimestamp},
		{"all absent", []any{nil, nil}, KindUnknown},
		{"mixed", []any{int64(1), "a"}, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := InferKind(tt.values); got != tt.want {
				t.Errorf("InferKind() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestKindIsNumeric(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindInteger, KindFloat} {
		if !k.IsNumeric() {
			t.Errorf("%s.IsNumeric() = false", k)
		}
	}
	for _, k := range []Kind{KindText, KindBoolean, KindTimestamp, KindUnknown} {
		if k.IsNumeric() {
			t.Errorf("%s.IsNumeric() = true", k)
		}
	}
}
