// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package source

import (
	"database/sql"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/edakit/internal/table"
)

// rowScanner is the subset of *sql.Rows used to materialize a result set.
type rowScanner interface {
	ColumnTypes() ([]*sql.ColumnType, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// materialize reads every remaining row into a table. Column order and row
// order follow the result set.
func materialize(rows rowScanner) (*table.Table, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("%w: reading column types: %w", ErrQueryError, err)
	}
	if len(types) == 0 {
		return nil, ErrEmptyResult
	}

	names := make([]string, len(types))
	declared := make([]table.Kind, len(types))
	isUUID := make([]bool, len(types))
	for i, ct := range types {
		names[i] = ct.Name()
		declared[i] = table.KindFromDatabaseType(ct.DatabaseTypeName())
		isUUID[i] = strings.EqualFold(ct.DatabaseTypeName(), "UUID")
	}

	values := make([][]any, len(types))
	for rows.Next() {
		// One slot per column plus a pointer to each slot for Scan.
		rowValues := make([]any, len(types))
		rowPointers := make([]any, len(types))
		for i := range rowValues {
			rowPointers[i] = &rowValues[i]
		}

		if err := rows.Scan(rowPointers...); err != nil {
			return nil, fmt.Errorf("%w: scanning row %d: %w", ErrQueryError, len(values[0]), err)
		}
		for i, raw := range rowValues {
			if isUUID[i] {
				raw = normalizeUUID(raw)
			}
			values[i] = append(values[i], normalizeCell(declared[i], raw))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryError, err)
	}

	columns := make([]*table.Column, len(types))
	for i := range types {
		if values[i] == nil {
			values[i] = []any{}
		}
		columns[i] = buildColumn(names[i], declared[i], values[i])
	}

	tbl, err := table.New(columns...)
	if err != nil {
		// Duplicate column names, e.g. SELECT a.id, b.id.
		return nil, fmt.Errorf("%w: %w", ErrQueryError, err)
	}
	return tbl, nil
}

// buildColumn keeps the declared kind when every value fits it, otherwise
// falls back to the kind inferred from the values, and finally to Unknown.
func buildColumn(name string, declared table.Kind, values []any) *table.Column {
	if declared != table.KindUnknown && fits(declared, values) {
		return table.NewColumn(name, declared, values...)
	}
	if inferred := table.InferKind(values); inferred != table.KindUnknown && fits(inferred, values) {
		return table.NewColumn(name, inferred, values...)
	}
	if declared != table.KindUnknown && countNonNil(values) == 0 {
		return table.NewColumn(name, declared, values...)
	}
	return table.NewColumn(name, table.KindUnknown, values...)
}

func fits(kind table.Kind, values []any) bool {
	for _, v := range values {
		if _, err := table.Coerce(kind, v); err != nil {
			return false
		}
	}
	return true
}

func countNonNil(values []any) int {
	n := 0
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}

// timestampLayouts are tried in order for text timestamps (MySQL text protocol, SQLite).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// normalizeCell converts driver values into table cell types. Text returned
// for numeric, boolean or timestamp columns is parsed; values that cannot be
// parsed are kept as text so the column falls back to another kind.
func normalizeCell(kind table.Kind, raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []byte:
		return parseText(kind, string(v))
	case string:
		return parseText(kind, v)
	case *big.Int:
		if v.IsInt64() {
			return v.Int64()
		}
		f, _ := new(big.Float).SetInt(v).Float64()
		return f
	case interface{ Float64() float64 }:
		// DuckDB DECIMAL
		return v.Float64()
	default:
		return raw
	}
}

// normalizeUUID formats binary UUIDs (DuckDB returns 16 raw bytes) in their
// canonical text form. Text UUIDs pass through.
func normalizeUUID(raw any) any {
	var b []byte
	switch v := raw.(type) {
	case []byte:
		b = v
	case [16]byte:
		b = v[:]
	case *[16]byte:
		if v == nil {
			return nil
		}
		b = v[:]
	default:
		return raw
	}
	if len(b) != 16 {
		return raw
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return raw
	}
	return id.String()
}

func parseText(kind table.Kind, s string) any {
	switch kind {
	case table.KindInteger:
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return n
		}
	case table.KindFloat:
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	case table.KindBoolean:
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b
		}
	case table.KindTimestamp:
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts
			}
		}
	}
	return s
}
