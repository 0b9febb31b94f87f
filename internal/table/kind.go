// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package table

import (
	"strings"
	"time"
)

// Kind is the declared element type of a column.
type Kind int

const (
	KindUnknown Kind = iota
	KindInteger
	KindFloat
	KindText
	KindBoolean
	KindTimestamp
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the kind is Integer or Float.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindFloat
}

// KindFromDatabaseType maps a driver-reported column type name to a Kind.
// Names are matched case-insensitively and parameters such as VARCHAR(32) or
// DECIMAL(18,3) are ignored. Unrecognized or empty names map to KindUnknown.
func KindFromDatabaseType(name string) Kind {
	name = strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	switch name {
	case "INTEGER", "INT", "INT2", "INT4", "INT8", "BIGINT", "SMALLINT", "TINYINT",
		"MEDIUMINT", "HUGEINT", "UBIGINT", "UINTEGER", "USMALLINT", "UTINYINT",
		"SERIAL", "BIGSERIAL", "INT16", "INT32", "INT64", "YEAR":
		return KindInteger
	case "FLOAT", "FLOAT4", "FLOAT8", "DOUBLE", "DOUBLE PRECISION", "REAL",
		"DECIMAL", "NUMERIC", "NUMBER":
		return KindFloat
	case "TEXT", "VARCHAR", "CHAR", "BPCHAR", "STRING", "NVARCHAR", "NCHAR",
		"CHARACTER", "CHARACTER VARYING", "CLOB", "UUID", "ENUM", "NAME",
		"TINYTEXT", "MEDIUMTEXT", "LONGTEXT", "JSON":
		return KindText
	case "BOOLEAN", "BOOL", "BIT":
		return KindBoolean
	case "TIMESTAMP", "TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE", "DATETIME", "DATE",
		"TIMESTAMP_S", "TIMESTAMP_MS", "TIMESTAMP_NS":
		return KindTimestamp
	}

	// Unsigned MySQL integer types are reported as e.g. "UNSIGNED BIGINT".
	if strings.HasPrefix(name, "UNSIGNED ") {
		return KindFromDatabaseType(strings.TrimPrefix(name, "UNSIGNED "))
	}
	return KindUnknown
}

// kindOf infers a Kind from a single Go value. nil yields KindUnknown.
func kindOf(v any) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32, float64:
		return KindFloat
	case string, []byte:
		return KindText
	case bool:
		return KindBoolean
	case time.Time:
		return KindTimestamp
	default:
		return KindUnknown
	}
}

// InferKind returns the kind shared by every non-absent value, KindFloat when
// integers and floats are mixed, and KindUnknown otherwise.
func InferKind(values []any) Kind {
	kind := KindUnknown
	seen := false
	for _, v := range values {
		if v == nil {
			continue
		}
		k := kindOf(v)
		if !seen {
			kind, seen = k, true
			continue
		}
		if k == kind {
			continue
		}
		if kind.IsNumeric() && k.IsNumeric() {
			kind = KindFloat
			continue
		}
		return KindUnknown
	}
	return kind
}
