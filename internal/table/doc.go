// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

// Package table provides the in-memory, column-oriented Table used throughout EDAKit.
//
// # Overview
//
// A Table is an ordered sequence of named columns. Every column carries a declared
// Kind (Integer, Float, Text, Boolean, Timestamp or Unknown) decided when the column
// is constructed or loaded, and a slice of cell values aligned by row index.
//
// # Absent Values
//
// A nil cell marks an absent value ("NA"). Absent is distinct from zero and from the
// empty string. Float NaN values are normalized to absent on construction.
//
// # Cell Types
//
//   - Integer:   int64
//   - Float:     float64
//   - Text:      string
//   - Boolean:   bool
//   - Timestamp: time.Time
//   - Unknown:   driver value as produced ([]byte normalized to string)
//
// # Invariants
//
//   - All columns have equal length
//   - Column names are unique within a table
//
// Tables are treated as immutable once built. Operations that derive data
// (filtering, projection) build new columns instead of editing existing ones.
//
// # Usage
//
//	t, err := table.New(
//	    table.NewColumn("id", table.KindInteger, 1, 2, 3),
//	    table.NewColumn("name", table.KindText, "A", "B", nil),
//	)
//	if err != nil {
//	    return err
//	}
//	col, ok := t.Column("name")
package table
