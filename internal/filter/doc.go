// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

/*
Package filter provides TableFilter, a thin analytical wrapper around one
in-memory table.

A TableFilter exposes read-only views over the wrapped table (numeric column
filtering, distinct values, mode and mean) and one destructive operation,
LoadFromSource, which replaces the wrapped table with the result of a query
against a relational source.

# Usage

	f := filter.NewTableFilter(nil)
	target, err := source.ParseTarget("analysis.duckdb")
	if err != nil {
	    return err
	}
	if err := f.LoadFromSource(ctx, target, "SELECT * FROM calls"); err != nil {
	    return err
	}
	mean, err := f.Average("duration")

# Absent Values

Absent cells (nil) are distinct from zero and from the empty string.
UniqueValues and MostRepeatedValue treat them as an ordinary value; Average
ignores them; FilterNumericColumns emits them where the threshold predicate
fails.

# Errors

All errors are sentinels matched with errors.Is: ErrColumnNotFound,
ErrEmptyColumn and ErrNonNumericColumn from this package, and the source
errors ErrSourceUnavailable, ErrQueryError and ErrEmptyResult re-exported
from internal/source. A failed operation never modifies the wrapped table.

# Thread Safety

TableFilter is not safe for concurrent use.
*/
package filter
