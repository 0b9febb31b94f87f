// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package filter

import (
	"errors"

	"github.com/tomtom215/edakit/internal/source"
)

var (
	// ErrColumnNotFound is returned when the named column is not in the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrEmptyColumn is returned when a column has no values to aggregate.
	ErrEmptyColumn = errors.New("empty column")

	// ErrNonNumericColumn is returned when a numeric operation targets a column
	// whose kind is neither integer nor float.
	ErrNonNumericColumn = errors.New("non-numeric column")
)

// Source errors surfaced by LoadFromSource.
var (
	ErrSourceUnavailable = source.ErrSourceUnavailable
	ErrQueryError        = source.ErrQueryError
	ErrEmptyResult       = source.ErrEmptyResult
)
