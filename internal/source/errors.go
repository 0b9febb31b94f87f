// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package source

import (
	"errors"
	"io"

	"github.com/tomtom215/edakit/internal/logging"
)

var (
	// ErrSourceUnavailable means a connection to the source could not be opened.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrQueryError means the source rejected the query or failed while running it.
	ErrQueryError = errors.New("query error")

	// ErrEmptyResult means the statement produced no result columns.
	ErrEmptyResult = errors.New("empty result")

	// ErrInvalidTarget means a target string could not be parsed.
	ErrInvalidTarget = errors.New("invalid source target")
)

// errorType returns the metrics label for a load error.
func errorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errRejected):
		return "rejected"
	case errors.Is(err, ErrSourceUnavailable):
		return "unavailable"
	case errors.Is(err, ErrEmptyResult):
		return "empty_result"
	default:
		return "query"
	}
}

// closeWithLog closes a resource and logs any error.
// Use this for cleanup where errors should be acknowledged but not fail the operation.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // best-effort cleanup
	}
}
