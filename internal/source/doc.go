// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

// Package source loads query results from relational databases into tables.
//
// # Overview
//
// A Target names a database/sql driver and a driver-specific DSN. SQLSource
// opens a connection for exactly one Load call, runs the query, materializes
// every row into a table.Table and releases the connection before returning,
// on success and on every error path.
//
// # Supported Drivers
//
//   - duckdb:   embedded analytics engine (github.com/duckdb/duckdb-go/v2)
//   - sqlite3:  embedded SQLite (github.com/mattn/go-sqlite3)
//   - postgres: PostgreSQL (github.com/lib/pq)
//   - mysql:    MySQL / MariaDB (github.com/go-sql-driver/mysql)
//
// # Targets
//
// ParseTarget accepts driver-prefixed forms and a few bare forms:
//
//	duckdb://:memory:                          in-memory DuckDB
//	duckdb:///var/data/telecom.duckdb          DuckDB file
//	sqlite3://analysis.db                      SQLite file
//	postgres://user:pw@host:5432/db            PostgreSQL URL (passed to lib/pq as is)
//	mysql://user:pw@tcp(host:3306)/db          MySQL DSN after the scheme
//	:memory:                                   in-memory DuckDB
//	telecom.duckdb, analysis.db, file:x.db     chosen by extension / prefix
//
// # Column Types
//
// Column kinds come from the driver-reported database type name. When a driver
// reports nothing (SQLite expressions) or reports a type whose values do not
// fit it (SQLite's dynamic typing), the kind is inferred from the values.
//
// # Errors
//
// Load failures wrap one of ErrSourceUnavailable, ErrQueryError or
// ErrEmptyResult together with the driver's original error:
//
//	tbl, err := src.Load(ctx, target, "SELECT * FROM xdr_data")
//	if errors.Is(err, source.ErrSourceUnavailable) {
//	    // connection could not be opened
//	}
//
// # Resilience
//
// BreakerLoader wraps any Loader with a sony/gobreaker circuit breaker that
// trips on repeated ErrSourceUnavailable failures. Query errors never trip it.
package source
