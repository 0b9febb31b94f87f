// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/tomtom215/edakit/internal/logging"
	"github.com/tomtom215/edakit/internal/metrics"
	"github.com/tomtom215/edakit/internal/table"
	"github.com/tomtom215/edakit/internal/validation"
)

// Loader runs a query against a relational source and returns the full result.
type Loader interface {
	Load(ctx context.Context, target Target, query string) (*table.Table, error)
}

// SQLSource is a Loader backed by database/sql. It holds no connection
// between calls; every Load opens and closes its own.
type SQLSource struct{}

// NewSQLSource creates a database/sql backed loader.
func NewSQLSource() *SQLSource {
	return &SQLSource{}
}

// Load opens target, runs query and materializes the result set.
// The connection is closed before Load returns on every path.
func (s *SQLSource) Load(ctx context.Context, target Target, query string) (*table.Table, error) {
	ctx = logging.ContextWithNewLoadID(ctx)
	start := time.Now()

	tbl, err := s.load(ctx, target, query)

	elapsed := time.Since(start)
	rows := 0
	if tbl != nil {
		rows = tbl.NumRows()
	}
	metrics.RecordSourceLoad(target.Driver, elapsed, rows, errorType(err))

	log := componentLogger(ctx)
	if err != nil {
		log.Warn().
			Err(err).
			Str("target", target.String()).
			Dur("elapsed", elapsed).
			Msg("Source load failed")
		return nil, err
	}

	log.Debug().
		Str("target", target.String()).
		Int("rows", rows).
		Int("columns", tbl.NumColumns()).
		Dur("elapsed", elapsed).
		Msg("Source load complete")
	return tbl, nil
}

// componentLogger returns the source component logger carrying the load ID
// of ctx, if any.
func componentLogger(ctx context.Context) zerolog.Logger {
	log := logging.WithComponent("source")
	if id := logging.LoadIDFromContext(ctx); id != "" {
		log = log.With().Str("load_id", id).Logger()
	}
	return log
}

func (s *SQLSource) load(ctx context.Context, target Target, query string) (*table.Table, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", ErrQueryError)
	}

	db, err := open(ctx, target)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(db, "source connection")

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryError, err)
	}
	defer closeWithLog(rows, "result set")

	return materialize(rows)
}

// open validates target, opens a single-connection pool and verifies it with a ping.
func open(ctx context.Context, target Target) (*sql.DB, error) {
	if err := validation.ValidateStruct(&target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	db, err := sql.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, target, err)
	}

	// One connection keeps per-connection state (SQLite :memory:, temp tables)
	// consistent for the duration of the call.
	db.SetMaxOpenConns(1)
	if target.Driver == DriverMySQL {
		// Recommended by the mysql driver README
		db.SetConnMaxLifetime(3 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, target, err)
	}

	return db, nil
}
