// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/edakit/internal/table"
)

// ErrConnectionClosed is returned when a closed Connection is used.
var ErrConnectionClosed = errors.New("connection closed")

// Connection is a long-lived handle to one source, for callers that run
// several statements against the same database (seeding, imports, ad-hoc
// queries). TableFilter does not use it: loads there are call-scoped.
//
// A Connection is not safe for concurrent use.
type Connection struct {
	target Target
	db     *sql.DB
	closed bool
}

// NewConnection creates an unconnected handle for target.
func NewConnection(target Target) *Connection {
	return &Connection{target: target}
}

// Connect opens the connection. Calling Connect on an open Connection is a no-op.
func (c *Connection) Connect(ctx context.Context) error {
	if c.closed {
		return ErrConnectionClosed
	}
	if c.db != nil {
		return nil
	}

	db, err := open(ctx, c.target)
	if err != nil {
		return err
	}
	c.db = db
	log := componentLogger(ctx)
	log.Debug().Str("target", c.target.String()).Msg("Connection opened")
	return nil
}

// Connected reports whether the connection is open.
func (c *Connection) Connected() bool {
	return c.db != nil
}

// Closed reports whether Close has been called.
func (c *Connection) Closed() bool {
	return c.closed
}

// Exec runs a statement that returns no rows and reports the affected row count.
// Drivers that cannot report a count return -1.
func (c *Connection) Exec(ctx context.Context, stmt string) (int64, error) {
	if err := c.Connect(ctx); err != nil {
		return 0, err
	}

	res, err := c.db.ExecContext(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrQueryError, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return -1, nil //nolint:nilerr // count is optional
	}
	return n, nil
}

// Query runs query on the open connection and materializes the result.
// The connection is opened on first use.
func (c *Connection) Query(ctx context.Context, query string) (*table.Table, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", ErrQueryError)
	}
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryError, err)
	}
	defer closeWithLog(rows, "result set")

	return materialize(rows)
}

// Close releases the connection. It is safe to call more than once.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.db == nil {
		return nil
	}
	db := c.db
	c.db = nil
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", c.target, err)
	}
	return nil
}
