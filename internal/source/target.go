// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package source

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Driver names as registered with database/sql.
const (
	DriverDuckDB   = "duckdb"
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Target identifies a relational source: a database/sql driver and its DSN.
type Target struct {
	Driver string `validate:"required,sqldriver"`
	DSN    string `validate:"required"`
}

// MemoryTarget is an ephemeral in-memory DuckDB database.
var MemoryTarget = Target{Driver: DriverDuckDB, DSN: ":memory:"}

// schemeDrivers maps target URL schemes to driver names.
var schemeDrivers = map[string]string{
	"duckdb":     DriverDuckDB,
	"sqlite":     DriverSQLite,
	"sqlite3":    DriverSQLite,
	"postgres":   DriverPostgres,
	"postgresql": DriverPostgres,
	"mysql":      DriverMySQL,
}

// ParseTarget converts a target string into a Target. See the package
// documentation for accepted forms.
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Target{}, fmt.Errorf("%w: empty target", ErrInvalidTarget)
	}

	if scheme, rest, ok := strings.Cut(s, "://"); ok {
		driver, known := schemeDrivers[strings.ToLower(scheme)]
		if !known {
			return Target{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidTarget, scheme)
		}
		if rest == "" {
			return Target{}, fmt.Errorf("%w: %s target has no DSN", ErrInvalidTarget, driver)
		}
		if driver == DriverPostgres {
			// lib/pq parses postgres:// URLs itself.
			return Target{Driver: driver, DSN: s}, nil
		}
		return Target{Driver: driver, DSN: rest}, nil
	}

	switch {
	case s == ":memory:":
		return MemoryTarget, nil
	case strings.HasPrefix(s, "file:"):
		return Target{Driver: DriverSQLite, DSN: s}, nil
	case strings.Contains(s, "host=") || strings.Contains(s, "dbname="):
		return Target{Driver: DriverPostgres, DSN: s}, nil
	}

	switch strings.ToLower(filepath.Ext(s)) {
	case ".duckdb", ".ddb":
		return Target{Driver: DriverDuckDB, DSN: s}, nil
	case ".db", ".sqlite", ".sqlite3":
		return Target{Driver: DriverSQLite, DSN: s}, nil
	}

	return Target{}, fmt.Errorf("%w: cannot infer driver for %q", ErrInvalidTarget, s)
}

var pgPasswordPattern = regexp.MustCompile(`password=\S+`)

// String returns the target with any password redacted, for logs and errors.
func (t Target) String() string {
	return t.Driver + "://" + t.redactedDSN()
}

func (t Target) redactedDSN() string {
	switch t.Driver {
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(t.DSN)
		if err != nil || cfg.Passwd == "" {
			return t.DSN
		}
		cfg.Passwd = "xxxxx"
		return cfg.FormatDSN()
	case DriverPostgres:
		if u, err := url.Parse(t.DSN); err == nil && u.Scheme != "" {
			return strings.TrimPrefix(u.Redacted(), u.Scheme+"://")
		}
		return pgPasswordPattern.ReplaceAllString(t.DSN, "password=xxxxx")
	default:
		return t.DSN
	}
}
