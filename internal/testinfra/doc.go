// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to start server-based relational sources
// so the source and filter packages can be exercised against real engines
// instead of only the embedded DuckDB and SQLite drivers.
//
// # PostgreSQL Container
//
//	func TestLoadFromPostgres(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    pg, err := testinfra.NewPostgresContainer(ctx,
//	        testinfra.WithInitStatements("CREATE TABLE t (id INTEGER)"),
//	    )
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg.Container)
//
//	    target, _ := source.ParseTarget(pg.URL)
//	    // ...
//	}
//
// # CI Considerations
//
// These tests require Docker and the integration build tag:
//
//	go test -tags integration ./...
//
// Tests are skipped gracefully if Docker is unavailable. The first run may
// need to download the container image.
package testinfra
