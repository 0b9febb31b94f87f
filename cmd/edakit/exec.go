// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/tomtom215/edakit/internal/logging"
	"github.com/tomtom215/edakit/internal/source"
)

// execCommand registers "exec", which runs statements in order on one
// connection. It is how sources are prepared for analysis, e.g. importing a
// CSV file into DuckDB.
func execCommand(app *kingpin.Application) command {
	cmd := app.Command("exec", "Run statements against the source on one connection.")
	statements := cmd.Arg("statements", "SQL statements, run in order.").Required().Strings()

	return command{cmd, func(ctx context.Context, env *environment) error {
		target, err := source.ParseTarget(env.cfg.Source.Target)
		if err != nil {
			return err
		}

		conn := source.NewConnection(target)
		defer func() {
			if err := conn.Close(); err != nil {
				logging.Warn().Err(err).Msg("Failed to close connection")
			}
		}()

		for i, stmt := range *statements {
			n, err := conn.Exec(ctx, stmt)
			if err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
			affected := "unknown"
			if n >= 0 {
				affected = humanize.Comma(n)
			}
			if _, err := fmt.Fprintf(env.stdout, "statement %d: %s rows affected\n", i+1, affected); err != nil {
				return err
			}
		}
		return nil
	}}
}
