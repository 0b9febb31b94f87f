// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

// Package main is the entry point for the edakit command line tool.
//
// edakit loads the result of a query against a relational source into an
// in-memory table and runs one exploratory operation over it:
//
//	edakit -s calls.duckdb -q "SELECT * FROM calls" query
//	edakit -s calls.duckdb -q "SELECT * FROM calls" numeric --threshold 10
//	edakit -s calls.duckdb -q "SELECT * FROM calls" unique network
//	edakit -s calls.duckdb -q "SELECT * FROM calls" mode network
//	edakit -s calls.duckdb -q "SELECT * FROM calls" mean duration
//	edakit -s calls.duckdb -q "SELECT * FROM calls" hist duration --bins 20
//	edakit -s calls.duckdb -q "SELECT * FROM calls" box duration
//	edakit -s calls.duckdb -q "SELECT * FROM calls" count network
//	edakit -s calls.duckdb -q "SELECT * FROM calls" daily started_at
//	edakit -s calls.duckdb exec "CREATE TABLE calls AS SELECT * FROM 'calls.csv'"
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Command line flags (--source, --query, --breaker, --verbose)
//   - Environment variables (EDAKIT_SOURCE, EDAKIT_QUERY, LOG_LEVEL, ...)
//   - Config file (edakit.yaml, /etc/edakit/config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Output
//
// Results go to stdout as a text table or, with --format json, as JSON.
// Logs and the optional --metrics dump go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/tomtom215/edakit/internal/config"
	"github.com/tomtom215/edakit/internal/logging"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logging.Fatal().Err(err).Msg("edakit failed")
	}
}

// globalFlags are shared by every command.
type globalFlags struct {
	configPath *string
	target     *string
	query      *string
	format     *string
	breaker    *bool
	verbose    *bool
	metrics    *bool
}

// command is one registered subcommand.
type command struct {
	clause *kingpin.CmdClause
	run    func(ctx context.Context, env *environment) error
}

// environment is what a running command needs.
type environment struct {
	cfg    *config.Config
	flags  *globalFlags
	stdout io.Writer
	stderr io.Writer
}

// newApp builds the command line application. A fresh application per run
// keeps flag state out of package globals.
func newApp() (*kingpin.Application, *globalFlags, []command) {
	app := kingpin.New("edakit", "Exploratory data analysis over relational sources.")
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate)

	flags := &globalFlags{
		configPath: app.Flag("config", "Path to a YAML config file.").String(),
		target: app.Flag("source", "Source target, e.g. calls.duckdb, :memory:, postgres://user@host/db.").
			Short('s').String(),
		query:   app.Flag("query", "Query whose result is analyzed.").Short('q').String(),
		format:  app.Flag("format", "Output format.").Default("table").Enum("table", "json"),
		breaker: app.Flag("breaker", "Guard the source with a circuit breaker.").Bool(),
		verbose: app.Flag("verbose", "Enable debug logging.").Short('v').Bool(),
		metrics: app.Flag("metrics", "Dump source metrics to stderr after the command.").Bool(),
	}

	commands := append(analysisCommands(app), execCommand(app))
	return app, flags, commands
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	app, flags, commands := newApp()
	app.UsageWriter(stderr).ErrorWriter(stderr)

	selected, err := app.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})

	env := &environment{cfg: cfg, flags: flags, stdout: stdout, stderr: stderr}
	for _, cmd := range commands {
		if cmd.clause.FullCommand() != selected {
			continue
		}
		err := cmd.run(ctx, env)
		if *flags.metrics {
			if mErr := dumpMetrics(stderr); mErr != nil {
				err = errors.Join(err, mErr)
			}
		}
		return err
	}
	return fmt.Errorf("unknown command %q", selected)
}

// loadConfig layers command line flags over the koanf configuration.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadWithKoanf(*flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if *flags.target != "" {
		cfg.Source.Target = *flags.target
	}
	if *flags.query != "" {
		cfg.Source.Query = *flags.query
	}
	if *flags.breaker {
		cfg.Breaker.Enabled = true
	}
	if *flags.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
