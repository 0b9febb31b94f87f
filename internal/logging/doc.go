// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

// Package logging provides centralized zerolog-based structured logging for EDAKit.
//
// # Quick Start
//
//	import "github.com/tomtom215/edakit/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Str("source", target.Driver).Msg("Loading table")
//	logging.Error().Err(err).Msg("Load failed")
//
// # Load Correlation
//
// Every source load runs under a short load ID so all log lines written for
// one query can be grouped:
//
//	ctx = logging.ContextWithNewLoadID(ctx)
//	logging.Ctx(ctx).Debug().Int("rows", n).Msg("Table loaded")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: console)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an event that is never
// sent is never written.
//
// # Testing
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
package logging
