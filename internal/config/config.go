// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/edakit/internal/validation"
)

// Config holds all edakit configuration.
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Source  SourceConfig  `koanf:"source"`
	Breaker BreakerConfig `koanf:"breaker"`
	Plot    PlotConfig    `koanf:"plot"`
	Logging LoggingConfig `koanf:"logging"`
}

// SourceConfig selects the relational source tables are loaded from.
type SourceConfig struct {
	// Target is a connection target understood by source.ParseTarget.
	Target string `koanf:"target" validate:"required"`

	// Query is the default query used when a command is given none.
	Query string `koanf:"query"`

	// QueryTimeout bounds a single load when > 0. Zero means no deadline.
	QueryTimeout time.Duration `koanf:"query_timeout" validate:"gte=0"`
}

// BreakerConfig configures the circuit breaker placed in front of the source.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MinRequests  uint32        `koanf:"min_requests" validate:"gte=1"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxRequests  uint32        `koanf:"max_requests" validate:"gte=1"`
}

// PlotConfig holds defaults for the plot data helpers.
type PlotConfig struct {
	Bins    int     `koanf:"bins" validate:"gte=1,lte=1000"`
	BoxCoef float64 `koanf:"box_coef" validate:"gt=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"loglevel"`

	// Format is the output format: json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Validate checks that the configuration is complete and within range.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
