// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package source

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/edakit/internal/config"
	"github.com/tomtom215/edakit/internal/logging"
	"github.com/tomtom215/edakit/internal/metrics"
	"github.com/tomtom215/edakit/internal/table"
)

// errRejected marks loads refused by an open circuit. It is always wrapped
// together with ErrSourceUnavailable.
var errRejected = errors.New("circuit breaker rejected load")

// BreakerLoader wraps a Loader with the circuit breaker pattern.
// Only ErrSourceUnavailable counts as a failure: a bad query says nothing
// about the health of the source.
type BreakerLoader struct {
	next Loader
	cb   *gobreaker.CircuitBreaker[*table.Table]
	name string
}

// NewBreakerLoader wraps next with a circuit breaker configured from cfg.
// The circuit opens once at least cfg.MinRequests loads were seen in the
// current interval and the failure ratio reaches cfg.FailureRatio.
func NewBreakerLoader(next Loader, cfg *config.BreakerConfig) *BreakerLoader {
	name := "relational-source"

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*table.Table](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, ErrSourceUnavailable)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerLoader{next: next, cb: cb, name: name}
}

// Load delegates to the wrapped Loader unless the circuit is open.
// Rejected loads fail with ErrSourceUnavailable.
func (b *BreakerLoader) Load(ctx context.Context, target Target, query string) (*table.Table, error) {
	tbl, err := b.cb.Execute(func() (*table.Table, error) {
		return b.next.Load(ctx, target, query)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			rejected := fmt.Errorf("%w: %w: %w", ErrSourceUnavailable, errRejected, err)
			metrics.RecordSourceLoad(target.Driver, 0, 0, errorType(rejected))
			logging.Warn().Err(err).Str("target", target.String()).Msg("[CIRCUIT BREAKER] Load rejected")
			return nil, rejected
		}

		result := "success"
		if errors.Is(err, ErrSourceUnavailable) {
			result = "failure"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, result).Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return tbl, nil
}

// State returns the current circuit state.
func (b *BreakerLoader) State() gobreaker.State {
	return b.cb.State()
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
