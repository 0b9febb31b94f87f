// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package metrics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	// Source load metrics
	SourceLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edakit_source_load_duration_seconds",
			Help:    "Duration of relational source loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver"},
	)

	SourceLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edakit_source_load_errors_total",
			Help: "Total number of failed relational source loads",
		},
		[]string{"driver", "error_type"},
	)

	SourceRowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edakit_source_rows_loaded_total",
			Help: "Total number of rows materialized from relational sources",
		},
		[]string{"driver"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordSourceLoad records one load attempt. errorType is empty on success.
func RecordSourceLoad(driver string, duration time.Duration, rows int, errorType string) {
	SourceLoadDuration.WithLabelValues(driver).Observe(duration.Seconds())
	if errorType != "" {
		SourceLoadErrors.WithLabelValues(driver, errorType).Inc()
		return
	}
	SourceRowsLoaded.WithLabelValues(driver).Add(float64(rows))
}

// WriteText encodes every gathered metric family whose name starts with one
// of prefixes (all families when none are given) in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer, prefixes ...string) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !hasAnyPrefix(mf.GetName(), prefixes) {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		return closer.Close()
	}
	return nil
}

func hasAnyPrefix(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
