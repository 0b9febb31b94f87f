// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

/*
Package metrics provides Prometheus instrumentation for relational source loads.

# Available Metrics

Source loads:
  - edakit_source_load_duration_seconds{driver}: load latency histogram
  - edakit_source_load_errors_total{driver,error_type}: failed loads
    (error_type: unavailable, query, empty_result, rejected)
  - edakit_source_rows_loaded_total{driver}: rows materialized into tables

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

All collectors are registered with the default registry through promauto.
WriteText encodes the gathered families in the Prometheus text exposition
format for the edakit --metrics flag.
*/
package metrics
