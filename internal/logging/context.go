// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const loadIDKey contextKey = "load_id"

// GenerateLoadID creates a new load ID: the first 8 characters of a UUID.
func GenerateLoadID() string {
	return uuid.New().String()[:8]
}

// ContextWithLoadID returns a new context carrying the given load ID.
func ContextWithLoadID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, loadIDKey, id)
}

// ContextWithNewLoadID returns a context with a freshly generated load ID,
// unless ctx already carries one.
func ContextWithNewLoadID(ctx context.Context) context.Context {
	if LoadIDFromContext(ctx) != "" {
		return ctx
	}
	return ContextWithLoadID(ctx, GenerateLoadID())
}

// LoadIDFromContext returns the load ID stored in ctx, or "".
func LoadIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(loadIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger with the context's load ID attached.
//
//	logging.Ctx(ctx).Info().Msg("Table loaded")
//	// {"level":"info","load_id":"abc12345","message":"Table loaded"}
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := Logger()
	if id := LoadIDFromContext(ctx); id != "" {
		logger = logger.With().Str("load_id", id).Logger()
	}
	return &logger
}
