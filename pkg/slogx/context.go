package slogx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithContext returns a context carrying logger. A nil logger stores
// nothing, so FromContext falls back to the process default.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request-scoped logger, or the process default
// when the context has none.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
