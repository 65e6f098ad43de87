package pkg

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// ContextWithLogger attaches a request-scoped logger to the context. Handlers
// install it once per request; components retrieve it with LoggerFromContext
// so step logging stays structured and request-scoped instead of global.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext returns the request-scoped logger, or fallback when the
// context carries none. fallback may be nil, in which case slog.Default() is
// used.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
