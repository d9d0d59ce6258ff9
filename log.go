package vitae

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var (
	slogCtxKey = ctxKey{}
)

func logger(ctx context.Context) *slog.Logger {
	val := ctx.Value(slogCtxKey)
	if val == nil {
		return slog.New(slog.DiscardHandler)
	}
	logger, ok := val.(*slog.Logger)
	if !ok || logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// LoggingContext returns a copy of ctx that Render and its helpers will log
// to. Without one, nothing is logged.
func LoggingContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, slogCtxKey, logger)
}
