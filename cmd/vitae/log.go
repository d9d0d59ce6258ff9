package main

import (
	"context"
	"log/slog"

	"impractical.co/vitae"
)

type loggerKey struct{}

// withLogger installs logger for both the command and the vitae package.
func withLogger(ctx context.Context, logger *slog.Logger) context.Context {
	ctx = vitae.LoggingContext(ctx, logger)
	return context.WithValue(ctx, loggerKey{}, logger)
}

// logFrom returns the logger installed by withLogger, or the default logger
// when there isn't one, as in tests.
func logFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
