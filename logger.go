package zipstate

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with zipstate-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSource adds the artifact name to the logger.
func (l *Logger) WithSource(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", name),
	}
}

// LogLoad logs the outcome of obtaining a dataset.
func (l *Logger) LogLoad(ctx context.Context, info LoadInfo, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"duration", info.Duration,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "dataset loaded",
		"version", info.Version,
		"entries", info.Entries,
		"compression", info.Compression,
		"bytes", info.Bytes,
		"cached", info.Cached,
		"duration", info.Duration,
	)
}

// LogLookup logs a ZIP code lookup.
func (l *Logger) LogLookup(ctx context.Context, code, abbr string, found bool, err error) {
	if err != nil {
		l.DebugContext(ctx, "lookup rejected",
			"code", code,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "lookup completed",
		"code", code,
		"state", abbr,
		"found", found,
	)
}

// LoadInfo describes a completed dataset load.
type LoadInfo struct {
	Version     string
	Entries     int
	Compression string
	Bytes       int
	Cached      bool
	Duration    time.Duration
}
