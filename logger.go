package kcluster

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kcluster-specific helpers.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSeeding logs the points chosen as initial centroids.
func (l *Logger) LogSeeding(ctx context.Context, indices []int) {
	l.DebugContext(ctx, "clusters seeded",
		"seeds", indices,
	)
}

// LogIteration logs one assign/recompute pass.
func (l *Logger) LogIteration(ctx context.Context, iteration, moved int) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"moved", moved,
	)
}

// LogRun logs the outcome of a clustering run.
func (l *Logger) LogRun(ctx context.Context, points, iterations int, stop string, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"points", points,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering completed",
			"points", points,
			"iterations", iterations,
			"stop", stop,
			"duration", duration,
		)
	}
}

// LogLoad logs the outcome of loading points from a source.
func (l *Logger) LogLoad(ctx context.Context, source string, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "points loaded",
			"source", source,
			"points", points,
		)
	}
}
