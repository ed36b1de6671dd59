// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names used across matperf
// (strategy, m, k, n, workers, duration).
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with matperf-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that writes JSON records to w (stderr if nil).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to w (stderr if nil).
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
// It is the default for library code.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", name),
	}
}

// WithShape adds the product shape (m×k)·(k×n) to the logger.
func (l *Logger) WithShape(m, k, n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("m", m, "k", k, "n", n),
	}
}

// LogDispatch logs the fan-out of one multiplication.
func (l *Logger) LogDispatch(ctx context.Context, strategy string, workers, ranges int) {
	l.DebugContext(ctx, "multiply dispatched",
		"strategy", strategy,
		"workers", workers,
		"ranges", ranges,
	)
}

// LogMultiply logs the outcome of one multiplication.
func (l *Logger) LogMultiply(ctx context.Context, strategy string, m, k, n int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "multiply failed",
			"strategy", strategy,
			"m", m, "k", k, "n", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "multiply completed",
			"strategy", strategy,
			"m", m, "k", k, "n", n,
			"duration", d,
		)
	}
}

// LogRun logs the outcome of a benchmark run.
func (l *Logger) LogRun(ctx context.Context, strategy string, repeat int, best time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "benchmark run failed",
			"strategy", strategy,
			"repeat", repeat,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "benchmark run completed",
			"strategy", strategy,
			"repeat", repeat,
			"best", best,
		)
	}
}
