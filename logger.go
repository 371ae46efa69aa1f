package tabula

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tabula-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTable adds a table field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// WithColumn adds a column field to the logger.
func (l *Logger) WithColumn(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", name),
	}
}

// WithRows adds a rows field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogFilter logs a filter operation.
func (l *Logger) LogFilter(ctx context.Context, table string, selected, total int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filter failed",
			"table", table,
			"rows", total,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "filter completed",
			"table", table,
			"rows", total,
			"selected", selected,
		)
	}
}

// LogSort logs a multi-column sort.
func (l *Logger) LogSort(ctx context.Context, table string, keys []string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sort failed",
			"table", table,
			"keys", keys,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sort completed",
			"table", table,
			"keys", keys,
			"rows", rows,
		)
	}
}

// LogAppend logs an append of one table onto another.
func (l *Logger) LogAppend(ctx context.Context, table string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "append failed",
			"table", table,
			"rows", rows,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "append completed",
			"table", table,
			"rows", rows,
		)
	}
}

// LogLoad logs a Loader run.
func (l *Logger) LogLoad(ctx context.Context, table string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"table", table,
			"rows_read", rows,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"table", table,
			"rows", rows,
		)
	}
}
