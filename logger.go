package seglist

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Logger wraps slog.Logger with seglist-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithList tags records with a list name.
func (l *Logger) WithList(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("list", name),
	}
}

// LogSegmentLinked records a segment joining the chain.
func (l *Logger) LogSegmentLinked(segments, slots int) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("segment linked",
		"segments", segments,
		"slots", slots,
	)
}

// LogSegmentUnlinked records a segment leaving the chain.
func (l *Logger) LogSegmentUnlinked(segments, slots int) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("segment unlinked",
		"segments", segments,
		"slots", slots,
	)
}

// LogShrink records a ShrinkToFit pass.
func (l *Logger) LogShrink(before, after int) {
	l.Debug("tail shrunk",
		"capacity_before", before,
		"capacity_after", after,
	)
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op, name string, elements, bytes int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot "+op+" failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "snapshot "+op+" completed",
		"name", name,
		"elements", elements,
		"bytes", bytes,
		"size", humanize.IBytes(uint64(max(bytes, 0))),
		"duration", elapsed,
	)
}
