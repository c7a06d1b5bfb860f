package llah

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with llah-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDocument adds a document_id field to the logger.
func (l *Logger) WithDocument(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("document_id", id),
	}
}

// WithShape adds the neighbor count and combination size to the logger.
func (l *Logger) WithShape(n, m int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n, "m", m),
	}
}

// LogCreateDocument logs a document registration. Successful registrations are
// expected on a logger scoped with WithDocument.
func (l *Logger) LogCreateDocument(ctx context.Context, landmarks, features int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "create document failed",
			"landmarks", landmarks,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "document created",
			"landmarks", landmarks,
			"features", features,
		)
	}
}

// LogLookup logs a document lookup.
func (l *Logger) LogLookup(ctx context.Context, dots, minLandmarks, found int) {
	l.DebugContext(ctx, "lookup completed",
		"dots", dots,
		"min_landmarks", minLandmarks,
		"found", found,
	)
}

// LogLearn logs a discretization learning run.
func (l *Logger) LogLearn(ctx context.Context, pointSets, samples, numDiscrete int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "learn hashing failed",
			"point_sets", pointSets,
			"samples", samples,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "learn hashing completed",
			"point_sets", pointSets,
			"samples", samples,
			"levels", numDiscrete,
		)
	}
}

// LogHistogramSaturated warns that too many invariant samples hit the last histogram bin.
func (l *Logger) LogHistogramSaturated(ctx context.Context, fraction, allowed, maxInvariantValue float64) {
	l.WarnContext(ctx, "last histogram bin holds a significant share of samples; maxInvariantValue should be increased",
		"fraction", fraction,
		"allowed", allowed,
		"max_invariant_value", maxInvariantValue,
	)
}

// LogSkippedPointSet warns that a training point set is too small to generate features.
func (l *Logger) LogSkippedPointSet(ctx context.Context, index, points, required int) {
	l.WarnContext(ctx, "skipping training point set",
		"index", index,
		"points", points,
		"required", required,
	)
}
