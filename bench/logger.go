package bench

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with harness-specific context.
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

// WithImpl adds the implementation name to the logger.
func (l *Logger) WithImpl(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("impl", name),
	}
}

// WithWorkload adds the workload kind to the logger.
func (l *Logger) WithWorkload(kind Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("workload", string(kind)),
	}
}

// LogWorkload logs a generated workload.
func (l *Logger) LogWorkload(ctx context.Context, w *Workload, stats KeyStats) {
	l.DebugContext(ctx, "workload generated",
		"ops", w.Len(),
		"seed", w.Seed,
		"distinct_keys", stats.Distinct,
		"min_key", stats.Min,
		"max_key", stats.Max,
	)
}

// LogPhase logs one timed phase.
func (l *Logger) LogPhase(ctx context.Context, r Result) {
	switch {
	case r.Err != "":
		l.ErrorContext(ctx, "phase failed",
			"op", r.Op,
			"error", r.Err,
		)
	case !r.Verified:
		l.WarnContext(ctx, "phase verification failed",
			"op", r.Op,
			"len", r.Len,
			"misses", r.Misses,
		)
	default:
		l.InfoContext(ctx, "phase completed",
			"op", r.Op,
			"ops", r.Ops,
			"duration", r.Duration.Round(time.Microsecond),
			"ns_per_op", r.NsPerOp(),
		)
	}
}

// LogReport logs the end of a run.
func (l *Logger) LogReport(ctx context.Context, rep *Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run completed with failures",
			"run_id", rep.RunID,
			"results", len(rep.Results),
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "run completed",
		"run_id", rep.RunID,
		"results", len(rep.Results),
		"elapsed", time.Since(rep.Started).Round(time.Millisecond),
	)
}
