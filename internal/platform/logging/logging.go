// Package logging builds the application's structured slog loggers and moves
// them through context.
//
// Construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Propagation (the HTTP middleware stores a request-scoped logger carrying
// request_id and correlation_id):
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Services log errors with the operation name, the entity ids involved, and
// the full error chain:
//
//	logger.ErrorContext(ctx, "failed to change task status",
//	    slog.String("operation", "ChangeStatus"),
//	    slog.String("task_id", taskID),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New builds a *slog.Logger writing to w.
//
// level is one of "debug", "info", "warn", "error"; anything else falls back
// to info. format selects the handler: "text" gets slog.NewTextHandler,
// everything else (including "json") gets slog.NewJSONHandler. Source
// locations are recorded only at debug level.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger stores logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default() when the
// context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
