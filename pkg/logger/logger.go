// Package logger provides a structured, levelled logger built on log/slog.
//
// Handlers and services pull a request-scoped logger out of the context so
// every line they write carries the request_id:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("task created", "id", task.ID)
//	// → time=... level=INFO msg="task created" request_id=a1b2c3d4 id=7
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/tasker/config"
)

// L is the process-wide base logger. It is replaced by Setup.
var L = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

// New builds a logger writing to w: JSON in production, text otherwise.
func New(w io.Writer, production bool) *slog.Logger {
	return slog.New(newHandler(w, production))
}

func newHandler(w io.Writer, production bool) slog.Handler {
	if production {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}

// Setup installs the base logger for cfg and makes it the slog default.
// When a MongoDB sink is configured, records are fanned out to stdout and
// Mongo. The returned func flushes and closes any sink; it is never nil.
func Setup(cfg *config.Config) (func(), error) {
	handler := newHandler(os.Stdout, cfg.Production())
	closer := func() {}

	if cfg.Log.MongoURI != "" {
		mh, err := NewMongoHandler(cfg.Log.MongoURI, cfg.Log.MongoDatabase, cfg.Log.MongoCollection)
		if err != nil {
			return closer, fmt.Errorf("logger: %w", err)
		}
		handler = Fanout(handler, mh)
		closer = func() { _ = mh.Close() }
	}

	L = slog.New(handler)
	slog.SetDefault(L)
	return closer, nil
}

type ctxKey struct{}

// WithCtx returns the request-scoped logger stored by InjectLogger, or L.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped logger in ctx.
// Called by the access-log middleware.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
