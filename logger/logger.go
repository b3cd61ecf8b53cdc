// Package logger provides wrappers around slog.
package logger // import "go.yhsif.com/img2json/logger"

import (
	"context"
	"io"

	"golang.org/x/exp/slog"
)

type logKeyType struct{}

var logKey logKeyType

// For returns the logger attached to ctx, or slog.Default().
func For(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(logKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// SetContext attaches l to ctx.
func SetContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, logKey, l)
}

// Attach returns a context carrying For(ctx) with args added.
func Attach(ctx context.Context, args ...any) context.Context {
	return SetContext(ctx, For(ctx).With(args...))
}

// Options defines the options used by New.
type Options struct {
	// Minimal level to log, default to slog.LevelInfo.
	Level slog.Leveler

	// Use JSON handler instead of text handler.
	JSON bool

	AddSource bool
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		AddSource: opts.AddSource,
		Level:     opts.Level,
	}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
