// Package log provides a context-aware logging utility using slog.
package log

import (
	"context"
	"io"
	"log/slog"
)

type slogFieldKey struct{}

var slogFields slogFieldKey

// ContextHandler adds contextual attributes carried in the context to every
// Record before calling the underlying handler.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}
	return h.Handler.Handle(ctx, r)
}

// AppendCtx adds an slog attribute to the provided context so that it will
// be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		v = append(v, attr)
		return context.WithValue(parent, slogFields, v)
	}
	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// New builds a JSON logger writing to w, wrapped with the context handler.
func New(w io.Writer, options *slog.HandlerOptions) *slog.Logger {
	if options == nil {
		options = &slog.HandlerOptions{Level: slog.LevelInfo}
	}
	return slog.New(&ContextHandler{Handler: slog.NewJSONHandler(w, options)})
}

// NullLogger returns a logger that discards everything. Useful in tests.
func NullLogger() *slog.Logger {
	return slog.New(&ContextHandler{Handler: slog.DiscardHandler})
}
