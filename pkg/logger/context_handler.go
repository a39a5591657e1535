package logger

import (
	"context"
	"log/slog"
)

// contextValue names a context key whose value is copied onto every record.
type contextValue struct {
	name string
	key  any
}

// contextHandler appends the configured context values to records logged
// with a context that carries them. Records without a context value are left alone.
type contextHandler struct {
	slog.Handler
	values []contextValue
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, cv := range h.values {
		if v := ctx.Value(cv.key); v != nil {
			rec.AddAttrs(slog.Any(cv.name, v))
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), values: h.values}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), values: h.values}
}
