package logs

import (
	"context"
	"log/slog"
)

// Handler adds the span of the record's context to every record.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := SpanFromContext(ctx); ok {
		record.Add("span", span)
	}
	return h.Handler.Handle(ctx, record)
}

// the embedded methods would return the bare inner handler

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithGroup(name),
	}
}
