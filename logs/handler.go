package logs

import (
	"context"
	"log/slog"
)

// Handler annotates every record with the span carried by the context.
type Handler struct {
	inner slog.Handler
}

var _ slog.Handler = new(Handler)

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span := spanOf(ctx); span != "" {
		record.Add("logs.span", span)
	}
	return h.inner.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}
