package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan opens a new span under the given parent (or the context's
// current span when parent is empty) and returns a context carrying it.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator := spanOf(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		attrs := make([]any, 0, 4)
		if parent != "" {
			attrs = append(attrs, "parent", parent)
		}
		if creator != "" && creator != parent {
			attrs = append(attrs, "creator", creator)
		}
		logger.InfoContext(ctx, "new span", attrs...)

		return ctx, span
	}
}
