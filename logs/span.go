package logs

import "context"

// Span identifies one logical operation across log records.
type Span string

type spanKeyType struct{}

// SpanKey is the context key carrying the current Span.
var SpanKey spanKeyType

func spanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
