package logs

import "context"

// Span identifies one unit of work, such as a single render.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanFromContext(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok && span != ""
}
