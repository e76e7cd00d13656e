package logs

import (
	"cmp"
	"context"
	"crypto/rand"
)

// NewSpan derives a context carrying a fresh span.
// An empty parent defaults to the span already in ctx.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator := spanOf(ctx)
		parent = cmp.Or(parent, creator)

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if parent != "" {
			args = append(args, "parent", parent)
		}
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		logger.DebugContext(ctx, "span", args...)

		return ctx, span
	}
}
