package logging

import (
	"context"

	"indentlog/internal/indent"
)

// WithContext returns ctx carrying a fresh depth tracker. Pass the result to
// slog's *Context methods and to indent.Enter/Run.
func WithContext(ctx context.Context) context.Context {
	return indent.WithTracker(ctx)
}

// ContextDepth reports the nesting depth carried by ctx.
func ContextDepth(ctx context.Context) int {
	return indent.Depth(ctx)
}
