package indent

import "context"

type contextKey string

const trackerKey contextKey = "indent_tracker"

// Tracker holds a nesting counter that never drops below zero.
// A nil *Tracker reads as depth 0 and ignores mutation.
//
// A Tracker is not synchronized. A context carrying one belongs to a single
// goroutine; pass Fork(ctx) to any goroutine started from it.
type Tracker struct {
	depth int
}

// Depth returns the current nesting level.
func (t *Tracker) Depth() int {
	if t == nil {
		return 0
	}
	return t.depth
}

// Increase adds one nesting level.
func (t *Tracker) Increase() {
	if t == nil {
		return
	}
	t.depth++
}

// Decrease removes one nesting level. Unmatched calls at depth 0 are ignored.
func (t *Tracker) Decrease() {
	if t == nil || t.depth == 0 {
		return
	}
	t.depth--
}

// WithTracker annotates context with a fresh tracker at depth 0.
func WithTracker(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, trackerKey, &Tracker{})
}

// Fork returns a context carrying a new tracker seeded with the current depth
// of ctx. Use it when handing work to another goroutine: parent and child
// evolve independently afterwards.
func Fork(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, trackerKey, &Tracker{depth: Depth(ctx)})
}

// FromContext extracts the tracker if present.
func FromContext(ctx context.Context) *Tracker {
	if ctx == nil {
		return nil
	}
	if t, ok := ctx.Value(trackerKey).(*Tracker); ok {
		return t
	}
	return nil
}

// Depth reports the nesting level carried by ctx, or 0 without a tracker.
func Depth(ctx context.Context) int {
	return FromContext(ctx).Depth()
}
