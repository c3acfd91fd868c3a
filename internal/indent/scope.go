package indent

import "context"

// Enter pushes one nesting level onto the tracker in ctx and returns the
// matching exit. The exit is safe to call more than once; only the first call
// decrements.
//
// ctx must not be shared with other goroutines while the level is held. Give
// each goroutine its own tracker with Fork.
//
//	defer indent.Enter(ctx)()
func Enter(ctx context.Context) func() {
	t := FromContext(ctx)
	t.Increase()
	done := false
	return func() {
		if done {
			return
		}
		done = true
		t.Decrease()
	}
}

// Run executes fn one level deeper. The level is released on every exit path,
// including a panic, which continues to propagate. fn's error is returned
// unchanged. Like Enter, it mutates the tracker in ctx, so goroutines that
// fn starts must receive Fork(ctx) rather than ctx.
func Run(ctx context.Context, fn func(context.Context) error) error {
	defer Enter(ctx)()
	return fn(ctx)
}

// Call is Run for functions that produce a value.
func Call[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	defer Enter(ctx)()
	return fn(ctx)
}
