// Package indent tracks log nesting depth for one unit of execution.
//
// A Tracker travels inside a context.Context. Code that wants its log lines
// nested one level deeper brackets the work with Enter or Run; log handlers read
// the current depth back out of the context passed to slog's *Context methods.
//
// Trackers are deliberately not synchronized. Each goroutine that logs with
// its own nesting should receive its own tracker via Fork before it starts.
package indent
