package logging

import (
	"context"
	"log/slog"
	"time"
)

const (
	// FieldLogger names the dot-separated logger a record belongs to.
	FieldLogger = "logger"
	// FieldLvl is the per-call manual depth hint.
	FieldLvl = "lvl"
	// FieldColor is the per-call color tag.
	FieldColor = "c"
	// FieldFunc overrides the function name shown in annotations.
	FieldFunc = "func"
	// FieldDepth carries the resolved nesting depth in JSON output.
	FieldDepth = "depth"
)

type Attr = slog.Attr

type Value = slog.Value

func Any(key string, value any) Attr { return slog.Any(key, value) }

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

// Lvl nests a single record depth levels deeper (or shallower when negative).
func Lvl(depth int) Attr { return slog.Int(FieldLvl, depth) }

// Color tags a single record with a color name such as "red" or "cyan".
func Color(tag string) Attr { return slog.String(FieldColor, tag) }

// Func overrides the function name shown in the annotation.
func Func(name string) Attr { return slog.String(FieldFunc, name) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

func Args(attrs ...Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// Named returns a logger whose records carry the given dot-separated name.
// Package-depth and module indentation are computed from it.
// If logger is nil, a no-op logger is used as the base.
func Named(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldLogger, name))
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
