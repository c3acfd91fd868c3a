package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"indentlog/internal/indent"
)

func newJSONHandler(w io.Writer, lvl slog.Leveler, addSource bool) slog.Handler {
	opts := slog.HandlerOptions{
		Level:     lvl,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
				}
			case slog.LevelKey:
				attr.Key = "level"
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			case slog.MessageKey:
				attr.Key = "msg"
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			}
			return attr
		},
	}
	return newDepthHandler(slog.NewJSONHandler(w, &opts))
}

// depthHandler records the context's nesting depth as a structured field, so
// machine-readable output keeps the shape the console shows.
type depthHandler struct {
	next slog.Handler
}

func newDepthHandler(next slog.Handler) slog.Handler {
	if next == nil {
		return NoopHandler{}
	}
	return &depthHandler{next: next}
}

func (h *depthHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *depthHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(slog.Int(FieldDepth, indent.Depth(ctx)))
	return h.next.Handle(ctx, record)
}

func (h *depthHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &depthHandler{next: h.next.WithAttrs(attrs)}
}

func (h *depthHandler) WithGroup(name string) slog.Handler {
	return &depthHandler{next: h.next.WithGroup(name)}
}
