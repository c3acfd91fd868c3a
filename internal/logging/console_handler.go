package logging

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"indentlog/internal/indent"
	"indentlog/internal/render"
)

type indentHandler struct {
	mu       *sync.Mutex
	writer   io.Writer
	renderer *render.Renderer
	level    slog.Leveler
	// attrs are flattened when added so later groups do not prefix them.
	attrs  []kv
	groups []string
}

// NewHandler returns a slog handler that renders records through r and
// writes one line per record to w. The nesting depth is taken from the
// context passed to Handle.
func NewHandler(w io.Writer, r *render.Renderer, level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &indentHandler{mu: &sync.Mutex{}, writer: w, renderer: r, level: level}
}

func (h *indentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *indentHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	kvs := make([]kv, 0, record.NumAttrs()+len(h.attrs))
	kvs = append(kvs, h.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&kvs, h.groups, attr)
		return true
	})

	rec := render.Record{
		Time:    record.Time,
		Level:   record.Level,
		Message: record.Message,
	}

	extras := make([]kv, 0, len(kvs))
	for _, kv := range kvs {
		switch kv.key {
		case FieldLogger:
			rec.Source = attrString(kv.value)
		case FieldLvl:
			rec.Hint = attrInt(kv.value)
		case FieldColor:
			rec.Color = attrString(kv.value)
		case FieldFunc:
			rec.Func = attrString(kv.value)
		default:
			extras = append(extras, kv)
		}
	}
	if rec.Source == "" {
		rec.Source = h.renderer.Config().TopLevel
	}
	if rec.Func == "" && record.PC != 0 {
		rec.Func = callerName(record.PC)
	}
	if rec.Message == "" {
		rec.Message = "(no message)"
	}

	extras = dedupeKVsByKey(extras)
	if len(extras) > 0 {
		var b strings.Builder
		b.WriteString(rec.Message)
		for _, kv := range extras {
			b.WriteByte(' ')
			b.WriteString(kv.key)
			b.WriteByte('=')
			b.WriteString(formatValue(kv.value))
		}
		rec.Message = b.String()
	}

	line := h.renderer.Render(rec, indent.Depth(ctx)) + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, line)
	return err
}

func (h *indentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	flattenAttrs(&clone.attrs, h.groups, attrs)
	return clone
}

func (h *indentHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *indentHandler) clone() *indentHandler {
	clone := &indentHandler{
		mu:       h.mu,
		writer:   h.writer,
		renderer: h.renderer,
		level:    h.level,
	}
	if len(h.attrs) > 0 {
		clone.attrs = make([]kv, len(h.attrs))
		copy(clone.attrs, h.attrs)
	}
	if len(h.groups) > 0 {
		clone.groups = make([]string, len(h.groups))
		copy(clone.groups, h.groups)
	}
	return clone
}

// callerName reduces a program counter to the bare function name:
// "indentlog/cmd/indentlog.runDemo" becomes "runDemo" and methods keep their
// receiver, as in "(*Server).Start".
func callerName(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	return trimFuncName(frame.Function)
}

func trimFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

type kv struct {
	key   string
	value slog.Value
}

func dedupeKVsByKey(attrs []kv) []kv {
	if len(attrs) < 2 {
		return attrs
	}
	positions := make(map[string]int, len(attrs))
	deduped := make([]kv, 0, len(attrs))
	for _, attr := range attrs {
		if attr.key == "" {
			continue
		}
		if pos, ok := positions[attr.key]; ok {
			deduped[pos].value = attr.value
			continue
		}
		positions[attr.key] = len(deduped)
		deduped = append(deduped, attr)
	}
	return deduped
}

func flattenAttrs(dst *[]kv, prefix []string, attrs []slog.Attr) {
	for _, attr := range attrs {
		flattenAttr(dst, prefix, attr)
	}
}

func flattenAttr(dst *[]kv, prefix []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		next := prefix
		if attr.Key != "" {
			next = appendPrefix(prefix, attr.Key)
		}
		flattenAttrs(dst, next, attr.Value.Group())
		return
	}
	key := attr.Key
	if len(prefix) > 0 {
		if key != "" {
			key = strings.Join(append(prefix, key), ".")
		} else {
			key = strings.Join(prefix, ".")
		}
	}
	*dst = append(*dst, kv{key: key, value: attr.Value})
}

func appendPrefix(prefix []string, value string) []string {
	out := make([]string, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = value
	return out
}
