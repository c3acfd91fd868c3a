package render

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	truncateWidth = 50
	ellipsis      = "..."
	separator     = " - "
	levelWidth    = 8
)

// Record is the subset of a log record the renderer consumes. Zero values are
// neutral: no hint, no color, no function name, and the current time.
type Record struct {
	Time    time.Time
	Level   slog.Level
	Source  string
	Message string
	// Hint is the per-call manual depth adjustment. It may be negative.
	Hint int
	// Color is a tag name from ColorTags.
	Color string
	// Func is the function name shown in the annotation.
	Func string
}

// Renderer formats records according to an immutable Config. It is safe for
// concurrent use.
type Renderer struct {
	cfg        Config
	annotation *Template
}

// New validates cfg and builds a renderer.
func New(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	tpl, err := ParseTemplate(cfg.annotationFormat())
	if err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg, annotation: tpl}, nil
}

// Config returns a copy of the renderer settings.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Depth merges the context depth, the record's manual hint, and the hierarchy
// term into a single non-negative nesting level.
func (r *Renderer) Depth(rec Record, depth int) int {
	total := depth + rec.Hint
	if r.cfg.IndentModules && rec.Source != r.cfg.TopLevel {
		total++
	}
	if r.cfg.IndentPackages {
		total += strings.Count(rec.Source, ".")
	}
	if total < 0 {
		return 0
	}
	return total
}

// Render produces one output line, without a trailing newline.
func (r *Renderer) Render(rec Record, depth int) string {
	message := r.indent(r.Depth(rec, depth)) + rec.Message
	if r.cfg.Truncate {
		message = text.Snip(message, truncateWidth, ellipsis)
	}
	if r.cfg.Color {
		message = colorize(message, rec.Color)
	}

	var b strings.Builder
	b.Grow(len(message) + 64)
	if !r.cfg.DisableTimestamp {
		ts := rec.Time
		if ts.IsZero() {
			ts = time.Now()
		}
		b.WriteString(ts.Format(r.cfg.TimeFormat))
		b.WriteString(separator)
	}
	b.WriteString(levelLabel(rec.Level))
	b.WriteString(separator)
	b.WriteString(message)

	if r.annotation != nil {
		if pad := r.cfg.Column - VisibleWidth(b.String()); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteByte('{')
		b.WriteString(r.annotation.Expand(rec.Func, rec.Source))
		b.WriteByte('}')
	}

	line := b.String()
	if !r.cfg.Color {
		line = StripEscapes(line)
	}
	return line
}

func (r *Renderer) indent(level int) string {
	if r.cfg.DisableIndent || level == 0 || r.cfg.IndentSpaces == 0 {
		return ""
	}
	return strings.Repeat(" ", level*r.cfg.IndentSpaces)
}

func levelLabel(level slog.Level) string {
	var label string
	switch {
	case level >= slog.LevelError:
		label = "ERROR"
	case level >= slog.LevelWarn:
		label = "WARNING"
	case level >= slog.LevelInfo:
		label = "INFO"
	default:
		label = "DEBUG"
	}
	if pad := levelWidth - len(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	return label
}
