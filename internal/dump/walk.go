package dump

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// CycleSentinel replaces a composite that is already being walked.
	CycleSentinel = "<cycle detected>"

	flattenThreshold = 120
)

// Options controls a Walk.
type Options struct {
	// Exclude lists mapping keys to skip at every level.
	Exclude []string
	// Name, when set, is emitted as a "Name:" line and the value is walked one
	// level deeper.
	Name string
	// FlattenLongText collapses whitespace runs in leaf lines longer than 120
	// characters.
	FlattenLongText bool
}

// Line is one dumped line and the depth it belongs at.
type Line struct {
	Depth int
	Text  string
}

// Walk emits the lines for node, starting at depth, in order.
func Walk(node Node, depth int, opts Options, emit func(Line)) {
	if emit == nil {
		return
	}
	if depth < 0 {
		depth = 0
	}
	w := &walker{
		opts:    opts,
		emit:    emit,
		exclude: make(map[string]struct{}, len(opts.Exclude)),
		active:  make(map[Node]struct{}),
	}
	for _, key := range opts.Exclude {
		w.exclude[key] = struct{}{}
	}
	if opts.Name != "" {
		w.line(depth, opts.Name+":")
		depth++
	}
	switch v := node.(type) {
	case *Mapping:
		w.enter(v)
		w.mapping(v, depth)
		w.leave(v)
	case *Sequence:
		w.enter(v)
		w.sequence(v, depth)
		w.leave(v)
	default:
		w.leaf("", node, depth)
	}
}

// Lines collects the output of Walk.
func Lines(node Node, depth int, opts Options) []Line {
	var out []Line
	Walk(node, depth, opts, func(l Line) {
		out = append(out, l)
	})
	return out
}

// Text renders lines with spaces per depth level, one per row.
func Text(lines []Line, spaces int) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(strings.Repeat(" ", l.Depth*spaces))
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

type walker struct {
	opts    Options
	emit    func(Line)
	exclude map[string]struct{}
	// active holds the composites on the current path.
	active map[Node]struct{}
}

func (w *walker) mapping(m *Mapping, depth int) {
	for _, key := range m.Keys() {
		if _, skip := w.exclude[key]; skip {
			continue
		}
		value, _ := m.Get(key)
		w.child(key, value, depth)
	}
}

func (w *walker) sequence(s *Sequence, depth int) {
	for i, item := range s.Items() {
		w.child(strconv.Itoa(i), item, depth)
	}
}

func (w *walker) child(label string, node Node, depth int) {
	switch v := node.(type) {
	case *Mapping:
		if w.seen(v) {
			w.line(depth, label+": "+CycleSentinel)
			return
		}
		w.line(depth, label+":")
		w.enter(v)
		w.mapping(v, depth+1)
		w.leave(v)
	case *Sequence:
		if w.seen(v) {
			w.line(depth, label+": "+CycleSentinel)
			return
		}
		w.line(depth, label+": List of length "+strconv.Itoa(v.Len()))
		w.enter(v)
		w.sequence(v, depth+1)
		w.leave(v)
	default:
		w.leaf(label, node, depth)
	}
}

func (w *walker) leaf(label string, node Node, depth int) {
	var value string
	switch v := node.(type) {
	case Leaf:
		value = v.String()
	case nil:
		value = Leaf{}.String()
	default:
		value = Leaf{Value: v}.String()
	}
	text := value
	if label != "" {
		text = label + ": " + value
	}
	if w.opts.FlattenLongText && utf8.RuneCountInString(text) > flattenThreshold {
		text = strings.Join(strings.Fields(text), " ")
	}
	w.line(depth, text)
}

func (w *walker) seen(n Node) bool {
	_, ok := w.active[n]
	return ok
}

func (w *walker) enter(n Node) {
	w.active[n] = struct{}{}
}

func (w *walker) leave(n Node) {
	delete(w.active, n)
}

func (w *walker) line(depth int, text string) {
	w.emit(Line{Depth: depth, Text: text})
}
