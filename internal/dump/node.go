package dump

import "fmt"

// Node is one of Leaf, *Mapping, or *Sequence.
type Node interface {
	isNode()
}

// Leaf holds a scalar that is printed with fmt.
type Leaf struct {
	Value any
}

func (Leaf) isNode() {}

// String formats the leaf value.
func (l Leaf) String() string {
	if s, ok := l.Value.(string); ok {
		return s
	}
	return fmt.Sprint(l.Value)
}

// Mapping is an insertion-ordered set of named nodes. The zero value is ready
// to use, and a nil *Mapping behaves as an empty one for reads.
type Mapping struct {
	keys   []string
	values map[string]Node
}

func (*Mapping) isNode() {}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{}
}

// Set stores value under key. Replacing an existing key keeps its position.
func (m *Mapping) Set(key string, value Node) *Mapping {
	if m.values == nil {
		m.values = make(map[string]Node)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the node stored under key.
func (m *Mapping) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len reports the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Sequence is an ordered list of nodes. A nil *Sequence behaves as an empty
// one for reads.
type Sequence struct {
	items []Node
}

func (*Sequence) isNode() {}

// NewSequence returns a sequence holding items.
func NewSequence(items ...Node) *Sequence {
	return &Sequence{items: append([]Node(nil), items...)}
}

// Append adds items to the end of the sequence.
func (s *Sequence) Append(items ...Node) *Sequence {
	s.items = append(s.items, items...)
	return s
}

// At returns the item at index i.
func (s *Sequence) At(i int) Node {
	return s.items[i]
}

// Items returns a copy of the items.
func (s *Sequence) Items() []Node {
	if s == nil {
		return nil
	}
	return append([]Node(nil), s.items...)
}

// Len reports the number of items.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}
