package dump

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// FromValue converts a Go value into a node graph.
//
// Structs become mappings of their exported fields in declaration order; a
// `dump:"name"` tag renames a field and `dump:"-"` hides it. Maps become
// mappings with keys sorted by their formatted form. Slices and arrays become
// sequences. Errors and fmt.Stringer implementations are leaves. Pointers,
// maps, and slices keep their identity, so a cyclic Go graph converts to a
// cyclic node graph that Walk reports instead of expanding forever.
func FromValue(v any) Node {
	c := &converter{seen: make(map[identity]Node), pending: make(map[identity]struct{})}
	return c.convert(reflect.ValueOf(v))
}

type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type converter struct {
	seen map[identity]Node
	// pending holds pointers whose target is still being converted and has
	// no node of its own yet (pointer and interface chains).
	pending map[identity]struct{}
}

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	nodeType     = reflect.TypeOf((*Node)(nil)).Elem()
)

func (c *converter) convert(rv reflect.Value) Node {
	if !rv.IsValid() {
		return Leaf{}
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return Leaf{}
		}
	}
	if rv.CanInterface() {
		if rv.Type().Implements(nodeType) {
			return rv.Interface().(Node)
		}
		if rv.Type().Implements(errorType) || rv.Type().Implements(stringerType) {
			return Leaf{Value: rv.Interface()}
		}
	}

	switch rv.Kind() {
	case reflect.Interface:
		return c.convert(rv.Elem())
	case reflect.Pointer:
		key := identity{typ: rv.Type(), ptr: rv.Pointer()}
		if n, ok := c.seen[key]; ok {
			return n
		}
		elem := rv.Elem()
		switch elem.Kind() {
		case reflect.Struct:
			m := NewMapping()
			c.seen[key] = m
			c.fillStruct(m, elem)
			return m
		case reflect.Array:
			s := NewSequence()
			c.seen[key] = s
			c.fillSequence(s, elem)
			return s
		case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
			if _, ok := c.pending[key]; ok {
				// A loop made only of indirections has no content to show.
				return Leaf{Value: CycleSentinel}
			}
			c.pending[key] = struct{}{}
			n := c.convert(elem)
			delete(c.pending, key)
			c.seen[key] = n
			return n
		default:
			return c.convert(elem)
		}
	case reflect.Struct:
		m := NewMapping()
		c.fillStruct(m, rv)
		return m
	case reflect.Map:
		key := identity{typ: rv.Type(), ptr: rv.Pointer()}
		if n, ok := c.seen[key]; ok {
			return n
		}
		m := NewMapping()
		c.seen[key] = m
		c.fillMap(m, rv)
		return m
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Leaf{Value: fmt.Sprintf("%x", rv.Bytes())}
		}
		key := identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
		if n, ok := c.seen[key]; ok {
			return n
		}
		s := NewSequence()
		c.seen[key] = s
		c.fillSequence(s, rv)
		return s
	case reflect.Array:
		s := NewSequence()
		c.fillSequence(s, rv)
		return s
	default:
		if rv.CanInterface() {
			return Leaf{Value: rv.Interface()}
		}
		return Leaf{Value: rv.String()}
	}
}

func (c *converter) fillStruct(m *Mapping, rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("dump"); ok {
			tag = strings.TrimSpace(strings.Split(tag, ",")[0])
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		m.Set(name, c.convert(rv.Field(i)))
	}
}

func (c *converter) fillMap(m *Mapping, rv reflect.Value) {
	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	for _, e := range entries {
		m.Set(e.key, c.convert(e.value))
	}
}

func (c *converter) fillSequence(s *Sequence, rv reflect.Value) {
	for i := 0; i < rv.Len(); i++ {
		s.Append(c.convert(rv.Index(i)))
	}
}
