package render

import (
	"fmt"
	"strings"
)

const (
	fieldFuncName   = "funcName"
	fieldModuleName = "moduleName"
)

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentFunc
	segmentModule
)

type segment struct {
	kind    segmentKind
	literal string
}

// Template is a parsed annotation format.
type Template struct {
	source   string
	segments []segment
}

// ParseTemplate compiles an annotation format. An empty format yields a nil
// template, meaning no annotation is rendered.
func ParseTemplate(format string) (*Template, error) {
	if format == "" {
		return nil, nil
	}
	tpl := &Template{source: format}
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			tpl.segments = append(tpl.segments, segment{kind: segmentLiteral, literal: literal.String()})
			literal.Reset()
		}
	}
	for i := 0; i < len(format); i++ {
		ch := format[i]
		switch ch {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				literal.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed '{' at offset %d in %q", i, format)
			}
			name := format[i+1 : i+1+end]
			var kind segmentKind
			switch name {
			case fieldFuncName:
				kind = segmentFunc
			case fieldModuleName:
				kind = segmentModule
			default:
				return nil, fmt.Errorf("unknown field %q in %q (want {%s} or {%s})", name, format, fieldFuncName, fieldModuleName)
			}
			flush()
			tpl.segments = append(tpl.segments, segment{kind: kind})
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				literal.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("single '}' at offset %d in %q", i, format)
		default:
			literal.WriteByte(ch)
		}
	}
	flush()
	return tpl, nil
}

// Expand substitutes the function and module names.
func (t *Template) Expand(funcName, moduleName string) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, seg := range t.segments {
		switch seg.kind {
		case segmentFunc:
			b.WriteString(funcName)
		case segmentModule:
			b.WriteString(moduleName)
		default:
			b.WriteString(seg.literal)
		}
	}
	return b.String()
}

// String returns the original format.
func (t *Template) String() string {
	if t == nil {
		return ""
	}
	return t.source
}
