package dump

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// FromJSON parses a JSON document into a node graph. Object keys keep their
// document order, and numbers keep their literal text.
func FromJSON(data []byte) (Node, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return fromJSONValue(v), nil
}

func fromJSONValue(v *fastjson.Value) Node {
	switch v.Type() {
	case fastjson.TypeObject:
		m := NewMapping()
		obj, _ := v.Object()
		obj.Visit(func(key []byte, val *fastjson.Value) {
			m.Set(string(key), fromJSONValue(val))
		})
		return m
	case fastjson.TypeArray:
		s := NewSequence()
		items, _ := v.Array()
		for _, item := range items {
			s.Append(fromJSONValue(item))
		}
		return s
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return Leaf{Value: string(b)}
	case fastjson.TypeNumber:
		return Leaf{Value: v.String()}
	case fastjson.TypeTrue:
		return Leaf{Value: true}
	case fastjson.TypeFalse:
		return Leaf{Value: false}
	default:
		return Leaf{}
	}
}
