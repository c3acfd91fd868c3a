package dump

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML parses the first YAML document in data into a node graph. Mapping
// keys keep their document order and aliases share the identity of their
// anchor.
func FromYAML(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	c := &yamlConverter{seen: make(map[*yaml.Node]Node)}
	return c.convert(&doc), nil
}

type yamlConverter struct {
	seen map[*yaml.Node]Node
}

func (c *yamlConverter) convert(n *yaml.Node) Node {
	if n == nil {
		return Leaf{}
	}
	if existing, ok := c.seen[n]; ok {
		return existing
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Leaf{}
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		return c.convert(n.Alias)
	case yaml.MappingNode:
		m := NewMapping()
		c.seen[n] = m
		for i := 0; i+1 < len(n.Content); i += 2 {
			m.Set(n.Content[i].Value, c.convert(n.Content[i+1]))
		}
		return m
	case yaml.SequenceNode:
		s := NewSequence()
		c.seen[n] = s
		for _, item := range n.Content {
			s.Append(c.convert(item))
		}
		return s
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return Leaf{Value: n.Value}
		}
		return Leaf{Value: v}
	default:
		return Leaf{}
	}
}
