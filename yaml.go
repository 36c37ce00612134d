package smartenum

import (
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Member[Kind]{}
	_ yaml.Unmarshaler = (*Member[Kind])(nil)
)

// MarshalYAML encodes m as a mapping of Text, Code and Value.
// An absent Member encodes as null.
//
// MarshalYAML implements gopkg.in/yaml.v3.Marshaler.
func (m Member[K]) MarshalYAML() (any, error) {
	if !m.ok {
		return nil, nil
	}

	return m.Wire(), nil
}

// UnmarshalYAML sets m to the member value describes,
// accepting the same three shapes as [*Family.Decode]:
// a string, a number or a mapping of Value, Code and Text.
// If value describes no member, m is set to the absent Member.
// UnmarshalYAML never returns an error.
//
// UnmarshalYAML implements gopkg.in/yaml.v3.Unmarshaler.
func (m *Member[K]) UnmarshalYAML(value *yaml.Node) error {
	*m = Member[K]{}
	if f, ok := familyOf[K](); ok {
		*m, _ = decodeYAML(f, value)
	}

	return nil
}

func decodeYAML[K Kind](f *Family[K], n *yaml.Node) (Member[K], bool) {
	n = resolveYAMLNode(n)
	if n == nil {
		return Member[K]{}, false
	}

	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return f.Resolve(n.Value)
		case "!!int", "!!float":
			v, ok := yamlInt(n)
			if !ok {
				return Member[K]{}, false
			}

			return f.ByValue(v)
		default:
			return Member[K]{}, false
		}

	case yaml.MappingNode:
		return resolveQuery(f, queryObject(yamlObject{n}))

	default:
		return Member[K]{}, false
	}
}

// resolveYAMLNode follows aliases and unwraps documents down to the node holding a value.
func resolveYAMLNode(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.AliasNode:
			n = n.Alias
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		default:
			return n
		}
	}

	return nil
}

func yamlInt(n *yaml.Node) (int, bool) {
	switch n.ShortTag() {
	case "!!int":
		var v int
		if err := n.Decode(&v); err != nil {
			return 0, false
		}

		return v, true

	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return 0, false
		}

		return floatToInt(v)

	default:
		return 0, false
	}
}

type yamlObject struct {
	n *yaml.Node
}

// field returns the value node under name,
// preferring an exact key over one differing in case.
func (o yamlObject) field(name string) (*yaml.Node, bool) {
	var folded *yaml.Node
	for i := 0; i+1 < len(o.n.Content); i += 2 {
		k := o.n.Content[i]
		switch {
		case k.Value == name:
			v := resolveYAMLNode(o.n.Content[i+1])
			return v, v != nil && v.ShortTag() != "!!null"
		case folded == nil && strings.EqualFold(k.Value, name):
			folded = o.n.Content[i+1]
		}
	}

	v := resolveYAMLNode(folded)
	return v, v != nil && v.ShortTag() != "!!null"
}

func (o yamlObject) intField(name string) (int, bool, bool) {
	v, present := o.field(name)
	if !present {
		return 0, false, false
	}

	if v.Kind != yaml.ScalarNode {
		return 0, true, false
	}

	i, ok := yamlInt(v)
	return i, true, ok
}

func (o yamlObject) stringField(name string) (string, bool, bool) {
	v, present := o.field(name)
	if !present {
		return "", false, false
	}

	if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!str" {
		return "", true, false
	}

	return v.Value, true, true
}
