package node

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"seq-rebuild/primitive"
)

// Local YAML tags of the value notation.
const (
	TagUndefined = "!undefined"
	TagType      = "!type"
)

// UnmarshalYAML decodes the YAML value notation:
//
//	null / ~            -> null
//	!undefined ""       -> undefined
//	true, 1, 2.5, "x"   -> literals
//	!type boolean       -> the boolean category (also number, string, any, unknown, never)
//	[a, b]              -> array
//	{k: v}              -> record, keys in document order
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	out, err := fromYAML(n)
	if err != nil {
		return err
	}

	*v = out

	return nil
}

// MarshalYAML encodes v in the notation accepted by UnmarshalYAML.
// Containers use flow style.
func (v Value) MarshalYAML() (any, error) {
	return toYAML(v)
}

// ParseYAML decodes a single value from YAML text.
func ParseYAML(data []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("failed to parse value YAML: %w", err)
	}

	if !v.IsValid() {
		// empty document
		return Null(), nil
	}

	return v, nil
}

// FromYAML decodes an already parsed node. Use it for values held in
// yaml.Node fields: yaml.v3 never calls UnmarshalYAML for a bare null, so a
// []Value or Value field would silently turn null into the invalid zero Value.
func FromYAML(n *yaml.Node) (Value, error) {
	return fromYAML(n)
}

func fromYAML(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			e, err := fromYAML(c)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, e)
		}
		return Value{kind: primitive.KindArray, elems: elems}, nil
	case yaml.MappingNode:
		return mappingFromYAML(n)
	case yaml.ScalarNode:
		return scalarFromYAML(n)
	default:
		return Value{}, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

func mappingFromYAML(n *yaml.Node) (Value, error) {
	fields := make([]Field, 0, len(n.Content)/2)
	seen := make(map[string]struct{}, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, val := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("line %d: record keys must be scalars", k.Line)
		}
		if _, dup := seen[k.Value]; dup {
			return Value{}, fmt.Errorf("line %d: duplicate record key %q", k.Line, k.Value)
		}
		seen[k.Value] = struct{}{}

		fv, err := fromYAML(val)
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, Field{Key: k.Value, Value: fv})
	}

	return Value{kind: primitive.KindRecord, fields: fields}, nil
}

func scalarFromYAML(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case TagUndefined:
		return Undefined(), nil
	case TagType:
		k, ok := primitive.CategoryFromName(n.Value)
		if !ok {
			return Value{}, fmt.Errorf("line %d: unknown type category %q", n.Line, n.Value)
		}
		return Category(k), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Number(f), nil
	default:
		// !!str, !!timestamp, !!binary and unknown tags keep their text
		return String(n.Value), nil
	}
}

func toYAML(v Value) (*yaml.Node, error) {
	switch v.kind {
	case primitive.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case primitive.KindUndefined:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: TagUndefined, Value: "", Style: yaml.DoubleQuotedStyle}, nil
	case primitive.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}, nil
	case primitive.KindNumber:
		return numberToYAML(v.num), nil
	case primitive.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}, nil
	case primitive.KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, e := range v.elems {
			c, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	case primitive.KindRecord:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
		for _, f := range v.fields {
			c, err := toYAML(f.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}, c)
		}
		return n, nil
	default:
		if name := v.kind.CategoryName(); name != "" {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: TagType, Value: name}, nil
		}
		return nil, fmt.Errorf("%w: cannot encode kind %s", ErrInvalidValue, v.kind)
	}
}

func numberToYAML(f float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float"}

	switch {
	case math.IsInf(f, 1):
		n.Value = ".inf"
	case math.IsInf(f, -1):
		n.Value = "-.inf"
	case math.IsNaN(f):
		n.Value = ".nan"
	case f == math.Trunc(f) && math.Abs(f) < 1<<53:
		n.Tag = "!!int"
		n.Value = strconv.FormatFloat(f, 'f', -1, 64)
	default:
		n.Value = strconv.FormatFloat(f, 'g', -1, 64)
	}

	return n
}
