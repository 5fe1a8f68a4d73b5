// Package codec compiles declarative description documents (JSON or YAML)
// into describe.Describers, so hosts can keep expected-shape definitions
// beside their assets rather than in code. It loads descriptions only; it
// never parses or serializes instance trees.
package codec

import (
	"fmt"

	describe "github.com/rbxkit/describe"
)

// document is the on-disk shape of a description. Every field is optional,
// mirroring describe.Description; "optional: true" wraps the compiled
// describer in describe.Optional.
type document struct {
	ClassName  string                  `json:"class_name" yaml:"class_name"`
	IsA        string                  `json:"is_a" yaml:"is_a"`
	Optional   bool                    `json:"optional" yaml:"optional"`
	Attributes map[string]valueLiteral `json:"attributes" yaml:"attributes"`
	Properties map[string]valueLiteral `json:"properties" yaml:"properties"`
	Children   map[string]*document    `json:"children" yaml:"children"`
}

// valueLiteral is a typed value in a document: an explicit type tag plus a
// payload, matching describe.Value kinds.
type valueLiteral struct {
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

func (l valueLiteral) value() (describe.Value, error) {
	switch l.Type {
	case "bool":
		b, ok := l.Value.(bool)
		if !ok {
			return describe.Value{}, fmt.Errorf("codec: bool literal holds %T", l.Value)
		}
		return describe.Bool(b), nil
	case "number":
		f, ok := toFloat(l.Value)
		if !ok {
			return describe.Value{}, fmt.Errorf("codec: number literal holds %T", l.Value)
		}
		return describe.Number(f), nil
	case "string":
		s, ok := l.Value.(string)
		if !ok {
			return describe.Value{}, fmt.Errorf("codec: string literal holds %T", l.Value)
		}
		return describe.String(s), nil
	case "enum":
		s, ok := l.Value.(string)
		if !ok {
			return describe.Value{}, fmt.Errorf("codec: enum literal holds %T", l.Value)
		}
		return describe.Enum(s), nil
	default:
		return describe.Value{}, fmt.Errorf("codec: unknown value type %q", l.Type)
	}
}

// toFloat accepts the numeric representations the JSON and YAML decoders
// produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// compile turns a document into a Describer, recursing through children.
func compile(doc *document) (describe.Describer, error) {
	if doc == nil {
		return nil, fmt.Errorf("codec: empty document")
	}
	d := describe.Description{ClassName: doc.ClassName, IsA: doc.IsA}
	if len(doc.Attributes) > 0 {
		d.Attributes = make(map[string]describe.Value, len(doc.Attributes))
		for name, lit := range doc.Attributes {
			v, err := lit.value()
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", name, err)
			}
			d.Attributes[name] = v
		}
	}
	if len(doc.Properties) > 0 {
		d.Properties = make(map[string]describe.Value, len(doc.Properties))
		for name, lit := range doc.Properties {
			v, err := lit.value()
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			d.Properties[name] = v
		}
	}
	if len(doc.Children) > 0 {
		d.Children = make(map[string]describe.Describer, len(doc.Children))
		for name, sub := range doc.Children {
			child, err := compile(sub)
			if err != nil {
				return nil, fmt.Errorf("child %q: %w", name, err)
			}
			d.Children[name] = child
		}
	}
	out := describe.New(d)
	if doc.Optional {
		out = describe.Optional(out)
	}
	return out, nil
}
