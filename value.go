package describe

import "strconv"

// Kind tags the dynamic type of a Value.
type Kind uint8

const (
	KindNil    Kind = iota // No value.
	KindBool               // Boolean payload.
	KindNumber             // Floating-point payload.
	KindString             // String payload.
	KindEnum               // Enum item name payload.
)

// String returns the tag name used in type-mismatch messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	default:
		return "nil"
	}
}

// Value is a tagged dynamic value as exposed by instance attributes and
// properties: a runtime type tag plus a payload. Comparison is always tag
// first, payload second, so a wrong type and a wrong value report distinct
// mismatches. The zero Value is the nil value.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Enum returns an enum Value identified by its item name.
func Enum(item string) Value { return Value{kind: KindEnum, str: item} }

// Kind returns the value's runtime type tag.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns the tag name for messages.
func (v Value) TypeName() string { return v.kind.String() }

// Equal reports payload equality. Two values of different kinds are never
// equal; callers comparing for validation should check Kind first to decide
// between a type mismatch and a value mismatch.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString, KindEnum:
		return v.str == o.str
	default:
		return true
	}
}

// Payload returns the payload as the nearest Go type: bool, float64, string,
// or nil for the nil value.
func (v Value) Payload() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString, KindEnum:
		return v.str
	default:
		return nil
	}
}

// String renders the payload for value-mismatch messages.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString, KindEnum:
		return v.str
	default:
		return "nil"
	}
}
