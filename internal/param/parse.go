package param

import (
	"errors"
	"fmt"
	"strconv"
)

// PrimitiveType is the kind of an untyped, JSON-style primitive.
type PrimitiveType int

const (
	PrimitiveNumber PrimitiveType = iota
	PrimitiveBool
	PrimitiveString
)

func (t PrimitiveType) String() string {
	switch t {
	case PrimitiveNumber:
		return "number"
	case PrimitiveBool:
		return "boolean"
	case PrimitiveString:
		return "string"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", int(t))
	}
}

// Primitive is a decoded request literal before it is given a Kind. Raw holds
// the literal text for numbers and booleans and the unescaped content for
// strings.
type Primitive struct {
	Type PrimitiveType
	Raw  string
}

// ErrUnsupportedPrimitive is returned when no dispatch rule accepts a primitive.
var ErrUnsupportedPrimitive = errors.New("no value kind accepts primitive")

type parseRule struct {
	kind  Kind
	match func(Primitive) bool
	build func(Primitive) (Value, error)
}

// parseRules is evaluated top to bottom; the first matching rule wins.
var parseRules = []parseRule{
	{
		kind: KindInteger,
		match: func(p Primitive) bool {
			if p.Type != PrimitiveNumber {
				return false
			}
			_, err := strconv.ParseInt(p.Raw, 10, 64)
			return err == nil
		},
		build: func(p Primitive) (Value, error) {
			i, err := strconv.ParseInt(p.Raw, 10, 64)
			return Integer(i), err
		},
	},
	{
		kind:  KindDouble,
		match: func(p Primitive) bool { return p.Type == PrimitiveNumber },
		// Literals beyond float64 range become ±Inf rather than errors.
		build: func(p Primitive) (Value, error) {
			f, err := strconv.ParseFloat(p.Raw, 64)
			if errors.Is(err, strconv.ErrRange) {
				return Double(f), nil
			}
			return Double(f), err
		},
	},
	{
		kind:  KindBoolean,
		match: func(p Primitive) bool { return p.Type == PrimitiveBool },
		build: func(p Primitive) (Value, error) {
			b, err := strconv.ParseBool(p.Raw)
			return Boolean(b), err
		},
	},
	{
		kind:  KindBinary,
		match: func(p Primitive) bool { return p.Type == PrimitiveString && IsBinaryLiteral(p.Raw) },
		build: func(p Primitive) (Value, error) { return ParseBinary(p.Raw) },
	},
	{
		kind:  KindString,
		match: func(p Primitive) bool { return p.Type == PrimitiveString },
		build: func(p Primitive) (Value, error) { return String(p.Raw), nil },
	},
}

// Parse converts a primitive into a Value using the ordered dispatch:
// integer, double, boolean, binary pattern, string.
func Parse(p Primitive) (Value, error) {
	for _, rule := range parseRules {
		if !rule.match(p) {
			continue
		}
		v, err := rule.build(p)
		if err != nil {
			return nil, fmt.Errorf("parse %s as %s: %w", p.Type, rule.kind, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s %q", ErrUnsupportedPrimitive, p.Type, p.Raw)
}
