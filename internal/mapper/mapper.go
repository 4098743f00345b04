// Package mapper implements the closed set of output transforms a catalog
// entry can apply to its resolved value before rendering.
package mapper

import (
	"errors"
	"fmt"

	"github.com/vk/tlvconfig/internal/param"
)

// Name identifies an output transform. The zero value is Identity.
type Name string

const (
	// Identity renders the resolved value unchanged.
	Identity Name = "identity"
	// BoolToBit turns a boolean into a single-bit binary literal (1'b1 / 1'b0).
	BoolToBit Name = "bool_to_bit"
)

// ErrUnknownMapper is returned for a Name outside the supported set.
var ErrUnknownMapper = errors.New("unknown output mapper")

// Parse resolves a mapper name as written in a catalog file.
func Parse(s string) (Name, error) {
	n := Name(s)
	if _, _, err := n.Accepts(); err != nil {
		return "", err
	}
	if n == "" {
		return Identity, nil
	}
	return n, nil
}

// Accepts reports the kind the transform requires as input. ok is false when
// the transform accepts any kind.
func (n Name) Accepts() (kind param.Kind, ok bool, err error) {
	switch n {
	case "", Identity:
		return 0, false, nil
	case BoolToBit:
		return param.KindBoolean, true, nil
	default:
		return 0, false, fmt.Errorf("%w %q", ErrUnknownMapper, string(n))
	}
}

// Apply runs the transform on v.
func (n Name) Apply(v param.Value) (param.Value, error) {
	switch n {
	case "", Identity:
		return v, nil
	case BoolToBit:
		b, ok := v.(param.Boolean)
		if !ok {
			return nil, fmt.Errorf("%s expects a %s value, got %s", n, param.KindBoolean, v.Kind())
		}
		return param.Binary{Width: 1, Value: b.Bit()}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMapper, string(n))
	}
}
