package param

import (
	"fmt"
	"strings"
)

// Kind is the input-type tag shared by values and parameter declarations.
type Kind int

const (
	KindInteger Kind = iota
	KindDouble
	KindString
	KindBoolean
	KindBinary
)

var kindNames = map[Kind]string{
	KindInteger: "INTEGER",
	KindDouble:  "DOUBLE",
	KindString:  "STRING",
	KindBoolean: "BOOLEAN",
	KindBinary:  "BINARY",
}

// String returns the upper-case name used in listings and error messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// ParseKind resolves a kind name, case-insensitively ("integer", "BINARY").
func ParseKind(name string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == upper {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown parameter type %q", name)
}
