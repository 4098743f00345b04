package config

import (
	"fmt"
	"strings"

	"github.com/vk/tlvconfig/internal/mapper"
	"github.com/vk/tlvconfig/internal/param"
)

// Model is the unified representation of a loaded catalog. Parameters keep
// their declaration order.
type Model struct {
	Parameters []*Parameter
}

// Parameter describes one configurable macro hook.
type Parameter struct {
	MacroType    MacroType   `json:"macroType"`
	ReadableName string      `json:"readableName"`
	VerilogName  string      `json:"verilogName"`
	Default      param.Value `json:"defaultValue"`
	JSONKey      string      `json:"jsonKey"`
	Accepts      AcceptsType `json:"acceptType"`
	Category     Category    `json:"category"`
	Description  string      `json:"description,omitempty"`
	OutputMapper mapper.Name `json:"-"`

	// Source is where the parameter was declared, for startup diagnostics.
	Source string `json:"-"`
}

// AcceptsType declares the kind a parameter accepts and the rule a client
// should respect when choosing a value.
type AcceptsType struct {
	InputType  param.Kind `json:"inputType"`
	Validation Validation `json:"validation"`
}

// Validation is a declarative rule. Exactly one of List or Number is set,
// matching Type.
type Validation struct {
	Type   ValidationType `json:"type"`
	List   []string       `json:"list,omitempty"`
	Number *int           `json:"number,omitempty"`
}

// ValidationType selects how a Validation is interpreted.
type ValidationType int

const (
	ValidationIn ValidationType = iota
	ValidationGreaterThan
)

// MacroType selects the macro keyword a parameter renders with.
type MacroType int

const (
	MacroDefine MacroType = iota
	MacroDefault
	MacroDefineHier
)

// Category is a documentation-only grouping of parameters.
type Category int

const (
	CategoryCPU Category = iota
	CategoryStage
)

var (
	validationTypeNames = []string{"IN", "GREATER_THAN"}
	macroTypeNames      = []string{"M4_DEFINE", "M4_DEFAULT", "M4_DEFINE_HIER"}
	categoryNames       = []string{"CPU", "STAGE"}
)

// Keyword is the lower-case macro call name, e.g. m4_define_hier.
func (m MacroType) Keyword() string { return strings.ToLower(m.String()) }

func (m MacroType) String() string      { return enumName(macroTypeNames, int(m)) }
func (c Category) String() string       { return enumName(categoryNames, int(c)) }
func (v ValidationType) String() string { return enumName(validationTypeNames, int(v)) }

func (m MacroType) MarshalText() ([]byte, error)      { return enumText(macroTypeNames, int(m)) }
func (c Category) MarshalText() ([]byte, error)       { return enumText(categoryNames, int(c)) }
func (v ValidationType) MarshalText() ([]byte, error) { return enumText(validationTypeNames, int(v)) }

// ParseMacroType resolves a macro type name, case-insensitively.
func ParseMacroType(name string) (MacroType, error) {
	i, err := enumIndex(macroTypeNames, name, "macro type")
	return MacroType(i), err
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	i, err := enumIndex(categoryNames, name, "category")
	return Category(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func enumText(names []string, i int) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("enum value %d out of range", i)
	}
	return []byte(names[i]), nil
}

func enumIndex(names []string, name, what string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q, expected one of %s", what, name, strings.Join(names, ", "))
}
