// This file contains the logic for translating HCL schema structs into the
// format-agnostic catalog model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/ctxlog"
	"github.com/vk/tlvconfig/internal/mapper"
	"github.com/vk/tlvconfig/internal/param"
	"github.com/vk/tlvconfig/internal/schema"
)

// booleanRule is the rule given to boolean parameters that omit a validation block.
var booleanRule = config.Validation{Type: config.ValidationIn, List: []string{"true", "false"}}

// translateParameter converts a `parameter` block into the agnostic model.
// Cross-entry and kind invariants are enforced later by the registry.
func (l *Loader) translateParameter(ctx context.Context, p *schema.Parameter) (*config.Parameter, error) {
	logger := ctxlog.FromContext(ctx)

	macro, err := config.ParseMacroType(p.Macro)
	if err != nil {
		return nil, err
	}
	category, err := config.ParseCategory(p.Category)
	if err != nil {
		return nil, err
	}
	kind, err := typeExprToKind(p.Type)
	if err != nil {
		return nil, err
	}
	outputMapper, err := mapper.Parse(p.OutputMapper)
	if err != nil {
		return nil, err
	}

	defaultVal, diags := p.Default.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("default must be a literal: %w", diags)
	}
	def, err := ctyToValue(defaultVal, kind)
	if err != nil {
		return nil, fmt.Errorf("invalid default: %w", err)
	}

	rule := translateValidation(p.Validation, kind)

	logger.Debug("Translated catalog parameter.", "json_key", p.JSONKey, "type", kind, "default", def.Text())
	return &config.Parameter{
		MacroType:    macro,
		ReadableName: p.ReadableName,
		VerilogName:  p.VerilogName,
		Default:      def,
		JSONKey:      p.JSONKey,
		Accepts:      config.AcceptsType{InputType: kind, Validation: rule},
		Category:     category,
		Description:  p.Description,
		OutputMapper: outputMapper,
		Source:       p.Type.Range().String(),
	}, nil
}

// translateValidation keeps whatever the block declares; a block setting both
// or neither attribute yields a rule the registry rejects.
func translateValidation(v *schema.Validation, kind param.Kind) config.Validation {
	if v == nil {
		if kind == param.KindBoolean {
			return config.Validation{Type: booleanRule.Type, List: append([]string(nil), booleanRule.List...)}
		}
		return config.Validation{Type: config.ValidationIn}
	}
	if v.GreaterThan != nil && len(v.In) == 0 {
		n := *v.GreaterThan
		return config.Validation{Type: config.ValidationGreaterThan, Number: &n}
	}
	return config.Validation{Type: config.ValidationIn, List: v.In, Number: v.GreaterThan}
}
