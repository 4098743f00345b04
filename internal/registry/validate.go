package registry

import (
	"fmt"
	"strings"

	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/validation"
)

// Validate checks every catalog invariant and reports all violations at once.
func Validate(model *config.Model) error {
	if model == nil {
		return fmt.Errorf("registry validation failed: no catalog model")
	}

	var errs []string
	seen := make(map[string]string, len(model.Parameters))

	for i, p := range model.Parameters {
		if p == nil {
			errs = append(errs, fmt.Sprintf("entry %d: missing definition", i))
			continue
		}
		name := p.JSONKey
		if name == "" {
			errs = append(errs, fmt.Sprintf("entry %d (%s): json key must not be empty", i, p.Source))
			name = fmt.Sprintf("#%d", i)
		} else if first, dup := seen[p.JSONKey]; dup {
			errs = append(errs, fmt.Sprintf("parameter '%s': duplicate json key, first declared at %s", name, first))
		} else {
			seen[p.JSONKey] = p.Source
		}

		if p.VerilogName == "" {
			errs = append(errs, fmt.Sprintf("parameter '%s': verilog name must not be empty", name))
		}

		if p.Default == nil {
			errs = append(errs, fmt.Sprintf("parameter '%s': missing default value", name))
		} else if p.Default.Kind() != p.Accepts.InputType {
			errs = append(errs, fmt.Sprintf("parameter '%s': default value is %s but the parameter accepts %s",
				name, p.Default.Kind(), p.Accepts.InputType))
		}

		if kind, ok, err := p.OutputMapper.Accepts(); err != nil {
			errs = append(errs, fmt.Sprintf("parameter '%s': %v", name, err))
		} else if ok && kind != p.Accepts.InputType {
			errs = append(errs, fmt.Sprintf("parameter '%s': output mapper %s requires %s input but the parameter accepts %s",
				name, p.OutputMapper, kind, p.Accepts.InputType))
		}

		if err := validation.Check(p.Accepts.Validation); err != nil {
			errs = append(errs, fmt.Sprintf("parameter '%s': %v", name, err))
		} else if p.Default != nil {
			if err := validation.Evaluate(name, p.Accepts.Validation, p.Default); err != nil {
				errs = append(errs, fmt.Sprintf("parameter '%s': default value violates its own rule: %v", name, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
