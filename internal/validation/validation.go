// Package validation evaluates the declarative Validation rules attached to
// catalog parameters. One evaluator serves every parameter; rules are data.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/param"
)

// ErrRuleViolated is wrapped by every RuleError.
var ErrRuleViolated = errors.New("validation rule violated")

// RuleError reports a value that does not satisfy its parameter's rule.
type RuleError struct {
	Key   string
	Rule  config.Validation
	Value param.Value
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("Parameter %s value %s does not satisfy %s", e.Key, e.Value.Text(), Describe(e.Rule))
}

func (e *RuleError) Unwrap() error { return ErrRuleViolated }

// Describe renders a rule for humans, e.g. `IN [fallthrough, two_bit]`.
func Describe(rule config.Validation) string {
	switch rule.Type {
	case config.ValidationIn:
		return fmt.Sprintf("%s [%s]", rule.Type, strings.Join(rule.List, ", "))
	case config.ValidationGreaterThan:
		if rule.Number == nil {
			return rule.Type.String()
		}
		return fmt.Sprintf("%s %d", rule.Type, *rule.Number)
	default:
		return rule.Type.String()
	}
}

// Check reports whether a rule is well formed: IN carries a non-empty list
// and no number, GREATER_THAN carries a number and no list.
func Check(rule config.Validation) error {
	switch rule.Type {
	case config.ValidationIn:
		if len(rule.List) == 0 {
			return errors.New("IN rule requires a non-empty list")
		}
		if rule.Number != nil {
			return errors.New("IN rule must not set a number")
		}
	case config.ValidationGreaterThan:
		if rule.Number == nil {
			return errors.New("GREATER_THAN rule requires a number")
		}
		if len(rule.List) > 0 {
			return errors.New("GREATER_THAN rule must not set a list")
		}
	default:
		return fmt.Errorf("unsupported validation type %s", rule.Type)
	}
	return nil
}

// Evaluate applies rule to the value submitted for key.
func Evaluate(key string, rule config.Validation, v param.Value) error {
	if satisfies(rule, v) {
		return nil
	}
	return &RuleError{Key: key, Rule: rule, Value: v}
}

func satisfies(rule config.Validation, v param.Value) bool {
	switch rule.Type {
	case config.ValidationIn:
		text := v.Text()
		for _, allowed := range rule.List {
			if text == allowed {
				return true
			}
			if v.Kind() == param.KindBoolean && strings.EqualFold(text, allowed) {
				return true
			}
		}
		return false
	case config.ValidationGreaterThan:
		if rule.Number == nil {
			return false
		}
		n, ok := numeric(v)
		return ok && n > float64(*rule.Number)
	default:
		return false
	}
}

func numeric(v param.Value) (float64, bool) {
	switch n := v.(type) {
	case param.Integer:
		return float64(n), true
	case param.Double:
		return float64(n), true
	case param.Binary:
		return float64(n.Value), true
	default:
		return 0, false
	}
}
