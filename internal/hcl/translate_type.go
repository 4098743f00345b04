// This file contains the logic for parsing HCL type expressions (e.g. the
// bare keywords `integer` or `binary`) into parameter kinds.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/tlvconfig/internal/param"
	"github.com/zclconf/go-cty/cty"
)

// typeExprToKind accepts either a bare keyword (type = integer) or a string
// literal (type = "integer").
func typeExprToKind(expr hcl.Expression) (param.Kind, error) {
	if expr == nil {
		return 0, fmt.Errorf("missing type")
	}
	// Parameters hold scalars only, so collection constructors such as
	// list(string) are rejected by name.
	if call, ok := expr.(*hclsyntax.FunctionCallExpr); ok {
		return 0, fmt.Errorf("type must be a scalar keyword, got %s(...)", call.Name)
	}
	if keyword := hcl.ExprAsKeyword(expr); keyword != "" {
		return param.ParseKind(keyword)
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("type must be one of integer, double, string, boolean, binary: %w", diags)
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.String) {
		return 0, fmt.Errorf("type must be a keyword or string, got %s", val.Type().FriendlyName())
	}
	return param.ParseKind(val.AsString())
}
