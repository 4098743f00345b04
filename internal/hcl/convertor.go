package hcl

import (
	"fmt"

	"github.com/vk/tlvconfig/internal/param"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ctyToValue converts a literal cty value into a parameter value. The value's
// own type decides the variant; the declared kind only disambiguates numbers
// (HCL cannot tell 2 from 2.0) and strings holding binary literals.
func ctyToValue(val cty.Value, declared param.Kind) (param.Value, error) {
	if val.IsNull() {
		return nil, fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value must be known at load time")
	}

	switch ty := val.Type(); {
	case ty.Equals(cty.Bool):
		var b bool
		if err := gocty.FromCtyValue(val, &b); err != nil {
			return nil, err
		}
		return param.Boolean(b), nil

	case ty.Equals(cty.String):
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return nil, err
		}
		if declared == param.KindBinary {
			return param.ParseBinary(s)
		}
		return param.String(s), nil

	case ty.Equals(cty.Number):
		if declared != param.KindDouble && val.AsBigFloat().IsInt() {
			var i int64
			if err := gocty.FromCtyValue(val, &i); err != nil {
				return nil, err
			}
			return param.Integer(i), nil
		}
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return nil, err
		}
		return param.Double(f), nil

	default:
		return nil, fmt.Errorf("unsupported value of type %s", ty.FriendlyName())
	}
}
