package hcl

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tlvconfig/internal/param"
)

func TestTypeExprToKind(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		expr    string
		want    param.Kind
		wantErr string
	}{
		{expr: `integer`, want: param.KindInteger},
		{expr: `double`, want: param.KindDouble},
		{expr: `boolean`, want: param.KindBoolean},
		{expr: `binary`, want: param.KindBinary},
		{expr: `"string"`, want: param.KindString},
		{expr: `"BOOLEAN"`, want: param.KindBoolean},
		{expr: `list(string)`, wantErr: "type must be a scalar keyword, got list(...)"},
		{expr: `42`, wantErr: "type must be a keyword or string, got number"},
		{expr: `float`, wantErr: "float"},
	}

	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			expr, diags := hclsyntax.ParseExpression([]byte(tc.expr), "test.hcl", hcl.Pos{Line: 1, Column: 1})
			require.False(t, diags.HasErrors(), diags.Error())

			got, err := typeExprToKind(expr)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
