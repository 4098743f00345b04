package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tlvconfig/internal/param"
)

func TestApply(t *testing.T) {
	testCases := []struct {
		name      string
		mapper    Name
		input     param.Value
		expected  param.Value
		expectErr bool
	}{
		{name: "zero value is identity", mapper: "", input: param.Integer(3), expected: param.Integer(3)},
		{name: "identity", mapper: Identity, input: param.String("x"), expected: param.String("x")},
		{name: "true to bit", mapper: BoolToBit, input: param.Boolean(true), expected: param.Binary{Width: 1, Value: 1}},
		{name: "false to bit", mapper: BoolToBit, input: param.Boolean(false), expected: param.Binary{Width: 1, Value: 0}},
		{name: "bool to bit rejects integers", mapper: BoolToBit, input: param.Integer(1), expectErr: true},
		{name: "unknown mapper", mapper: Name("negate"), input: param.Boolean(true), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.mapper.Apply(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestParse(t *testing.T) {
	n, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Identity, n)

	n, err = Parse("bool_to_bit")
	require.NoError(t, err)
	assert.Equal(t, BoolToBit, n)

	_, err = Parse("bit_to_bool")
	require.ErrorIs(t, err, ErrUnknownMapper)
}

func TestAccepts(t *testing.T) {
	kind, ok, err := BoolToBit.Accepts()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, param.KindBoolean, kind)

	_, ok, err = Identity.Accepts()
	require.NoError(t, err)
	assert.False(t, ok)
}
