package param

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Verilog(t *testing.T) {
	testCases := []struct {
		name     string
		value    Value
		expected string
		kind     Kind
	}{
		{name: "integer", value: Integer(4), expected: "4", kind: KindInteger},
		{name: "negative integer", value: Integer(-12), expected: "-12", kind: KindInteger},
		{name: "double", value: Double(1.5), expected: "1.5", kind: KindDouble},
		{name: "whole double keeps decimal point", value: Double(2), expected: "2.0", kind: KindDouble},
		{name: "string is quoted", value: String("two_bit"), expected: `"two_bit"`, kind: KindString},
		{name: "true is one", value: Boolean(true), expected: "1", kind: KindBoolean},
		{name: "false is zero", value: Boolean(false), expected: "0", kind: KindBoolean},
		{name: "binary", value: Binary{Width: 1, Value: 1}, expected: "1'b1", kind: KindBinary},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.value.Verilog())
			assert.Equal(t, tc.kind, tc.value.Kind())
			// Rendering is a pure function of the value.
			assert.Equal(t, tc.value.Verilog(), tc.value.Verilog())
		})
	}
}

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "true", Boolean(true).Text())
	assert.Equal(t, "false", Boolean(false).Text())
	assert.Equal(t, "fallthrough", String("fallthrough").Text())
	assert.Equal(t, "7", Integer(7).Text())
	assert.Equal(t, "4'b10", Binary{Width: 4, Value: 10}.Text())
}

func TestValue_MarshalJSON(t *testing.T) {
	out, err := json.Marshal([]Value{Integer(2), Boolean(true), String("x"), Binary{Width: 1, Value: 0}, Double(0.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `[2, true, "x", "1'b0", 0.5]`, string(out))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("integer")
	require.NoError(t, err)
	assert.Equal(t, KindInteger, k)

	k, err = ParseKind("BINARY")
	require.NoError(t, err)
	assert.Equal(t, KindBinary, k)

	_, err = ParseKind("float")
	require.Error(t, err)

	assert.Equal(t, "BOOLEAN", KindBoolean.String())
}

func TestFormatDouble(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.0"},
		{in: 1e6, want: "1000000.0"},
		{in: 9999999.5, want: "9999999.5"},
		{in: 0.001, want: "0.001"},
		{in: -2.25, want: "-2.25"},
		{in: 1e7, want: "1.0E7"},
		{in: 1.5e10, want: "1.5E10"},
		{in: 1e-4, want: "1.0E-4"},
		{in: -2.5e-4, want: "-2.5E-4"},
		{in: 1.7976931348623157e308, want: "1.7976931348623157E308"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.Inf(-1), want: "-Infinity"},
		{in: math.NaN(), want: "NaN"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, formatDouble(tc.in))
			assert.Equal(t, tc.want, Double(tc.in).Verilog())
		})
	}
}
