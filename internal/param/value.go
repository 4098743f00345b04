package param

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a typed parameter value. The set of implementations is closed.
type Value interface {
	// Kind reports the input-type tag of the value.
	Kind() Kind
	// Verilog renders the value as it appears inside a macro call.
	Verilog() string
	// Text is the natural textual form, used by validation rules.
	Text() string

	isValue()
}

// Integer is a signed integer value.
type Integer int64

// Double is a floating point value.
type Double float64

// String is a text value.
type String string

// Boolean is a flag value. It renders as a single digit.
type Boolean bool

// Binary is a sized literal such as 4'b10.
type Binary struct {
	Width int
	Value int
}

func (Integer) Kind() Kind { return KindInteger }
func (Double) Kind() Kind  { return KindDouble }
func (String) Kind() Kind  { return KindString }
func (Boolean) Kind() Kind { return KindBoolean }
func (Binary) Kind() Kind  { return KindBinary }

func (Integer) isValue() {}
func (Double) isValue()  {}
func (String) isValue()  {}
func (Boolean) isValue() {}
func (Binary) isValue()  {}

func (v Integer) Verilog() string { return strconv.FormatInt(int64(v), 10) }
func (v Double) Verilog() string  { return formatDouble(float64(v)) }
func (v String) Verilog() string  { return `"` + string(v) + `"` }
func (v Binary) Verilog() string  { return v.Text() }

func (v Boolean) Verilog() string {
	if v {
		return "1"
	}
	return "0"
}

func (v Integer) Text() string { return v.Verilog() }
func (v Double) Text() string  { return v.Verilog() }
func (v String) Text() string  { return string(v) }
func (v Boolean) Text() string { return strconv.FormatBool(bool(v)) }

func (v Binary) Text() string {
	return strconv.Itoa(v.Width) + "'b" + strconv.Itoa(v.Value)
}

// Bit returns the boolean as its numeric bit.
func (v Boolean) Bit() int {
	if v {
		return 1
	}
	return 0
}

// MarshalJSON encodes a binary literal as its "<width>'b<value>" string.
func (v Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Text())
}

// formatDouble uses plain decimal notation in [1e-3, 1e7) and always keeps a
// decimal point there, so a double never reads as an integer. Outside that
// range it writes a mantissa with a decimal point and an exponent without a
// plus sign, as in 1.0E7 or 2.5E-4.
func formatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
		if !strings.Contains(mantissa, ".") {
			mantissa += ".0"
		}
		n, _ := strconv.Atoi(exp)
		return mantissa + "E" + strconv.Itoa(n)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
