package param

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidBinaryLiteral is returned when text is not of the form digits'bdigits.
var ErrInvalidBinaryLiteral = errors.New("input not binary value")

var binaryPattern = regexp.MustCompile(`^(\d+)'b(\d+)$`)

// IsBinaryLiteral reports whether s has the shape of a binary literal.
func IsBinaryLiteral(s string) bool {
	return binaryPattern.MatchString(s)
}

// ParseBinary builds a Binary from text such as "4'b10".
func ParseBinary(s string) (Binary, error) {
	groups := binaryPattern.FindStringSubmatch(s)
	if groups == nil {
		return Binary{}, fmt.Errorf("%w: %s", ErrInvalidBinaryLiteral, s)
	}
	width, err := strconv.Atoi(groups[1])
	if err != nil {
		return Binary{}, fmt.Errorf("%w: %s", ErrInvalidBinaryLiteral, s)
	}
	value, err := strconv.Atoi(groups[2])
	if err != nil {
		return Binary{}, fmt.Errorf("%w: %s", ErrInvalidBinaryLiteral, s)
	}
	return Binary{Width: width, Value: value}, nil
}
