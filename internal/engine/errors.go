package engine

import (
	"fmt"

	"github.com/vk/tlvconfig/internal/mapper"
	"github.com/vk/tlvconfig/internal/param"
)

// TypeMismatchError is returned when a submitted value's kind differs from
// the kind its parameter accepts.
type TypeMismatchError struct {
	Key      string
	Expected param.Kind
	Actual   param.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Parameter %s only accepts values of type %s", e.Key, e.Expected)
}

// MapperError is returned when a parameter's output mapper rejects the
// effective value.
type MapperError struct {
	Key    string
	Mapper mapper.Name
	Err    error
}

func (e *MapperError) Error() string {
	return fmt.Sprintf("Parameter %s: output mapper %s failed: %v", e.Key, e.Mapper, e.Err)
}

func (e *MapperError) Unwrap() error { return e.Err }
