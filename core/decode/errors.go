package decode

import (
	"fmt"

	"fromenv/core/schema"
)

// ErrNotStruct is returned when the target type is not a struct.
var ErrNotStruct = schema.ErrNotStruct

// TypeMismatchError is returned when a present value cannot be coerced.
type TypeMismatchError struct {
	Field string
	Value string
	Type  string
	Err   error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q as %s: %v", e.Field, e.Value, e.Type, e.Err)
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a required field has no value in any source.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %s: no value provided and no default declared", e.Field)
}

// UnknownFieldError is returned for keys matching no field when unknown keys are disallowed.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %s", e.Field)
}
