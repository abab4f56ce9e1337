package validator

import (
	"fmt"

	"github.com/dmitrymomot/validkit/pkg/outcome"
)

// FieldCheck validates a single field value. It returns Valid(value) when the
// rule holds, otherwise Invalid with one message per violation.
// Checks must be pure: no I/O, no panics, no mutation of the input.
type FieldCheck[T any] func(T) outcome.Outcome[string, T]

// Checker is a field of a record paired with its check, with the field type
// erased so fields of different types can share one ordered slice.
// It is implemented by *Field[T].
type Checker interface {
	FieldName() string
	checkAny() outcome.Outcome[string, any]
}

// Field is a named field value together with the check that validates it.
type Field[T any] struct {
	name  string
	value T
	check FieldCheck[T]
}

// NewField pairs a field value with its check.
// It panics if check is nil.
func NewField[T any](name string, value T, check FieldCheck[T]) *Field[T] {
	if check == nil {
		panic(fmt.Errorf("%w: %q", ErrNilCheck, name))
	}
	return &Field[T]{name: name, value: value, check: check}
}

func (f *Field[T]) FieldName() string {
	return f.name
}

// Check runs the field's check on its value.
func (f *Field[T]) Check() outcome.Outcome[string, T] {
	return f.check(f.value)
}

func (f *Field[T]) checkAny() outcome.Outcome[string, any] {
	return outcome.Map(f.Check(), func(v T) any { return v })
}

// Values holds the checked values of a record in declared field order.
// It is passed to the reconstruction function once every check has passed.
type Values struct {
	fields []Checker
	values []any
}

// Len returns the number of values.
func (v Values) Len() int {
	return len(v.values)
}

// At returns the value at declared position i.
func (v Values) At(i int) any {
	return v.values[i]
}

// All returns a copy of the values in declared order.
func (v Values) All() []any {
	return append([]any(nil), v.values...)
}

// Get returns the checked value of field f.
// It panics with ErrUnknownField if f was not part of the validated fields.
func Get[T any](v Values, f *Field[T]) T {
	for i, c := range v.fields {
		if c == Checker(f) {
			// A nil interface-typed value fails a plain assertion; fall back to the zero value.
			val, _ := v.values[i].(T)
			return val
		}
	}
	panic(fmt.Errorf("%w: %q", ErrUnknownField, f.FieldName()))
}
