package outcome

import (
	"fmt"
	"strings"
)

// Outcome is either Valid with a value of type T or Invalid with a non-empty,
// ordered list of errors of type E.
//
// The variant is fixed at construction time. Invalid can only be built with at
// least one error, so an Invalid outcome without errors cannot exist.
// The zero value is Valid with the zero value of T.
type Outcome[E, T any] struct {
	value T
	errs  []E
}

// Valid creates a successful outcome holding value.
func Valid[E, T any](value T) Outcome[E, T] {
	return Outcome[E, T]{value: value}
}

// Invalid creates a failed outcome holding err followed by more, in order.
func Invalid[E, T any](err E, more ...E) Outcome[E, T] {
	errs := make([]E, 0, 1+len(more))
	errs = append(errs, err)
	errs = append(errs, more...)
	return Outcome[E, T]{errs: errs}
}

// invalidFrom builds an Invalid outcome from an already non-empty slice.
func invalidFrom[E, T any](errs []E) Outcome[E, T] {
	return Invalid[E, T](errs[0], errs[1:]...)
}

func (o Outcome[E, T]) IsValid() bool {
	return len(o.errs) == 0
}

func (o Outcome[E, T]) IsInvalid() bool {
	return len(o.errs) > 0
}

// Value returns the value and true when the outcome is Valid.
func (o Outcome[E, T]) Value() (T, bool) {
	if o.IsInvalid() {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Get returns the value of a Valid outcome.
// It panics with ErrNotValid when called on an Invalid outcome.
func (o Outcome[E, T]) Get() T {
	if o.IsInvalid() {
		panic(fmt.Errorf("%w: %v", ErrNotValid, o.errs))
	}
	return o.value
}

// GetOrElse returns the value when Valid, fallback otherwise.
func (o Outcome[E, T]) GetOrElse(fallback T) T {
	if o.IsInvalid() {
		return fallback
	}
	return o.value
}

// Errors returns a copy of the errors and true when the outcome is Invalid.
func (o Outcome[E, T]) Errors() ([]E, bool) {
	if o.IsValid() {
		return nil, false
	}
	return append([]E(nil), o.errs...), true
}

// UnwrapErrors returns a copy of the errors of an Invalid outcome.
// It panics with ErrNotInvalid when called on a Valid outcome; guard with
// IsInvalid or use Errors instead.
func (o Outcome[E, T]) UnwrapErrors() []E {
	if o.IsValid() {
		panic(ErrNotInvalid)
	}
	return append([]E(nil), o.errs...)
}

// Match calls exactly one of the two handlers depending on the variant.
func (o Outcome[E, T]) Match(onValid func(T), onInvalid func([]E)) {
	if o.IsValid() {
		onValid(o.value)
		return
	}
	onInvalid(append([]E(nil), o.errs...))
}

// String renders Valid(<value>) or Invalid(List(<e1>, <e2>, ...)).
func (o Outcome[E, T]) String() string {
	if o.IsValid() {
		return fmt.Sprintf("Valid(%v)", o.value)
	}

	parts := make([]string, len(o.errs))
	for i, err := range o.errs {
		parts[i] = fmt.Sprint(err)
	}
	return "Invalid(List(" + strings.Join(parts, ", ") + "))"
}

// Fold reduces the outcome to a single value of type U.
func Fold[E, T, U any](o Outcome[E, T], onValid func(T) U, onInvalid func([]E) U) U {
	if o.IsValid() {
		return onValid(o.value)
	}
	return onInvalid(append([]E(nil), o.errs...))
}

// Map transforms the value of a Valid outcome. Invalid outcomes keep their errors.
func Map[E, T, U any](o Outcome[E, T], fn func(T) U) Outcome[E, U] {
	if o.IsInvalid() {
		return invalidFrom[E, U](o.errs)
	}
	return Valid[E](fn(o.value))
}

// MapErrors transforms every error of an Invalid outcome, preserving order.
func MapErrors[E, F, T any](o Outcome[E, T], fn func(E) F) Outcome[F, T] {
	if o.IsValid() {
		return Valid[F](o.value)
	}
	mapped := make([]F, len(o.errs))
	for i, err := range o.errs {
		mapped[i] = fn(err)
	}
	return invalidFrom[F, T](mapped)
}

// FlatMap chains a computation that itself returns an Outcome.
// It short-circuits: fn is not called for an Invalid outcome.
func FlatMap[E, T, U any](o Outcome[E, T], fn func(T) Outcome[E, U]) Outcome[E, U] {
	if o.IsInvalid() {
		return invalidFrom[E, U](o.errs)
	}
	return fn(o.value)
}

// FromTuple converts the (value, error) convention into an Outcome whose single
// error message is err.Error().
func FromTuple[T any](value T, err error) Outcome[string, T] {
	if err != nil {
		return Invalid[string, T](err.Error())
	}
	return Valid[string](value)
}
