package try

import (
	"fmt"

	"github.com/dmitrymomot/validkit/pkg/either"
	"github.com/dmitrymomot/validkit/pkg/option"
)

// Try is the result of a computation that either produced a value or failed.
type Try[T any] struct {
	value T
	err   error
}

// Success wraps a computed value.
func Success[T any](value T) Try[T] {
	return Try[T]{value: value}
}

// Failure wraps an error. A nil err is replaced by ErrNilFailure so that a
// Failure is never mistaken for a Success.
func Failure[T any](err error) Try[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Try[T]{err: err}
}

// Of runs fn and captures its outcome. A panic inside fn is recovered and
// turned into a Failure wrapping ErrPanic.
func Of[T any](fn func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Failure[T](panicError(r))
		}
	}()

	value, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// OfFunc is Of for computations that can only fail by panicking.
func OfFunc[T any](fn func() T) Try[T] {
	return Of(func() (T, error) {
		return fn(), nil
	})
}

func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Err returns the failure cause, or nil for a Success.
func (t Try[T]) Err() error {
	return t.err
}

// Get returns the value of a Success. It panics with the failure cause
// wrapped in ErrNotSuccess otherwise.
func (t Try[T]) Get() T {
	if t.err != nil {
		panic(fmt.Errorf("%w: %w", ErrNotSuccess, t.err))
	}
	return t.value
}

func (t Try[T]) GetOrElse(fallback T) T {
	if t.err != nil {
		return fallback
	}
	return t.value
}

// Recover converts a Failure into a Success using fn. A panic in fn becomes
// a Failure, as in Map.
func (t Try[T]) Recover(fn func(error) T) Try[T] {
	if t.err == nil {
		return t
	}
	return OfFunc(func() T { return fn(t.err) })
}

// ToOption drops the failure cause.
func (t Try[T]) ToOption() option.Option[T] {
	if t.err != nil {
		return option.None[T]()
	}
	return option.Some(t.value)
}

// ToEither puts the failure cause on the Left.
func (t Try[T]) ToEither() either.Either[error, T] {
	if t.err != nil {
		return either.Left[error, T](t.err)
	}
	return either.Right[error](t.value)
}

// String renders Success(<value>) or Failure(<error>).
func (t Try[T]) String() string {
	if t.err != nil {
		return fmt.Sprintf("Failure(%v)", t.err)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}

// Map transforms the value of a Success. A panic in fn becomes a Failure.
func Map[T, U any](t Try[T], fn func(T) U) Try[U] {
	if t.err != nil {
		return Failure[U](t.err)
	}
	return OfFunc(func() U { return fn(t.value) })
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}
