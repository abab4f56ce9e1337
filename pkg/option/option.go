package option

import "fmt"

// Option represents a value that may or may not be present.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer returns Some(*ptr) for a non-nil pointer and None for nil.
func FromPointer[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromTuple adapts the comma-ok idiom: Some(value) when ok, None otherwise.
func FromTuple[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value. It panics with ErrNoValue on None.
func (o Option[T]) Get() T {
	if !o.present {
		panic(ErrNoValue)
	}
	return o.value
}

// GetOrElse returns the value if present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// GetOrElseFunc returns the value if present, otherwise the result of fn.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// OrNil returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) OrNil() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// Filter keeps the value only if predicate holds.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// String renders Some(<value>) or None.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map transforms the value of Some and leaves None untouched.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMap chains a computation returning an Option.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.value)
}
