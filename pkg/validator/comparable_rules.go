package validator

import (
	"fmt"
	"slices"
)

// RequiredComparable validates that a comparable value is not its zero value.
func RequiredComparable[T comparable]() FieldCheck[T] {
	var zero T
	return Predicate(func(v T) bool {
		return v != zero
	}, "field is required")
}

func OneOf[T comparable](options ...T) FieldCheck[T] {
	allowed := slices.Clone(options)
	return Predicate(func(v T) bool {
		return slices.Contains(allowed, v)
	}, fmt.Sprintf("must be one of: %v", allowed))
}

func NoneOf[T comparable](options ...T) FieldCheck[T] {
	forbidden := slices.Clone(options)
	return Predicate(func(v T) bool {
		return !slices.Contains(forbidden, v)
	}, fmt.Sprintf("must not be one of: %v", forbidden))
}
