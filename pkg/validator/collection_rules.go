package validator

import "fmt"

// RequiredSlice validates that a slice is non-nil and has at least one element.
func RequiredSlice[T any]() FieldCheck[[]T] {
	return Predicate(func(v []T) bool {
		return len(v) > 0
	}, "field is required")
}

func MinItems[T any](min int) FieldCheck[[]T] {
	return Predicate(func(v []T) bool {
		return len(v) >= min
	}, fmt.Sprintf("must have at least %d items", min))
}

func MaxItems[T any](max int) FieldCheck[[]T] {
	return Predicate(func(v []T) bool {
		return len(v) <= max
	}, fmt.Sprintf("must have at most %d items", max))
}

func RequiredMap[K comparable, V any]() FieldCheck[map[K]V] {
	return Predicate(func(v map[K]V) bool {
		return len(v) > 0
	}, "field is required")
}
