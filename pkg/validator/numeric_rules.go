package validator

import "fmt"

// RequiredNum validates that a numeric value is not zero.
func RequiredNum[T Numeric]() FieldCheck[T] {
	var zero T
	return Predicate(func(v T) bool {
		return v != zero
	}, "field is required")
}

// Positive validates that a numeric value is strictly greater than zero.
func Positive[T Numeric]() FieldCheck[T] {
	var zero T
	return Predicate(func(v T) bool {
		return v > zero
	}, "must be greater than 0")
}

// Min validates that a numeric value is greater than or equal to min.
func Min[T Numeric](min T) FieldCheck[T] {
	return Predicate(func(v T) bool {
		return v >= min
	}, fmt.Sprintf("must be at least %v", min))
}

// Max validates that a numeric value is less than or equal to max.
func Max[T Numeric](max T) FieldCheck[T] {
	return Predicate(func(v T) bool {
		return v <= max
	}, fmt.Sprintf("must be at most %v", max))
}

// Between validates min <= value <= max.
func Between[T Numeric](min, max T) FieldCheck[T] {
	return Predicate(func(v T) bool {
		return v >= min && v <= max
	}, fmt.Sprintf("must be between %v and %v", min, max))
}
