package validator

import (
	"fmt"

	"github.com/dmitrymomot/validkit/pkg/outcome"
)

// Predicate builds a check from a boolean rule and the message reported when it fails.
func Predicate[T any](ok func(T) bool, msg string) FieldCheck[T] {
	return func(value T) outcome.Outcome[string, T] {
		if ok(value) {
			return outcome.Valid[string](value)
		}
		return outcome.Invalid[string, T](msg)
	}
}

// All runs every check against the same value and accumulates their messages
// in argument order. The value passes only if every check passes.
func All[T any](checks ...FieldCheck[T]) FieldCheck[T] {
	return func(value T) outcome.Outcome[string, T] {
		results := make([]outcome.Outcome[string, T], len(checks))
		for i, check := range checks {
			results[i] = check(value)
		}
		return outcome.Map(outcome.Sequence(results), func([]T) T { return value })
	}
}

// WithMessage replaces the messages of a failing check with msg.
func WithMessage[T any](check FieldCheck[T], msg string) FieldCheck[T] {
	return func(value T) outcome.Outcome[string, T] {
		if res := check(value); res.IsInvalid() {
			return outcome.Invalid[string, T](msg)
		}
		return outcome.Valid[string](value)
	}
}

// Each applies check to every element of a slice and prefixes each message
// with the element index. Elements are checked exhaustively, in order.
func Each[T any](check FieldCheck[T]) FieldCheck[[]T] {
	return func(items []T) outcome.Outcome[string, []T] {
		indexed := make([]outcome.Outcome[string, T], len(items))
		for i, item := range items {
			indexed[i] = outcome.MapErrors(check(item), func(msg string) string {
				return fmt.Sprintf("item %d: %s", i, msg)
			})
		}
		return outcome.Map(outcome.Sequence(indexed), func([]T) []T { return items })
	}
}
