// Package either provides Either, a value that is one of two types.
//
// By convention Left carries the failure and Right the success, and the
// transformations (Map, GetOrElse) are right-biased.
package either

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRight is the panic value of Get on a Left.
	ErrNotRight = errors.New("either: right value requested from a left")

	// ErrNotLeft is the panic value of GetLeft on a Right.
	ErrNotLeft = errors.New("either: left value requested from a right")
)

// Either holds exactly one of a Left value of type L or a Right value of type R.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Get returns the Right value. It panics with ErrNotRight on a Left.
func (e Either[L, R]) Get() R {
	if !e.isRight {
		panic(fmt.Errorf("%w: %v", ErrNotRight, e.left))
	}
	return e.right
}

// GetLeft returns the Left value. It panics with ErrNotLeft on a Right.
func (e Either[L, R]) GetLeft() L {
	if e.isRight {
		panic(ErrNotLeft)
	}
	return e.left
}

func (e Either[L, R]) GetOrElse(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// String renders Left(<value>) or Right(<value>).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold reduces the Either to a single value.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map transforms a Right value and passes a Left through unchanged.
func Map[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft transforms a Left value and passes a Right through unchanged.
func MapLeft[L, R, M any](e Either[L, R], fn func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](fn(e.left))
}
