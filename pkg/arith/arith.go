// Package arith holds integer division in three shapes: a partial function
// that panics, and total variants returning try.Try and either.Either.
package arith

import (
	"errors"

	"github.com/dmitrymomot/validkit/pkg/either"
	"github.com/dmitrymomot/validkit/pkg/try"
)

// ErrDivisionByZero is the failure of DivideTry and the Left of DivideEither.
var ErrDivisionByZero = errors.New("division by zero")

// Divide returns a / b. It panics when b is zero.
func Divide(a, b int) int {
	return a / b
}

// DivideTry captures the panic of Divide as a failed Try.
func DivideTry(a, b int) try.Try[int] {
	return try.OfFunc(func() int { return Divide(a, b) })
}

func DivideEither(a, b int) either.Either[error, int] {
	if b == 0 {
		return either.Left[error, int](ErrDivisionByZero)
	}
	return either.Right[error](a / b)
}
