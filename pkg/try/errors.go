package try

import "errors"

var (
	// ErrPanic wraps a value recovered from a panicking computation.
	ErrPanic = errors.New("try: computation panicked")

	// ErrNotSuccess is the panic value of Get on a Failure.
	ErrNotSuccess = errors.New("try: value requested from a failure")

	// ErrNilFailure stands in for a nil error passed to Failure.
	ErrNilFailure = errors.New("try: failure without cause")
)
