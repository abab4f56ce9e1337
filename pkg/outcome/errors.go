package outcome

import "errors"

var (
	// ErrNotInvalid is the panic value when errors are requested from a Valid outcome.
	ErrNotInvalid = errors.New("outcome: errors requested from a valid outcome")

	// ErrNotValid is the panic value when a value is requested from an Invalid outcome.
	ErrNotValid = errors.New("outcome: value requested from an invalid outcome")
)
