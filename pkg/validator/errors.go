package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoFields is the panic value when a record is validated without fields.
	ErrNoFields = errors.New("validator: at least one field is required")

	// ErrNilReconstruct is the panic value when no reconstruction function is given.
	ErrNilReconstruct = errors.New("validator: reconstruction function is nil")

	// ErrNilCheck is the panic value when a field is declared without a check.
	ErrNilCheck = errors.New("validator: field check is nil")

	// ErrUnknownField is the panic value when Get is asked for a field that was not validated.
	ErrUnknownField = errors.New("validator: field is not part of the validated record")
)
