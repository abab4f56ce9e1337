package records

import "errors"

var (
	ErrCanceled = errors.New("records: validation canceled")
	ErrDecode   = errors.New("records: failed to decode records")
)
