package option

import "errors"

// ErrNoValue is the panic value of Get on None.
var ErrNoValue = errors.New("option: value requested from None")
