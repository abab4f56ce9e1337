// Package try captures the result of a computation that may return an error
// or panic, so that callers handle failure as a value.
//
//	result := try.Of(func() (Config, error) { return parse(raw) })
//	if result.IsFailure() {
//	    log.Warn("using defaults", logger.Error(result.Err()))
//	}
//	cfg := result.GetOrElse(defaults)
//
// Panics inside the computation are recovered and reported as failures
// wrapping ErrPanic; runtime errors such as integer division by zero are kept
// in the chain and can be inspected with errors.As.
//
// A Try converts to option.Option (ToOption) and either.Either (ToEither).
package try
