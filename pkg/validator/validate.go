package validator

import (
	"context"

	"github.com/dmitrymomot/validkit/pkg/async"
	"github.com/dmitrymomot/validkit/pkg/outcome"
)

// Validate runs every field check, in declared order, and never skips a check
// because an earlier one failed.
//
// If all checks pass, reconstruct is called once with the checked values in
// declared order and its result is returned as Valid. Otherwise the result is
// Invalid and holds the messages of every failing field, concatenated in
// declared order; passing fields contribute nothing.
//
// It panics with ErrNoFields when fields is empty and with ErrNilReconstruct
// when reconstruct is nil.
func Validate[R any](fields []Checker, reconstruct func(Values) R) outcome.Outcome[string, R] {
	mustBeWired(fields, reconstruct)
	return merge(fields, evaluate(fields), reconstruct)
}

// ValidateConcurrent is Validate with every check evaluated on its own goroutine.
// Outcomes are reassembled in declared field order, so the result is identical
// to Validate for the same input.
//
// The error is non-nil only when ctx is done before every check has finished;
// validation failures are reported through the returned Outcome.
func ValidateConcurrent[R any](ctx context.Context, fields []Checker, reconstruct func(Values) R) (outcome.Outcome[string, R], error) {
	mustBeWired(fields, reconstruct)

	results, err := evaluateConcurrent(ctx, fields)
	if err != nil {
		return outcome.Outcome[string, R]{}, err
	}
	return merge(fields, results, reconstruct), nil
}

// Evaluate is Validate that also returns the failures attributed to their
// fields. Both come from a single run of each check; the ValidationErrors is
// empty when the outcome is Valid.
func Evaluate[R any](fields []Checker, reconstruct func(Values) R) (outcome.Outcome[string, R], ValidationErrors) {
	mustBeWired(fields, reconstruct)

	results := evaluate(fields)
	return merge(fields, results, reconstruct), attribute(fields, results)
}

// EvaluateConcurrent is Evaluate with the checks run as in ValidateConcurrent.
func EvaluateConcurrent[R any](ctx context.Context, fields []Checker, reconstruct func(Values) R) (outcome.Outcome[string, R], ValidationErrors, error) {
	mustBeWired(fields, reconstruct)

	results, err := evaluateConcurrent(ctx, fields)
	if err != nil {
		return outcome.Outcome[string, R]{}, nil, err
	}
	return merge(fields, results, reconstruct), attribute(fields, results), nil
}

// Report is the (value, error) form of Validate. On failure the error is a
// ValidationErrors whose entries carry the name of the field that produced
// each message, in declared order.
func Report[R any](fields []Checker, reconstruct func(Values) R) (R, error) {
	mustBeWired(fields, reconstruct)

	results := evaluate(fields)
	errs := attribute(fields, results)
	if !errs.IsEmpty() {
		var zero R
		return zero, errs
	}

	return merge(fields, results, reconstruct).Get(), nil
}

func evaluate(fields []Checker) []outcome.Outcome[string, any] {
	results := make([]outcome.Outcome[string, any], len(fields))
	for i, f := range fields {
		results[i] = f.checkAny()
	}
	return results
}

func evaluateConcurrent(ctx context.Context, fields []Checker) ([]outcome.Outcome[string, any], error) {
	futures := make([]*async.Future[outcome.Outcome[string, any]], len(fields))
	for i, f := range fields {
		futures[i] = async.Async(ctx, f, func(_ context.Context, c Checker) (outcome.Outcome[string, any], error) {
			return c.checkAny(), nil
		})
	}
	return async.WaitAll(ctx, futures...)
}

// attribute pairs every failure message with the name of its field.
func attribute(fields []Checker, results []outcome.Outcome[string, any]) ValidationErrors {
	var errs ValidationErrors
	for i, res := range results {
		msgs, failed := res.Errors()
		if !failed {
			continue
		}
		for _, msg := range msgs {
			errs.Add(ValidationError{Field: fields[i].FieldName(), Message: msg})
		}
	}
	return errs
}

func merge[R any](fields []Checker, results []outcome.Outcome[string, any], reconstruct func(Values) R) outcome.Outcome[string, R] {
	return outcome.Map(outcome.Sequence(results), func(values []any) R {
		return reconstruct(Values{fields: fields, values: values})
	})
}

func mustBeWired[R any](fields []Checker, reconstruct func(Values) R) {
	if len(fields) == 0 {
		panic(ErrNoFields)
	}
	if reconstruct == nil {
		panic(ErrNilReconstruct)
	}
}
