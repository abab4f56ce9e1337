package model

import (
	"context"

	"github.com/dmitrymomot/validkit/pkg/outcome"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Field names as reported by Report and used in violation messages.
const (
	FieldStringParameter  = "stringParameter"
	FieldIntegerParameter = "integerParameter"
	FieldListParameter    = "listParameter"
)

const (
	MsgIntegerNotPositive = "Integer must be greater than 0"
	MsgListEmpty          = "List must be not empty"
)

type fields struct {
	stringParameter  *validator.Field[string]
	integerParameter *validator.Field[int]
	listParameter    *validator.Field[[]Item]
}

func declaredFields(b Basic) fields {
	return fields{
		stringParameter: validator.NewField(FieldStringParameter, b.StringParameter,
			validator.LettersAndSpaces(FieldStringParameter)),
		integerParameter: validator.NewField(FieldIntegerParameter, b.IntegerParameter,
			validator.WithMessage(validator.Positive[int](), MsgIntegerNotPositive)),
		listParameter: validator.NewField(FieldListParameter, b.ListParameter,
			validator.WithMessage(validator.RequiredSlice[Item](), MsgListEmpty)),
	}
}

func (f fields) checkers() []validator.Checker {
	return []validator.Checker{f.stringParameter, f.integerParameter, f.listParameter}
}

func (f fields) reconstruct(v validator.Values) Basic {
	return New(
		validator.Get(v, f.stringParameter),
		validator.Get(v, f.integerParameter),
		validator.Get(v, f.listParameter),
	)
}

// Validate checks every field of b and returns the rebuilt record, or every
// violation in field order.
func Validate(b Basic) outcome.Outcome[string, Basic] {
	f := declaredFields(b)
	return validator.Validate(f.checkers(), f.reconstruct)
}

// ValidateConcurrent is Validate with the field checks run in parallel.
// The error is non-nil only if ctx ends first.
func ValidateConcurrent(ctx context.Context, b Basic) (outcome.Outcome[string, Basic], error) {
	f := declaredFields(b)
	return validator.ValidateConcurrent(ctx, f.checkers(), f.reconstruct)
}

// Report returns the validated record or a validator.ValidationErrors keyed by
// field name.
func Report(b Basic) (Basic, error) {
	f := declaredFields(b)
	return validator.Report(f.checkers(), f.reconstruct)
}

// Evaluate is Validate that also returns the violations keyed by field name,
// taken from the same run of the checks.
func Evaluate(b Basic) (outcome.Outcome[string, Basic], validator.ValidationErrors) {
	f := declaredFields(b)
	return validator.Evaluate(f.checkers(), f.reconstruct)
}

// EvaluateConcurrent is Evaluate with the field checks run in parallel.
func EvaluateConcurrent(ctx context.Context, b Basic) (outcome.Outcome[string, Basic], validator.ValidationErrors, error) {
	f := declaredFields(b)
	return validator.EvaluateConcurrent(ctx, f.checkers(), f.reconstruct)
}
