// Package outcome provides Outcome, a two-variant result that is either Valid
// with a value or Invalid with an ordered, non-empty list of errors.
//
// Unlike a plain (value, error) pair, an Outcome can carry several errors, and
// Sequence merges many outcomes without stopping at the first failure. This is
// the building block of the validator package, which checks every field of a
// record and reports every violated rule in one pass.
//
// # Construction
//
//	ok := outcome.Valid[string](42)
//	bad := outcome.Invalid[string, int]("must be positive")
//
// Invalid requires at least one error, so an Invalid outcome can never be
// empty. The zero value of Outcome is Valid holding the zero value of T.
//
// # Inspection
//
// IsValid and IsInvalid are pure predicates. Value and Errors are the safe,
// comma-ok accessors. Get and UnwrapErrors panic (with ErrNotValid and
// ErrNotInvalid respectively) when called on the wrong variant; use them only
// after checking the variant. Match and Fold take both arms, so every call
// site handles both variants.
//
// # Merging
//
//	merged := outcome.Sequence([]outcome.Outcome[string, int]{
//	    outcome.Valid[string](1),
//	    outcome.Invalid[string, int]("a"),
//	    outcome.Invalid[string, int]("b", "c"),
//	})
//	fmt.Println(merged) // Invalid(List(a, b, c))
//
// Errors keep input order and are never deduplicated.
//
// # Rendering
//
// String renders Valid(<value>) and Invalid(List(<e1>, <e2>, ...)), which is
// the form used in logs and test assertions.
//
// # Adapters
//
// FromOption, FromEither, FromTry and FromTuple convert the other result
// containers into an Outcome, mapping absence or failure to exactly one error
// message.
package outcome
