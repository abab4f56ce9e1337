// Package validator validates records field by field and accumulates every
// failure instead of stopping at the first one.
//
// A record is described as an ordered list of fields. Each field pairs a value
// with a FieldCheck, a pure function returning an outcome.Outcome: Valid with
// the checked value, or Invalid with one or more messages. Validate evaluates
// every check, concatenates the messages of all failing fields in declared
// order, and only when nothing failed calls the reconstruction function to
// build the validated record.
//
// # Usage
//
//	name := validator.NewField("name", in.Name, validator.LettersAndSpaces("name"))
//	age := validator.NewField("age", in.Age, validator.Positive[int]())
//
//	res := validator.Validate([]validator.Checker{name, age}, func(v validator.Values) User {
//	    return User{Name: validator.Get(v, name), Age: validator.Get(v, age)}
//	})
//
//	fmt.Println(res) // Valid(...) or Invalid(List(msg1, msg2))
//
// ValidateConcurrent evaluates the checks on separate goroutines through the
// async package and reassembles the outcomes in declared order, so its result
// is identical to Validate. Report returns the conventional (value, error)
// pair, with a ValidationErrors error that carries field names. Evaluate and
// EvaluateConcurrent return the Outcome and the field-keyed ValidationErrors
// together, from one run of the checks.
//
// # Rules
//
// Each source file groups a family of reusable checks (string_rules.go,
// numeric_rules.go, collection_rules.go, comparable_rules.go, uuid_rules.go).
// compose.go holds the combinators: Predicate, All, WithMessage and Each.
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Misuse, such as validating zero fields or passing a nil
// reconstruction function, panics with one of the package's sentinel errors.
package validator
