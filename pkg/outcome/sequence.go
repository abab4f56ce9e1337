package outcome

// Sequence merges outcomes into a single outcome without short-circuiting.
//
// When every element is Valid the result holds all values in input order.
// Otherwise the result is Invalid and holds the errors of every Invalid
// element, concatenated in input order; Valid elements contribute nothing.
// An empty input yields Valid with an empty slice.
func Sequence[E, T any](outcomes []Outcome[E, T]) Outcome[E, []T] {
	var errs []E
	for _, o := range outcomes {
		errs = append(errs, o.errs...)
	}
	if len(errs) > 0 {
		return invalidFrom[E, []T](errs)
	}

	values := make([]T, len(outcomes))
	for i, o := range outcomes {
		values[i] = o.value
	}
	return Valid[E](values)
}

// Traverse applies check to every item and merges the results with Sequence.
func Traverse[E, A, B any](items []A, check func(A) Outcome[E, B]) Outcome[E, []B] {
	outcomes := make([]Outcome[E, B], len(items))
	for i, item := range items {
		outcomes[i] = check(item)
	}
	return Sequence(outcomes)
}
