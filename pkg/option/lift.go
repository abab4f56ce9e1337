package option

// Lift turns a partial function into a total one: a panic inside fn
// (for example an integer division by zero) becomes None.
func Lift[A, R any](fn func(A) R) func(A) Option[R] {
	return func(a A) (out Option[R]) {
		defer func() {
			if r := recover(); r != nil {
				out = None[R]()
			}
		}()
		return Some(fn(a))
	}
}

// Lift2 is Lift for functions of two arguments.
//
//	safeDivide := option.Lift2(func(a, b int) int { return a / b })
//	safeDivide(1, 0) // None
//	safeDivide(4, 2) // Some(2)
func Lift2[A, B, R any](fn func(A, B) R) func(A, B) Option[R] {
	return func(a A, b B) (out Option[R]) {
		defer func() {
			if r := recover(); r != nil {
				out = None[R]()
			}
		}()
		return Some(fn(a, b))
	}
}
