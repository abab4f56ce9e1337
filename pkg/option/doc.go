// Package option provides Option, a container for a value that may be absent.
//
// Option replaces nil pointers and comma-ok pairs where absence needs to be
// passed around as a value:
//
//	name := option.FromPointer(req.Name)
//	fmt.Println(name)                   // Some(alice) or None
//	fmt.Println(name.GetOrElse("anon"))
//
// Lift and Lift2 turn partial functions that panic on some inputs into total
// functions returning None for those inputs.
//
// Get panics with ErrNoValue on None. Call IsSome first or use GetOrElse.
package option
