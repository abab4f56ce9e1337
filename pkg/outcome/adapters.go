package outcome

import (
	"github.com/dmitrymomot/validkit/pkg/either"
	"github.com/dmitrymomot/validkit/pkg/option"
	"github.com/dmitrymomot/validkit/pkg/try"
)

// FromOption maps Some(v) to Valid(v) and None to Invalid([msg]).
func FromOption[T any](o option.Option[T], msg string) Outcome[string, T] {
	if o.IsNone() {
		return Invalid[string, T](msg)
	}
	return Valid[string](o.Get())
}

// FromEither maps Right(v) to Valid(v) and Left(l) to Invalid([render(l)]).
func FromEither[L, R any](e either.Either[L, R], render func(L) string) Outcome[string, R] {
	if e.IsLeft() {
		return Invalid[string, R](render(e.GetLeft()))
	}
	return Valid[string](e.Get())
}

// FromTry maps a Success to Valid and a Failure to Invalid with a single
// message. An empty msg uses the failure cause's text instead.
func FromTry[T any](t try.Try[T], msg string) Outcome[string, T] {
	if t.IsFailure() {
		if msg == "" {
			msg = t.Err().Error()
		}
		return Invalid[string, T](msg)
	}
	return Valid[string](t.Get())
}
