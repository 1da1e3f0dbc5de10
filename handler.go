package patmatch

import (
	"errors"

	"github.com/npillmayer/patmatch/pattern"
)

// Bindings holds the captures of the matching case.
type Bindings = pattern.Env

// Wildcard matches anything. It is interchangeable with Default.
var Wildcard = pattern.Wildcard

// Default matches anything. It is interchangeable with Wildcard.
var Default = pattern.Default

// Handler produces the result of a match from the bindings of the matching
// case and the subject.
type Handler[R any] func(b Bindings, subject any) (R, error)

// Value is a handler which returns r.
func Value[R any](r R) Handler[R] {
	return func(Bindings, any) (R, error) {
		return r, nil
	}
}

// Func adapts an infallible function to a Handler.
func Func[R any](f func(b Bindings, subject any) R) Handler[R] {
	return func(b Bindings, subject any) (R, error) {
		return f(b, subject), nil
	}
}

// Fail is a handler which, when invoked, returns an error with message msg.
func Fail[R any](msg string) Handler[R] {
	return func(Bindings, any) (R, error) {
		var zero R
		return zero, errors.New(msg)
	}
}

// ThrowError is Fail.
func ThrowError[R any](msg string) Handler[R] {
	return Fail[R](msg)
}

// Panic is Fail. It does not panic; the name mirrors call sites which use
// a match to signal an unrecoverable condition.
func Panic[R any](msg string) Handler[R] {
	return Fail[R](msg)
}

// --- Cases -----------------------------------------------------------------

// Case pairs a pattern with a handler.
type Case[R any] struct {
	Pattern pattern.Pattern
	Handler Handler[R]
}

// With is a case yielding r when p matches. p is converted with pattern.Of.
func With[R any](p any, r R) Case[R] {
	return Case[R]{Pattern: pattern.Of(p), Handler: Value(r)}
}

// When is a case calling f when p matches.
func When[R any](p any, f func(b Bindings, subject any) R) Case[R] {
	return Case[R]{Pattern: pattern.Of(p), Handler: Func(f)}
}

// WhenE is a case calling a fallible handler when p matches.
func WhenE[R any](p any, h Handler[R]) Case[R] {
	return Case[R]{Pattern: pattern.Of(p), Handler: h}
}

// Otherwise is a fallback case, matching anything.
func Otherwise[R any](h Handler[R]) Case[R] {
	return Case[R]{Pattern: Wildcard, Handler: h}
}
