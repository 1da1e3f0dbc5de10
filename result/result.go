/*
Package result implements a value-or-error type.

A Result is the outcome of a computation which may fail. Clients inspect a
Result by matching on it:

	var v string
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
		// use v
	case m.Err(&err):
		// handle err
	}

A finalized pattern match may be converted into a Result, which lets
callers chain further steps without checking the error after every step.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import "github.com/npillmayer/patmatch/maybe"

// Result is either a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	Unwrap() (T, error)
	IsOk() bool
	WithDefault(T) T
	ToMaybe() maybe.Maybe[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From converts Go's (value, error) convention into a Result. A non-nil
// error makes the Result an Err, whatever x is.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// FromMaybe converts x into a Result, using err for Nothing.
func FromMaybe[T any](x maybe.Maybe[T], err error) Result[T] {
	if v, ok := x.Get(); ok {
		return Ok(v)
	}
	return Err[T](err)
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r result[T]) ToMaybe() maybe.Maybe[T] {
	return maybe.From(r.value, r.err == nil)
}

// Map applies f to the value of an Ok result.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// MapError transforms the error of an Err result.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	if _, err := r.Unwrap(); err != nil {
		return Err[T](f(err))
	}
	return r
}

// --- Matching --------------------------------------------------------------

// Matcher selects between the two shapes of a Result in a switch statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
