/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or it does not (Nothing). Clients
inspect a Maybe by matching on it:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		// use v
	case m.Nothing():
	}

The matcher returned by Match() returns itself from the case which applies
and nil from all others, which makes the switch select exactly one case.

Capture bindings of a pattern match are looked up as Maybe values, as a
capture may legitimately be bound to nil.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Filter(func(T) bool) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// From converts the comma-ok idiom into a Maybe.
func From[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Match returns a pointer matcher, as values of T need not be comparable.
func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Filter(f func(T) bool) Maybe[T] {
	if m.tag && f(m.value) {
		return m
	}
	return Nothing[T]()
}

// AndThen chains a computation which may itself produce nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Cast narrows a Maybe[any] to a Maybe[T]. A value of a different dynamic
// type yields Nothing.
func Cast[T any](x Maybe[any]) Maybe[T] {
	return AndThen(func(v any) Maybe[T] {
		t, ok := v.(T)
		return From(t, ok)
	}, x)
}

// --- Matching --------------------------------------------------------------

// Matcher selects between the two shapes of a Maybe in a switch statement.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
