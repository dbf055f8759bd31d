/*
Package maybe provides an optional-value type.

A Maybe[T] is either Just a value of type T, or Nothing. It is the return
type of every operation in this module that may come up empty, replacing
the (T, bool) comma-ok idiom with a value that can be passed around,
defaulted and mapped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// IsNothing is true if m is absent.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Unwrap returns the held value and a flag telling whether it is present.
// For absent values it returns the zero value of T.
func (m Maybe[T]) Unwrap() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the held value, or def if m is absent.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the held value, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation that may itself come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value held by x, if any.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// Equal compares two optional values: two Nothings are equal, two Justs are
// equal iff the held values are.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.tag != b.tag {
		return false
	}
	return !a.tag || a.value == b.value
}
