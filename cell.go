package seqcell

import (
	"fmt"

	"github.com/npillmayer/seqcell/maybe"
)

// Cell is a growable sequence of T that may be mutated through a shared
// handle. The zero value is an empty cell ready for use, though cells are
// normally created with New, From or Of and shared as a *Cell.
type Cell[T any] struct {
	inner []T
}

// New creates an empty cell.
func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

// WithCapacity creates an empty cell with storage for n elements
// preallocated.
func WithCapacity[T any](n int) *Cell[T] {
	assertThat(n >= 0, "negative capacity: %d", n)
	return &Cell[T]{inner: make([]T, 0, n)}
}

// From wraps an existing slice without copying it. The cell takes ownership:
// the caller must not use s afterwards, or the no-aliasing contract of the
// safe API is broken from the start.
func From[T any](s []T) *Cell[T] {
	return &Cell[T]{inner: s}
}

// Of creates a cell holding the given elements, in order.
func Of[T any](values ...T) *Cell[T] {
	c := New[T]()
	c.Append(values...)
	return c
}

// Collect creates a cell by drawing elements from next until it yields
// Nothing.
func Collect[T any](next func() maybe.Maybe[T]) *Cell[T] {
	c := New[T]()
	for {
		v, ok := next().Unwrap()
		if !ok {
			return c
		}
		c.inner = append(c.inner, v)
	}
}

// --- Read surface ------------------------------------------------------------

// Len is the current element count, read fresh from the inner sequence.
func (c *Cell[T]) Len() int {
	return len(c.inner)
}

// Cap is the current storage capacity of the inner sequence.
func (c *Cell[T]) Cap() int {
	return cap(c.inner)
}

// IsEmpty is true if the cell holds no elements.
func (c *Cell[T]) IsEmpty() bool {
	return len(c.inner) == 0
}

// Get returns a copy of the element at index i, or Nothing if i is out of
// bounds.
func (c *Cell[T]) Get(i int) maybe.Maybe[T] {
	if i < 0 || i >= len(c.inner) {
		return maybe.Nothing[T]()
	}
	return maybe.Just(c.inner[i])
}

// First returns a copy of the first element, or Nothing if the cell is
// empty.
func (c *Cell[T]) First() maybe.Maybe[T] {
	return c.Get(0)
}

// Last returns a copy of the last element, or Nothing if the cell is empty.
func (c *Cell[T]) Last() maybe.Maybe[T] {
	return c.Get(len(c.inner) - 1)
}

// Slice returns a copy of the inner sequence. The returned slice does not
// alias the cell's storage.
func (c *Cell[T]) Slice() []T {
	s := make([]T, len(c.inner))
	copy(s, c.inner)
	return s
}

// Clone returns a new cell with its own copy of the inner sequence.
func (c *Cell[T]) Clone() *Cell[T] {
	return From(c.Slice())
}

func (c *Cell[T]) String() string {
	return fmt.Sprintf("Cell%v", c.inner)
}
