package seqcell

import (
	"fmt"
	"slices"

	"github.com/npillmayer/seqcell/maybe"
)

// Push appends a value to the end of the sequence.
func (c *Cell[T]) Push(value T) {
	c.inner = append(c.inner, value)
}

// Append appends all given values to the end of the sequence, in order.
func (c *Cell[T]) Append(values ...T) {
	c.inner = append(c.inner, values...)
}

// Pop removes and returns the last element, or Nothing if the cell is
// empty.
func (c *Cell[T]) Pop() maybe.Maybe[T] {
	n := len(c.inner)
	if n == 0 {
		return maybe.Nothing[T]()
	}
	v := c.inner[n-1]
	clear(c.inner[n-1:])
	c.inner = c.inner[:n-1]
	return maybe.Just(v)
}

// Insert inserts value at index i, shifting subsequent elements right.
// i == Len() appends. Panics if i is out of range.
func (c *Cell[T]) Insert(i int, value T) {
	assertThat(i >= 0 && i <= len(c.inner), "insertion index out of bounds: %d with length %d", i, len(c.inner))
	if i == len(c.inner) {
		c.inner = append(c.inner, value)
		return
	}
	var zero T
	c.inner = append(c.inner, zero)
	copy(c.inner[i+1:], c.inner[i:])
	c.inner[i] = value
}

// Remove removes and returns the element at index i, shifting subsequent
// elements left. Panics if i is out of range.
func (c *Cell[T]) Remove(i int) T {
	assertThat(i >= 0 && i < len(c.inner), "removal index out of bounds: %d with length %d", i, len(c.inner))
	v := c.inner[i]
	n := len(c.inner)
	copy(c.inner[i:], c.inner[i+1:])
	clear(c.inner[n-1:])
	c.inner = c.inner[:n-1]
	return v
}

// SwapRemove removes and returns the element at index i by moving the last
// element into its place. O(1), but does not preserve order. Panics if i is
// out of range.
func (c *Cell[T]) SwapRemove(i int) T {
	assertThat(i >= 0 && i < len(c.inner), "removal index out of bounds: %d with length %d", i, len(c.inner))
	n := len(c.inner)
	v := c.inner[i]
	c.inner[i] = c.inner[n-1]
	clear(c.inner[n-1:])
	c.inner = c.inner[:n-1]
	return v
}

// Set replaces the element at index i and returns the previous value, or
// Nothing if i is out of bounds, in which case the sequence is unchanged.
func (c *Cell[T]) Set(i int, value T) maybe.Maybe[T] {
	if i < 0 || i >= len(c.inner) {
		return maybe.Nothing[T]()
	}
	old := c.inner[i]
	c.inner[i] = value
	return maybe.Just(old)
}

// Swap exchanges the elements at indices i and j. Panics if either index is
// out of range.
func (c *Cell[T]) Swap(i, j int) {
	assertThat(i >= 0 && i < len(c.inner), "swap index out of bounds: %d with length %d", i, len(c.inner))
	assertThat(j >= 0 && j < len(c.inner), "swap index out of bounds: %d with length %d", j, len(c.inner))
	c.inner[i], c.inner[j] = c.inner[j], c.inner[i]
}

// Clear removes all elements, keeping the allocated storage.
func (c *Cell[T]) Clear() {
	clear(c.inner)
	c.inner = c.inner[:0]
}

// Truncate drops all elements beyond length n. A no-op if the cell already
// holds n elements or fewer. Panics if n is negative.
func (c *Cell[T]) Truncate(n int) {
	assertThat(n >= 0, "negative length: %d", n)
	if n >= len(c.inner) {
		return
	}
	clear(c.inner[n:])
	c.inner = c.inner[:n]
}

// Resize grows or shrinks the sequence to exactly n elements. New slots are
// set to fill. Panics if n is negative.
func (c *Cell[T]) Resize(n int, fill T) {
	assertThat(n >= 0, "negative length: %d", n)
	if n <= len(c.inner) {
		c.Truncate(n)
		return
	}
	c.inner = slices.Grow(c.inner, n-len(c.inner))
	for len(c.inner) < n {
		c.inner = append(c.inner, fill)
	}
}

// Fill overwrites every element with value. The length is unchanged.
func (c *Cell[T]) Fill(value T) {
	for i := range c.inner {
		c.inner[i] = value
	}
}

// Reverse reverses the sequence in place.
func (c *Cell[T]) Reverse() {
	slices.Reverse(c.inner)
}

// RotateLeft rotates the sequence in place so that the element at index k
// moves to the front. Panics if k > Len().
func (c *Cell[T]) RotateLeft(k int) {
	assertThat(k >= 0 && k <= len(c.inner), "rotation point out of bounds: %d with length %d", k, len(c.inner))
	slices.Reverse(c.inner[:k])
	slices.Reverse(c.inner[k:])
	slices.Reverse(c.inner)
}

// RotateRight rotates the sequence in place so that the last k elements
// move to the front. Panics if k > Len().
func (c *Cell[T]) RotateRight(k int) {
	assertThat(k >= 0 && k <= len(c.inner), "rotation point out of bounds: %d with length %d", k, len(c.inner))
	c.RotateLeft(len(c.inner) - k)
}

// Drain removes the elements in [i, j) and returns them in order. Panics if
// the range is invalid.
func (c *Cell[T]) Drain(i, j int) []T {
	assertThat(i >= 0 && i <= j && j <= len(c.inner), "drain range out of bounds: [%d,%d) with length %d", i, j, len(c.inner))
	tracer().Debugf("draining %d elements from cell of length %d", j-i, len(c.inner))
	removed := make([]T, j-i)
	copy(removed, c.inner[i:j])
	n := len(c.inner)
	copy(c.inner[i:], c.inner[j:])
	clear(c.inner[n-(j-i):])
	c.inner = c.inner[:n-(j-i)]
	return removed
}

// SplitOff moves the elements in [i, Len()) into a new cell, leaving this
// cell with the first i elements. Panics if i > Len().
func (c *Cell[T]) SplitOff(i int) *Cell[T] {
	assertThat(i >= 0 && i <= len(c.inner), "split point out of bounds: %d with length %d", i, len(c.inner))
	tail := make([]T, len(c.inner)-i)
	copy(tail, c.inner[i:])
	clear(c.inner[i:])
	c.inner = c.inner[:i]
	return From(tail)
}

// Take detaches and returns the inner sequence, leaving the cell empty.
// Ownership transfers to the caller; the cell no longer aliases the
// returned slice.
func (c *Cell[T]) Take() []T {
	tracer().Debugf("taking inner sequence of length %d out of cell", len(c.inner))
	inner := c.inner
	c.inner = nil
	return inner
}

// Grow reserves storage for at least n more elements without changing the
// length. Panics if n is negative.
func (c *Cell[T]) Grow(n int) {
	c.inner = slices.Grow(c.inner, n)
}

// Clip removes unused storage capacity.
func (c *Cell[T]) Clip() {
	c.inner = slices.Clip(c.inner)
}

// SortFunc sorts the sequence in place, ordered by the given less
// function. The sort is not stable.
func (c *Cell[T]) SortFunc(less func(a, b T) bool) {
	slices.SortFunc(c.inner, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("seqcell: "+msg, msgargs...)
		panic(msg)
	}
}
