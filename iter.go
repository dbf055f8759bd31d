package seqcell

import (
	"github.com/npillmayer/seqcell/maybe"
)

// Iter walks a cell front to back, yielding a copy of each element. Bounds
// are re-checked on every step against the live length of the cell, so an
// iterator never dangles: if the cell shrinks mid-iteration the walk simply
// ends early, if it grows the walk picks up the new elements. Callers may
// therefore call mutation methods between steps.
type Iter[T any] struct {
	cell *Cell[T]
	inx  int
}

// Iter returns an iterator positioned before the first element.
func (c *Cell[T]) Iter() *Iter[T] {
	return &Iter[T]{cell: c}
}

// Next returns a copy of the next element, or Nothing when the walk has
// passed the current end of the cell.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	item := it.cell.Get(it.inx)
	it.inx++
	return item
}

// Each calls f with every remaining element of the walk, stopping early if
// f returns false.
func (it *Iter[T]) Each(f func(T) bool) {
	for {
		v, ok := it.Next().Unwrap()
		if !ok || !f(v) {
			return
		}
	}
}
