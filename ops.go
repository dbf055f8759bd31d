package seqcell

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Operations that need more of T than the container itself does. Methods
// cannot introduce extra type constraints, so these follow the slices
// package and take the cell as an argument.

// Equal reports whether two cells hold the same elements in the same order.
func Equal[T comparable](a, b *Cell[T]) bool {
	return slices.Equal(a.inner, b.inner)
}

// Contains reports whether the cell holds an element equal to v.
func Contains[T comparable](c *Cell[T], v T) bool {
	return slices.Contains(c.inner, v)
}

// StartsWith reports whether the cell's leading elements equal prefix.
func StartsWith[T comparable](c *Cell[T], prefix []T) bool {
	if len(prefix) > len(c.inner) {
		return false
	}
	return slices.Equal(c.inner[:len(prefix)], prefix)
}

// Dedup removes consecutive duplicate elements, keeping the first of each
// run.
func Dedup[T comparable](c *Cell[T]) {
	c.inner = slices.Compact(c.inner)
}

// Sort sorts the cell in place in ascending order.
func Sort[T constraints.Ordered](c *Cell[T]) {
	slices.Sort(c.inner)
}

// BinarySearch searches a sorted cell for v. It returns the position where
// v is found, or where it would appear in sort order, and whether it was
// found.
func BinarySearch[T constraints.Ordered](c *Cell[T], v T) (int, bool) {
	return slices.BinarySearch(c.inner, v)
}
