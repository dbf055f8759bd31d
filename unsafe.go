package seqcell

// Escape hatches. These expose the inner storage without copying and are
// unsafe in the sense that the caller takes over the aliasing discipline
// the rest of the API enforces by construction. The shared obligation:
//
// A view returned by any Unsafe method is valid only until the next call
// on the same cell that can grow, shrink or move the storage (Push, Append,
// Insert, Remove, Pop, Drain, SplitOff, Resize, Take, Grow, Clip, …). Used
// after such a call, the view may observe stale storage that the cell has
// already abandoned — writes through it are silently lost and reads return
// outdated elements.

// UnsafeSlice returns the inner slice itself, aliasing the cell's storage.
// Elements read through it are not copies, and writes to it are writes into
// the cell.
//
// The no-structural-mutation obligation above applies. Note that the
// returned slice header is a snapshot: even in-bounds appends performed
// directly on the return value never reach the cell.
func (c *Cell[T]) UnsafeSlice() []T {
	return c.inner
}

// UnsafeMut returns a pointer to the inner slice header. The holder has
// exclusive raw access: it may reassign the slice, append to it, or reslice
// it, and the cell will observe the result.
//
// The obligation above applies, and more strictly: no other view — from
// UnsafeSlice, UnsafeAt or an earlier UnsafeMut — may be used while the
// returned pointer is in use.
func (c *Cell[T]) UnsafeMut() *[]T {
	return &c.inner
}

// UnsafeAt returns a pointer to the element at index i without copying it,
// or nil if i is out of bounds.
//
// The obligation above applies: any structural mutation can relocate all
// elements, after which the pointer still targets the abandoned storage.
func (c *Cell[T]) UnsafeAt(i int) *T {
	if i < 0 || i >= len(c.inner) {
		return nil
	}
	return &c.inner[i]
}
