/*
Package seqcell implements a growable sequence that may be mutated through
any shared handle to it.

A Cell[T] wraps exactly one inner slice of T. Several owners may hold the
same *Cell and each of them may append, assign and remove elements — there
is no distinguished mutable owner. This is sound because the safe API never
hands out a reference into the inner storage: reads copy values out, and
every mutating operation acquires the storage only for the duration of its
own call. Storage may therefore be reallocated at any time between calls
without invalidating anything a caller holds.

Operations returning elements signal absence with maybe.Maybe rather than
panicking; structural operations addressed by an index (Insert, Remove,
Drain, …) treat an out-of-range index as a programmer error and panic.

A small set of escape hatches (UnsafeSlice, UnsafeMut, UnsafeAt) exposes the
inner storage without copying. They put the caller on the hook for the
aliasing discipline the safe API enforces by construction: a view obtained
from them must not be used across any later call on the same cell that can
grow, shrink or move the storage. The Unsafe prefix keeps such call sites
greppable.

Cells are not safe for concurrent use. Sharing is a single-goroutine affair;
callers that need cross-goroutine access must synchronize externally.

Element values are duplicated by plain assignment. For element types that
contain pointers, slices or maps, the copy is shallow.

Status

Requires Go 1.22.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seqcell

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seqcell'.
func tracer() tracing.Trace {
	return tracing.Select("seqcell")
}
