/*
Package vector implements a mutable, contiguously stored dynamic array of float64 values.

A Vector owns a single buffer of slots. The number of slots is the vector's capacity,
the number of slots holding meaningful values is its size. Whenever an operation needs
more slots than are available, the buffer is replaced by a larger one, with the capacity
multiplied by a configurable growth factor (default 2.0). This gives amortized O(1)
appends; insertion and removal at the front or in the middle of the vector are O(n).

Ownership

A Vector is meant to have exactly one owner at a time. Copying is explicit (Clone,
CopyFrom) and always produces an independent buffer, sized to fit. Moving (Move,
MoveFrom) hands the buffer over to another Vector and leaves the source empty, without
any allocation. Release drops the buffer; it is safe to call it more than once.

Iterators and references

Iterators, element references (Ref) and views (Values) point into the vector's current
buffer. They must not be used after any operation which changes the size or the
capacity of the vector. This is not checked at runtime.

Vectors are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dynarray.vector'.
func tracer() tracing.Trace {
	return tracing.Select("dynarray.vector")
}
