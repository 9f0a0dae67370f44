package vector

// Iterator is a forward iterator over the values of a vector. It refers to a
// position within the vector's buffer at the time the iterator was created.
//
// Iterators must not be used after the vector has changed its size or capacity.
// Clients should call Begin and End again after modifying the vector.
//
//     for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
//         sum += it.Value()
//     }
//
type Iterator struct {
	buf []Value
	pos int
}

// Begin returns an iterator pointing to the first value of v.
func (v *Vector) Begin() Iterator {
	return Iterator{buf: v.data, pos: 0}
}

// End returns an iterator pointing one past the last value of v.
func (v *Vector) End() Iterator {
	return Iterator{buf: v.data, pos: v.size}
}

// Value returns the value the iterator points to.
func (it Iterator) Value() Value {
	return it.buf[it.pos]
}

// Ref returns a reference to the slot the iterator points to.
func (it Iterator) Ref() *Value {
	return &it.buf[it.pos]
}

// Index returns the position of the iterator.
func (it Iterator) Index() int {
	return it.pos
}

// Next advances the iterator and returns the advanced iterator.
func (it *Iterator) Next() Iterator {
	it.pos++
	return *it
}

// PostNext advances the iterator and returns a copy of it from before the advance.
func (it *Iterator) PostNext() Iterator {
	prev := *it
	it.pos++
	return prev
}

// Equal is a predicate: do it and other point to the same slot of the same buffer?
func (it Iterator) Equal(other Iterator) bool {
	return it.pos == other.pos && sameBuffer(it.buf, other.buf)
}
