package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Value is the type of the elements of a Vector.
type Value = float64

// DefaultGrowthFactor is the factor capacity is multiplied with when a vector
// has to grow.
const DefaultGrowthFactor = 2.0

// NotFound is returned by Find if a value is not contained in a vector.
const NotFound = -1

var (
	// ErrAllocation is returned if a buffer of the requested size cannot be provided.
	ErrAllocation = errors.New("vector: allocation failure")
	// ErrEmpty is returned when removing a value from an empty vector.
	ErrEmpty = errors.New("vector: empty")
	// ErrIndexOutOfRange is returned by checked access to a position ≥ size.
	ErrIndexOutOfRange = errors.New("vector: index out of range")
	// ErrInvalidArgument flags arguments an operation cannot work with.
	ErrInvalidArgument = errors.New("vector: invalid argument")
)

// Vector is a dynamic array of float64 values. The zero value is an empty vector
// without any allocation, ready to use.
type Vector struct {
	data   []Value // owned buffer; len(data) is the capacity
	size   int     // number of valid values, data[:size]
	growth float64 // multiplicative growth factor
	limit  int     // max number of slots to allocate, 0 = no limit
}

// New creates an empty vector. No buffer is allocated.
func New(opts ...Option) *Vector {
	v := &Vector{growth: DefaultGrowthFactor}
	for _, option := range opts {
		option.config(v)
	}
	return v
}

// FromSlice creates a vector holding a copy of values. Size and capacity of the
// new vector will both be len(values).
func FromSlice(values []Value, opts ...Option) (*Vector, error) {
	v := New(opts...)
	buf, err := v.allocate(len(values))
	if err != nil {
		return nil, err
	}
	copy(buf, values)
	v.data, v.size = buf, len(values)
	return v, nil
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(*Vector)
}

// GrowthFactor is an option to set the factor which capacity is multiplied with
// whenever the vector has to grow. Factors which are not positive are replaced by
// DefaultGrowthFactor.
//
// Use it like this:
//
//     vec := vector.New(vector.GrowthFactor(1.5))
//
func GrowthFactor(f float64) Option {
	return Option{config: func(v *Vector) {
		if !(f > 0) { // catches NaN, too
			f = DefaultGrowthFactor
		}
		v.growth = f
	}}
}

// AllocationLimit is an option to restrict the number of slots a vector will ever
// allocate. Operations needing more slots fail with ErrAllocation.
// A limit ≤ 0 means no restriction beyond what the platform imposes.
func AllocationLimit(n int) Option {
	return Option{config: func(v *Vector) {
		if n < 0 {
			n = 0
		}
		v.limit = n
	}}
}

// --- Ownership -------------------------------------------------------------

// Clone creates a deep copy of v. The copy's capacity equals v's size, i.e. spare
// capacity is not copied.
func (v *Vector) Clone() (*Vector, error) {
	w := &Vector{growth: v.growth, limit: v.limit}
	if err := w.CopyFrom(v); err != nil {
		return nil, err
	}
	return w, nil
}

// CopyFrom replaces the contents of v by a copy of the values of other.
// v's capacity will equal other's size afterwards. Copying a vector onto itself
// does nothing. If the new buffer cannot be allocated, v is left unchanged.
func (v *Vector) CopyFrom(other *Vector) error {
	if v == other {
		return nil
	}
	if other == nil {
		return fmt.Errorf("%w: copy from nil vector", ErrInvalidArgument)
	}
	buf, err := v.allocate(other.size)
	if err != nil {
		return err
	}
	copy(buf, other.data[:other.size])
	v.Release()
	v.data, v.size = buf, other.size
	v.growth, v.limit = other.growth, other.limit
	return nil
}

// Move hands v's buffer over to a new vector, in O(1). v is left empty, without
// an allocated buffer.
func (v *Vector) Move() *Vector {
	w := &Vector{}
	w.MoveFrom(v)
	return w
}

// MoveFrom releases v's buffer and takes over the buffer of other, together with
// other's size, capacity and growth settings. other is left empty, without
// an allocated buffer. Moving a vector onto itself does nothing.
func (v *Vector) MoveFrom(other *Vector) {
	if v == other || other == nil {
		return
	}
	v.Release()
	v.data, v.size = other.data, other.size
	v.growth, v.limit = other.growth, other.limit
	other.data, other.size = nil, 0
}

// Release drops the buffer of v. v is empty afterwards and may be re-used.
// Releasing an empty or moved-from vector does nothing.
func (v *Vector) Release() {
	if v.data == nil {
		return
	}
	tracer().Debugf("releasing buffer of capacity %d", len(v.data))
	v.data, v.size = nil, 0
}

// --- Capacity --------------------------------------------------------------

// Size returns the number of values in v.
func (v *Vector) Size() int {
	return v.size
}

// Cap returns the number of slots allocated for v.
func (v *Vector) Cap() int {
	return len(v.data)
}

// GrowthFactor returns the factor which v's capacity is multiplied with when growing.
func (v *Vector) GrowthFactor() float64 {
	return v.factor()
}

// LoadFactor returns size/capacity, or 0 for a vector without capacity.
func (v *Vector) LoadFactor() float64 {
	if len(v.data) == 0 {
		return 0.0
	}
	return float64(v.size) / float64(len(v.data))
}

// Reserve makes sure v has room for at least minCapacity values. If v has to grow,
// the new capacity is the larger of minCapacity and the current capacity multiplied
// by the growth factor. All operations that add values grow v through Reserve.
//
// If the grown capacity cannot be allocated, Reserve falls back to exactly minCapacity.
// If that fails, too, ErrAllocation is returned and v is left unchanged.
func (v *Vector) Reserve(minCapacity int) error {
	if minCapacity <= len(v.data) {
		return nil
	}
	newCap := v.grownCapacity(minCapacity)
	err := v.realloc(newCap)
	if err != nil && newCap > minCapacity {
		tracer().Debugf("cannot grow to %d slots, trying %d", newCap, minCapacity)
		err = v.realloc(minCapacity)
	}
	return err
}

// ShrinkToFit reduces v's capacity to its size. A vector of size 0 ends up
// without a buffer.
func (v *Vector) ShrinkToFit() error {
	if len(v.data) <= v.size {
		return nil
	}
	return v.realloc(v.size)
}

// --- Mutation --------------------------------------------------------------

// PushBack appends value at the end of v. Amortized O(1).
func (v *Vector) PushBack(value Value) error {
	if err := v.ensureRoom(1); err != nil {
		return err
	}
	v.data[v.size] = value
	v.size++
	return nil
}

// PushFront inserts value in front of all other values of v. O(n).
func (v *Vector) PushFront(value Value) error {
	return v.Insert(value, 0)
}

// Insert puts value at position pos, moving values at pos and after one slot
// to the right. Positions beyond the end of v append value, negative positions
// count as 0.
func (v *Vector) Insert(value Value, pos int) error {
	pos = v.clampPos(pos)
	if err := v.ensureRoom(1); err != nil {
		return err
	}
	copy(v.data[pos+1:v.size+1], v.data[pos:v.size])
	v.data[pos] = value
	v.size++
	return nil
}

// InsertSlice puts all of values at position pos, in order. Values at pos and
// after are moved len(values) slots to the right. Positions are clamped as with Insert.
//
// values may be a view into v itself (see Values); it is copied before v is modified.
func (v *Vector) InsertSlice(values []Value, pos int) error {
	if len(values) == 0 {
		return nil
	}
	if overlaps(values, v.data) {
		tracer().Debugf("insertion of %d values aliases the vector's buffer, copying", len(values))
		values = append([]Value(nil), values...)
	}
	pos = v.clampPos(pos)
	n := len(values)
	if err := v.ensureRoom(n); err != nil {
		return err
	}
	copy(v.data[pos+n:v.size+n], v.data[pos:v.size])
	copy(v.data[pos:pos+n], values)
	v.size += n
	return nil
}

// InsertVector inserts all values of other at position pos of v.
// other may be v itself: the values are copied before v is modified.
func (v *Vector) InsertVector(other *Vector, pos int) error {
	if other == nil {
		return fmt.Errorf("%w: insert nil vector", ErrInvalidArgument)
	}
	return v.InsertSlice(other.data[:other.size], pos)
}

// PopBack removes the last value of v. Capacity remains unchanged.
// Returns ErrEmpty if v has no values.
func (v *Vector) PopBack() error {
	if v.size == 0 {
		return fmt.Errorf("%w: cannot pop back", ErrEmpty)
	}
	v.size--
	return nil
}

// PopFront removes the first value of v, moving all others one slot to the left.
// Returns ErrEmpty if v has no values.
func (v *Vector) PopFront() error {
	if v.size == 0 {
		return fmt.Errorf("%w: cannot pop front", ErrEmpty)
	}
	v.Erase(0, 1)
	return nil
}

// Erase removes count values, starting at position pos. Values following them
// are moved to the left. If pos is not a valid position, nothing happens. If there
// are fewer than count values starting at pos, all of them are removed.
func (v *Vector) Erase(pos, count int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= v.size || count <= 0 {
		return
	}
	if count > v.size-pos {
		count = v.size - pos
	}
	copy(v.data[pos:], v.data[pos+count:v.size])
	v.size -= count
}

// EraseOne removes the value at position pos, if pos is valid.
func (v *Vector) EraseOne(pos int) {
	v.Erase(pos, 1)
}

// EraseBetween removes the values at positions [begin…end).
// end is clamped to the size of v. If begin is not a valid position or
// begin ≥ end, nothing happens.
func (v *Vector) EraseBetween(begin, end int) {
	if begin < 0 {
		begin = 0
	}
	if begin >= v.size || begin >= end {
		return
	}
	if end > v.size {
		end = v.size
	}
	v.Erase(begin, end-begin)
}

// --- Access ----------------------------------------------------------------

// At returns the value at position i. i must be < Size(); this is not checked.
func (v *Vector) At(i int) Value {
	return v.data[i]
}

// Ref returns a reference to the slot at position i. i must be < Size(); this
// is not checked. The reference is invalid after v changes size or capacity.
func (v *Vector) Ref(i int) *Value {
	return &v.data[i]
}

// Set overwrites the value at position i. i must be < Size(); this is not checked.
func (v *Vector) Set(i int, value Value) {
	v.data[i] = value
}

// Get returns the value at position i, or ErrIndexOutOfRange if there is none.
func (v *Vector) Get(i int) (Value, error) {
	if i < 0 || i >= v.size {
		return 0, fmt.Errorf("%w: %d with size %d", ErrIndexOutOfRange, i, v.size)
	}
	return v.data[i], nil
}

// Find returns the first position holding value, or NotFound. O(n).
func (v *Vector) Find(value Value) int {
	for i := 0; i < v.size; i++ {
		if v.data[i] == value {
			return i
		}
	}
	return NotFound
}

// Values returns a view of the values of v. The view shares v's buffer and
// becomes invalid as soon as v changes size or capacity.
func (v *Vector) Values() []Value {
	return v.data[:v.size:v.size]
}

// String returns the values of v, followed by size and capacity, like
// "[ 5 10 20 ] (size = 3, capacity = 4)".
func (v *Vector) String() string {
	b := strings.Builder{}
	b.WriteString("[ ")
	for _, x := range v.data[:v.size] {
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		b.WriteByte(' ')
	}
	b.WriteString(fmt.Sprintf("] (size = %d, capacity = %d)", v.size, len(v.data)))
	return b.String()
}
