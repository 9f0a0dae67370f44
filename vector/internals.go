package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// slotSize is the number of bytes a single slot occupies.
const slotSize = int(unsafe.Sizeof(Value(0)))

// maxSlots is the largest number of slots we will ever ask the runtime for.
const maxSlots = math.MaxInt / slotSize

// slotLimit returns the maximum number of slots the vector may allocate.
func (v *Vector) slotLimit() int {
	if v.limit > 0 && v.limit < maxSlots {
		return v.limit
	}
	return maxSlots
}

// allocate creates a fresh buffer of n slots. A request for 0 slots yields no
// allocation at all.
func (v *Vector) allocate(n int) (buf []Value, err error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > v.slotLimit() {
		tracer().Debugf("refusing to allocate %d slots, limit is %d", n, v.slotLimit())
		return nil, fmt.Errorf("%w: cannot allocate %d slots", ErrAllocation, n)
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("allocation of %d slots failed: %v", n, r)
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return make([]Value, n), nil
}

// grownCapacity returns the capacity to grow to if at least need slots are required.
// The multiplicative part of the growth is capped by the allocation limit, need is not.
func (v *Vector) grownCapacity(need int) int {
	newCap := v.slotLimit()
	if grown := math.Floor(float64(len(v.data)) * v.factor()); grown < float64(newCap) {
		newCap = int(grown)
	}
	if newCap > need {
		return newCap
	}
	return need
}

// realloc moves the logical values into a fresh buffer of n slots, n ≥ size.
// On failure the vector is left unchanged.
func (v *Vector) realloc(n int) error {
	assertThat(n >= v.size, "realloc would drop values: %d < %d", n, v.size)
	buf, err := v.allocate(n)
	if err != nil {
		return err
	}
	copy(buf, v.data[:v.size])
	tracer().Debugf("reallocated buffer: capacity %d → %d, size %d", len(v.data), n, v.size)
	v.data = buf
	return nil
}

// ensureRoom makes sure there is space for n more values.
func (v *Vector) ensureRoom(n int) error {
	if n > maxSlots-v.size {
		return fmt.Errorf("%w: size overflow adding %d values to %d", ErrAllocation, n, v.size)
	}
	return v.Reserve(v.size + n)
}

func (v *Vector) factor() float64 {
	if v.growth > 0 {
		return v.growth
	}
	return DefaultGrowthFactor
}

// clampPos clamps an insertion position to [0…size].
func (v *Vector) clampPos(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > v.size {
		return v.size
	}
	return pos
}

// overlaps is a predicate: do the memory areas of a and b (up to their capacities)
// share at least one slot?
func overlaps(a, b []Value) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[:1][0]))
	bStart := uintptr(unsafe.Pointer(&b[:1][0]))
	aEnd := aStart + uintptr(cap(a)*slotSize)
	bEnd := bStart + uintptr(cap(b)*slotSize)
	return aStart < bEnd && bStart < aEnd
}

// sameBuffer is a predicate: do a and b start at the same slot of the same buffer?
func sameBuffer(a, b []Value) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}
	return &a[:1][0] == &b[:1][0]
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
