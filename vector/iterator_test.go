package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorSum(t *testing.T) {
	v := New()
	for i := 0; i < 5; i++ {
		require.NoError(t, v.PushBack(Value(i)))
	}
	sum := 0.0
	for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
		sum += it.Value()
	}
	assert.Equal(t, 0.0+1+2+3+4, sum)
}

func TestIteratorEmpty(t *testing.T) {
	v := New()
	assert.True(t, v.Begin().Equal(v.End()), "expected begin = end for empty vector")
	require.NoError(t, v.Reserve(4))
	assert.True(t, v.Begin().Equal(v.End()), "expected begin = end for vector without values")
}

func TestIteratorIncrement(t *testing.T) {
	v, _ := FromSlice([]Value{1, 2, 3})
	it := v.Begin()
	prev := it.PostNext()
	assert.Equal(t, 1.0, prev.Value())
	assert.Equal(t, 2.0, it.Value())
	next := it.Next()
	assert.Equal(t, 3.0, next.Value())
	assert.True(t, next.Equal(it))
	assert.Equal(t, 2, it.Index())
	it.Next()
	assert.True(t, it.Equal(v.End()))
}

func TestIteratorRef(t *testing.T) {
	v, _ := FromSlice([]Value{1, 2, 3})
	for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
		*it.Ref() *= 10
	}
	assert.Equal(t, []Value{10, 20, 30}, v.Values())
}

func TestIteratorIdentity(t *testing.T) {
	v, _ := FromSlice([]Value{1, 2, 3})
	w, _ := FromSlice([]Value{1, 2, 3})
	assert.False(t, v.Begin().Equal(w.Begin()), "iterators into different buffers must differ")
	assert.True(t, v.Begin().Equal(v.Begin()))
	assert.False(t, v.Begin().Equal(v.End()))
}

func TestIteratorRestartAfterMutation(t *testing.T) {
	v, _ := FromSlice([]Value{1, 2})
	old := v.Begin()
	require.NoError(t, v.PushBack(3)) // reallocates
	assert.False(t, old.Equal(v.Begin()), "iterator from before reallocation refers to the old buffer")
	n := 0
	for it := v.Begin(); !it.Equal(v.End()); it.Next() {
		n++
	}
	assert.Equal(t, 3, n)
}
