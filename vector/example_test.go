package vector_test

import (
	"fmt"

	"github.com/npillmayer/dynarray/vector"
)

func ExampleVector() {
	v := vector.New()
	_ = v.PushBack(10)
	_ = v.PushBack(20)
	_ = v.PushFront(5)
	fmt.Println(v)
	_ = v.PopBack()
	_ = v.PopFront()
	fmt.Println(v)
	// Output:
	// [ 5 10 20 ] (size = 3, capacity = 4)
	// [ 10 ] (size = 1, capacity = 4)
}

func ExampleVector_Begin() {
	v, _ := vector.FromSlice([]vector.Value{0, 1, 2, 3, 4})
	sum := 0.0
	for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
		sum += it.Value()
	}
	fmt.Println(sum)
	// Output: 10
}

func ExampleVector_Move() {
	v, _ := vector.FromSlice([]vector.Value{1, 2, 3})
	w := v.Move()
	fmt.Println(v)
	fmt.Println(w)
	// Output:
	// [ ] (size = 0, capacity = 0)
	// [ 1 2 3 ] (size = 3, capacity = 3)
}
