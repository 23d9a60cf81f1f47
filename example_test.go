package nostl_test

import (
	"fmt"

	"github.com/pavanmanishd/nostl"
)

// Example demonstrates basic vector usage
func Example() {
	v := nostl.New[int]()
	defer v.Release() // Always clean up

	for _, x := range []int{10, 20, 30, 40, 50} {
		v.PushBack(x)
	}
	fmt.Printf("%v len=%d cap=%d\n", v, v.Len(), v.Cap())

	// Erase shifts later elements down
	v.Erase(1)
	fmt.Println(v)

	// Output:
	// [10, 20, 30, 40, 50] len=5 cap=5
	// [10, 30, 40, 50]
}

// ExampleVector_Append demonstrates the += operator and string rendering
func ExampleVector_Append() {
	v := nostl.New[string]()
	defer v.Release()

	v.Append("alpha", "beta").Append("gamma")
	fmt.Println(v)

	// Output:
	// ["alpha", "beta", "gamma"]
}

// ExampleVector_Stats demonstrates inspecting the memory footprint
func ExampleVector_Stats() {
	v := nostl.NewOf([]int32{1, 2, 3}, nostl.WithInitialCapacity(8))
	defer v.Release()

	fmt.Println(v)
	fmt.Println(v.Stats())

	v.ShrinkToFit()
	fmt.Println(v.Stats().Unused())

	// Output:
	// [1, 2, 3]
	// len=3 elements, capacity=8 elements, elem_size=4 bytes
	// mem_usage=12 bytes, total_allocated_mem=32 bytes, unused_mem=20 bytes
	// 0
}

// ExampleVector_Move demonstrates ownership transfer
func ExampleVector_Move() {
	a := nostl.NewOf([]int{1, 2, 3})
	b := a.Move()
	defer b.Release()

	fmt.Println(a.Len(), a.Cap(), b)

	// Output:
	// 0 0 [1, 2, 3]
}

// ExampleNextCapacity shows the capacities a vector passes through
func ExampleNextCapacity() {
	var caps []int
	c := 0
	for range 8 {
		c = nostl.NextCapacity(c, nostl.GrowthNormal)
		caps = append(caps, c)
	}
	fmt.Println(caps)
	fmt.Println(nostl.NextCapacity(1000, nostl.GrowthNormal))
	fmt.Println(nostl.NextCapacity(100, nostl.GrowthRestrictive))

	// Output:
	// [1 2 3 5 8 12 18 27]
	// 1100
	// 110
}

// ExampleArray_Fill demonstrates a fixed-length array
func ExampleArray_Fill() {
	a := nostl.NewArrayOf(4, []float64{1, 2})
	defer a.Release()
	fmt.Println(a)

	a.Fill(0.5)
	fmt.Println(a, a.Len())

	// Output:
	// [1, 2, 0, 0]
	// [0.5, 0.5, 0.5, 0.5] 4
}

// ExampleIterator demonstrates pointer-style traversal
func ExampleIterator() {
	v := nostl.NewOf([]int{1, 2, 3})
	defer v.Release()

	for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
		*it.Deref() *= 10
	}
	fmt.Println(v)

	last := v.End().Sub(1)
	fmt.Println(last.Get(), v.Begin().Distance(v.End()))

	// Output:
	// [10, 20, 30]
	// 30 3
}

type conn struct{ name string }

func (c *conn) Destroy() { fmt.Println("closing", c.name) }

// Example_destroyer demonstrates element cleanup hooks
func Example_destroyer() {
	v := nostl.New[conn]()
	v.Append(conn{"db"}, conn{"cache"}, conn{"queue"})

	v.Erase(1)
	v.Release()

	// Output:
	// closing cache
	// closing db
	// closing queue
}

// ExampleEqual compares a vector with an array
func ExampleEqual() {
	v := nostl.NewOf([]int{1, 2, 3})
	defer v.Release()
	a := nostl.NewArrayOf(3, []int{1, 2, 3})
	defer a.Release()

	fmt.Println(nostl.Equal[int](v, a))
	v.PushBack(4)
	fmt.Println(nostl.Equal[int](v, a), nostl.Compare[int](v, a))

	// Output:
	// true
	// false 1
}
