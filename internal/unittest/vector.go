package unittest

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/pavanmanishd/nostl"
)

func registerVectorTests(r *Registry) {
	for _, t := range []Test{
		{Name: "constructors", Desc: "Tests constructors and assignment operations.", Run: vectorConstructors},
		{Name: "slice-constructors", Desc: "Tests construction from and copy assignment of a Go slice.", Run: vectorSliceConstructors},
		{Name: "compare", Desc: "Tests equality and inequality.", Run: vectorCompare},
		{Name: "growth", Desc: "Tests capacity growth under both growth policies.", Run: vectorGrowth},
		{Name: "erase", Desc: "Tests erase, pop_back and clear.", Run: vectorErase},
		{Name: "stats", Desc: "Prints the memory footprint of a vector as it grows and shrinks.", Run: vectorStats},
	} {
		t.Container = "vector"
		r.Register(t)
	}
}

var digits = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

const digitsRendered = `["0", "1", "2", "3", "4", "5", "6", "7", "8", "9"]`

func vectorConstructors(env Env) int {
	c := newChecker(env)
	opts := append(slices.Clone(env.Opts), nostl.WithInitialCapacity(10))

	c.printf("constructing base object...\n")
	base := nostl.NewOf(slices.Clone(digits), opts...)
	defer base.Release()
	c.printf("base: %s\n", base)
	c.expectString(base, digitsRendered)

	c.separator()
	c.printf("copying base into copy_constructed...\n")
	copyConstructed := base.Clone()
	defer copyConstructed.Release()
	c.printf("base: %s\n", base)
	c.printf("copy_constructed: %s\n", copyConstructed)
	c.expectString(copyConstructed, digitsRendered)

	c.separator()
	c.printf("moving copy_constructed into move_constructed...\n")
	moveConstructed := copyConstructed.Move()
	defer moveConstructed.Release()
	c.printf("copy_constructed: %s\n", copyConstructed)
	c.printf("move_constructed: %s\n", moveConstructed)
	c.expectString(copyConstructed, "[]")
	c.expectString(moveConstructed, digitsRendered)

	c.separator()
	c.printf("copying base into copy_assigned...\n")
	copyAssigned := nostl.New[string](opts...)
	defer copyAssigned.Release()
	copyAssigned.CopyFrom(base)
	c.printf("base: %s\n", base)
	c.printf("copy_assigned: %s\n", copyAssigned)
	c.expectString(copyAssigned, digitsRendered)

	c.separator()
	c.printf("moving copy_assigned into move_assigned...\n")
	moveAssigned := nostl.New[string](opts...)
	defer moveAssigned.Release()
	moveAssigned.MoveFrom(copyAssigned)
	c.printf("copy_assigned: %s\n", copyAssigned)
	c.printf("move_assigned: %s\n", moveAssigned)
	c.expectString(copyAssigned, "[]")
	c.expectString(moveAssigned, digitsRendered)

	return c.status()
}

func vectorSliceConstructors(env Env) int {
	c := newChecker(env)

	c.printf("constructing base slice...\n")
	base := slices.Clone(digits)
	c.printf("base: %q\n", base)

	c.separator()
	c.printf("copying base into copy_constructed...\n")
	copyConstructed := nostl.FromSlice(base, env.Opts...)
	defer copyConstructed.Release()
	c.printf("copy_constructed: %s\n", copyConstructed)
	c.expectString(copyConstructed, digitsRendered)

	c.separator()
	c.printf("copying base into copy_assigned...\n")
	copyAssigned := nostl.New[string](env.Opts...)
	defer copyAssigned.Release()
	copyAssigned.AssignSlice(base)
	base[0] = "changed"
	c.printf("base: %q\n", base)
	c.printf("copy_assigned: %s\n", copyAssigned)
	c.expectString(copyAssigned, digitsRendered)

	c.separator()
	c.printf("exporting copy_assigned to a slice...\n")
	out := copyAssigned.ToSlice()
	c.printf("exported: %q\n", out)
	c.expect(len(out) == copyAssigned.Len(), "exported %d elements, want %d", len(out), copyAssigned.Len())

	return c.status()
}

func vectorCompare(env Env) int {
	c := newChecker(env)

	v1 := nostl.NewOf([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, env.Opts...)
	defer v1.Release()
	v2 := v1.Clone()
	defer v2.Release()
	c.printf("v1: %s\n", v1)
	c.printf("v2: %s\n", v2)
	match := nostl.Equal[int](v1, v2)
	c.printf("comparing v1 and v2: match=%t\n", match)
	c.expect(match, "v1 and v2 should match")

	// v3 is v1 reversed, built by walking back from End.
	v3 := nostl.New[int](env.Opts...)
	defer v3.Release()
	for it := v1.End(); it.NotEqual(v1.Begin()); it.Dec() {
		v3.Append(it.Sub(1).Get())
	}
	c.separator()
	c.printf("v1: %s\n", v1)
	c.printf("v3: %s\n", v3)
	match = nostl.Equal[int](v3, v1)
	c.printf("comparing v1 and v3: match=%t\n", match)
	c.expect(!match, "v1 and v3 should differ")
	c.expectString(v3, "[9, 8, 7, 6, 5, 4, 3, 2, 1, 0]")

	return c.status()
}

func vectorGrowth(env Env) int {
	c := newChecker(env)

	for _, policy := range []nostl.GrowthPolicy{nostl.GrowthNormal, nostl.GrowthRestrictive} {
		opts := append(slices.Clone(env.Opts), nostl.WithGrowthPolicy(policy))
		v := nostl.New[int64](opts...)
		c.printf("growth policy %s, initial capacity %d\n", policy, v.Cap())

		last := v.Cap()
		for i := range int64(2000) {
			v.PushBack(i)
			if v.Cap() != last {
				c.expect(v.Cap() == nostl.NextCapacity(last, policy),
					"%s growth from %d to %d", policy, last, v.Cap())
				c.printf("  len=%d: capacity %d -> %d\n", v.Len(), last, v.Cap())
				last = v.Cap()
			}
		}
		for i := range v.Len() {
			if v.At(i) != int64(i) {
				c.expect(false, "element %d = %d after growth", i, v.At(i))
				break
			}
		}
		v.Release()
		c.separator()
	}

	return c.status()
}

func vectorErase(env Env) int {
	c := newChecker(env)

	v := nostl.NewOf([]int{10, 20, 30, 40, 50}, env.Opts...)
	defer v.Release()
	c.printf("v: %s\n", v)

	c.printf("erasing index 1...\n")
	v.Erase(1)
	c.printf("v: %s\n", v)
	c.expectString(v, "[10, 30, 40, 50]")

	c.printf("erasing last index...\n")
	v.Erase(v.Len() - 1)
	c.printf("v: %s\n", v)
	c.expectString(v, "[10, 30, 40]")

	c.printf("popping back...\n")
	v.PopBack()
	c.printf("v: %s\n", v)
	c.expectString(v, "[10, 30]")

	capacity := v.Cap()
	c.printf("clearing...\n")
	v.Clear()
	c.printf("v: %s (capacity %d)\n", v, v.Cap())
	c.expect(v.IsEmpty(), "vector not empty after clear")
	c.expect(v.Cap() == capacity, "clear changed capacity %d -> %d", capacity, v.Cap())

	return c.status()
}

func vectorStats(env Env) int {
	c := newChecker(env)

	v := nostl.New[int32](env.Opts...)
	defer v.Release()
	printStats := func() {
		c.printf("%s\n", v)
		for _, line := range strings.Split(v.Stats().String(), "\n") {
			c.printf("  %s\n", line)
		}
	}

	printStats()
	for i := range int32(10) {
		v.PushBack(i * i)
	}
	printStats()
	v.ShrinkToFit()
	printStats()

	s := v.Stats()
	c.expect(s.Unused() == 0, "unused memory after shrink_to_fit = %d", s.Unused())
	c.expect(s.MemoryUsed == 10*4, "mem_usage = %d, want 40", s.MemoryUsed)

	return c.status()
}
