package unittest

import (
	"github.com/pavanmanishd/nostl"
)

func registerArrayTests(r *Registry) {
	for _, t := range []Test{
		{Name: "constructors", Desc: "Tests constructors and assignment operations.", Run: arrayConstructors},
		{Name: "fill", Desc: "Tests filling every slot with one value.", Run: arrayFill},
		{Name: "compare", Desc: "Tests equality and ordering against arrays and vectors.", Run: arrayCompare},
	} {
		t.Container = "array"
		r.Register(t)
	}
}

func arrayConstructors(env Env) int {
	c := newChecker(env)

	c.printf("constructing base object...\n")
	base := nostl.NewArrayOf(10, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"})
	defer base.Release()
	c.printf("base: %s\n", base)
	c.expectString(base, digitsRendered)

	c.separator()
	c.printf("constructing partial from 3 values...\n")
	partial := nostl.NewArrayOf(5, []int{1, 2, 3})
	defer partial.Release()
	c.printf("partial: %s\n", partial)
	c.expectString(partial, "[1, 2, 3, 0, 0]")

	c.separator()
	c.printf("copying base into copy_constructed...\n")
	copyConstructed := base.Clone()
	defer copyConstructed.Release()
	c.printf("copy_constructed: %s\n", copyConstructed)
	c.expectString(copyConstructed, digitsRendered)

	c.separator()
	c.printf("moving copy_constructed into move_constructed...\n")
	moveConstructed := copyConstructed.Move()
	defer moveConstructed.Release()
	c.printf("copy_constructed: %s\n", copyConstructed)
	c.printf("move_constructed: %s\n", moveConstructed)
	c.expectString(moveConstructed, digitsRendered)
	c.expectString(copyConstructed, `["", "", "", "", "", "", "", "", "", ""]`)

	c.separator()
	c.printf("copying base into copy_assigned...\n")
	copyAssigned := nostl.NewArray[string](10)
	defer copyAssigned.Release()
	copyAssigned.CopyFrom(base)
	c.printf("copy_assigned: %s\n", copyAssigned)
	c.expectString(copyAssigned, digitsRendered)

	c.separator()
	c.printf("moving copy_assigned into move_assigned...\n")
	moveAssigned := nostl.NewArray[string](10)
	defer moveAssigned.Release()
	moveAssigned.MoveFrom(copyAssigned)
	c.printf("move_assigned: %s\n", moveAssigned)
	c.expectString(moveAssigned, digitsRendered)

	return c.status()
}

func arrayFill(env Env) int {
	c := newChecker(env)

	for _, n := range []int{0, 1, 8} {
		a := nostl.NewArrayFilled(n, 1.5)
		c.printf("N=%d: %s\n", n, a)
		a.Fill(-2.25)
		c.printf("N=%d after fill: %s\n", n, a)
		for v := range a.Values() {
			c.expect(v == -2.25, "N=%d: slot holds %v after fill", n, v)
		}
		c.expect(a.Len() == n, "N=%d: Len() = %d", n, a.Len())
		a.Release()
	}

	return c.status()
}

func arrayCompare(env Env) int {
	c := newChecker(env)

	a1 := nostl.NewArrayOf(4, []int{1, 2, 3, 4})
	defer a1.Release()
	a2 := a1.Clone()
	defer a2.Release()
	v := nostl.NewOf([]int{1, 2, 3, 4}, env.Opts...)
	defer v.Release()

	c.printf("a1: %s\na2: %s\nv: %s\n", a1, a2, v)
	c.printf("a1 == a2: %t\n", nostl.Equal[int](a1, a2))
	c.printf("a1 == v: %t\n", nostl.Equal[int](a1, v))
	c.expect(nostl.Equal[int](a1, a2), "a1 and a2 should match")
	c.expect(nostl.Equal[int](a1, v), "a1 and v should match")

	a2.Set(3, 5)
	c.separator()
	c.printf("a2: %s\n", a2)
	cmp := nostl.Compare[int](a1, a2)
	c.printf("compare(a1, a2) = %d\n", cmp)
	c.expect(cmp < 0, "a1 should order before a2")

	return c.status()
}
