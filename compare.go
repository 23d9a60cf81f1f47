package nostl

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sequence is implemented by Vector and Array.
type Sequence[T any] interface {
	Data() []T
}

// Equal reports whether a and b hold the same elements in the same order.
// A Vector and an Array may be compared with each other.
func Equal[T comparable](a, b Sequence[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a Sequence[T], b Sequence[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically. The result is 0 if a == b, -1
// if a < b, and +1 if a > b.
func Compare[T constraints.Ordered](a, b Sequence[T]) int {
	return slices.Compare(a.Data(), b.Data())
}
