package nostl

import (
	"iter"

	"go.uber.org/zap"
)

// Array is a fixed-length contiguous container. Its length N is chosen at
// construction and all N slots hold live elements until Release. The block
// is allocated once and never reallocated.
//
// Arrays of scalar types keep their block outside the Go heap and the
// garbage collector never frees it: call Release when done. Not
// goroutine-safe.
type Array[T any] struct {
	data  []T
	store storage[T]
	own   *owner
}

func newArray[T any](n int, zeroed bool, opts []Option) *Array[T] {
	assertCapacity(n)
	o := buildOptions(opts)
	a := &Array[T]{
		store: newStorage[T](o.alloc),
		own:   &owner{},
	}
	if zeroed {
		a.data = a.store.allocateZeroed(n)
	} else {
		a.data = a.store.allocate(n)
	}
	return a
}

// NewArray returns an array of n zero values.
func NewArray[T any](n int, opts ...Option) *Array[T] {
	return newArray[T](n, true, opts)
}

// NewArrayFilled returns an array of n copies of value.
func NewArrayFilled[T any](n int, value T, opts ...Option) *Array[T] {
	a := newArray[T](n, false, opts)
	a.store.fillSlots(a.data, value)
	return a
}

// NewArrayOf returns an array of n slots that takes ownership of values, in
// order. Slots past len(values) hold zero values. Panics with
// ErrSequenceTooLong if len(values) > n.
func NewArrayOf[T any](n int, values []T, opts ...Option) *Array[T] {
	if len(values) > n {
		assertf(ErrSequenceTooLong, "%d values for %d slots", len(values), n)
	}
	a := newArray[T](n, true, opts)
	a.store.moveSlots(a.data[:len(values)], values)
	return a
}

// ArrayFromSlice returns an array holding a copy of s, with N = len(s).
func ArrayFromSlice[T any](s []T, opts ...Option) *Array[T] {
	a := newArray[T](len(s), false, opts)
	a.store.copySlots(a.data, s)
	return a
}

func (a *Array[T]) sibling() *Array[T] {
	b := &Array[T]{
		store: a.store.fork(),
		own:   &owner{},
	}
	b.data = b.store.allocate(len(a.data))
	return b
}

// Clone returns an independent copy of a.
func (a *Array[T]) Clone() *Array[T] {
	b := a.sibling()
	b.store.copySlots(b.data, a.data)
	return b
}

// Move transfers every element of a into a new array of the same length.
// a keeps its slots, zeroed: it may be reassigned or released but its old
// contents are gone.
func (a *Array[T]) Move() *Array[T] {
	b := a.sibling()
	b.store.moveSlots(b.data, a.data)
	a.store.zeroSlots(a.data)
	a.own.invalidate()
	Logger().Debug("array moved", zap.Int("len", len(b.data)))
	return b
}

func (a *Array[T]) assertSameLen(n int) {
	if n != len(a.data) {
		assertf(ErrLengthMismatch, "length %d, other %d", len(a.data), n)
	}
}

// CopyFrom replaces every element of a with a copy of the element of other
// in the same slot. Panics with ErrLengthMismatch unless both lengths match.
// Returns a.
func (a *Array[T]) CopyFrom(other *Array[T]) *Array[T] {
	if a == other {
		return a
	}
	return a.AssignSlice(other.data)
}

// AssignSlice replaces every element of a with a copy of the matching
// element of s. Panics with ErrLengthMismatch unless len(s) == a.Len().
// Returns a.
func (a *Array[T]) AssignSlice(s []T) *Array[T] {
	a.assertSameLen(len(s))
	place := a.store.copySlots
	s, staged := a.store.stage(a.data, s)
	if staged {
		place = a.store.moveSlots
		defer a.store.free(s)
	}
	a.store.destroySlots(a.data)
	place(a.data, s)
	return a
}

// MoveFrom destroys every element of a and transfers src's elements in,
// leaving src zeroed as by Move. Panics with ErrLengthMismatch unless both
// lengths match. Returns a.
func (a *Array[T]) MoveFrom(src *Array[T]) *Array[T] {
	if a == src {
		return a
	}
	a.assertSameLen(len(src.data))
	a.store.destroySlots(a.data)
	a.store.moveSlots(a.data, src.data)
	src.store.zeroSlots(src.data)
	src.own.invalidate()
	return a
}

// Fill destroys every element and stores a copy of value in each slot.
func (a *Array[T]) Fill(value T) {
	a.store.destroySlots(a.data)
	a.store.fillSlots(a.data, value)
}

// ToSlice returns a copy of the elements in a new Go slice.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, len(a.data))
	if a.store.tr.clone {
		a.store.copySlots(out, a.data)
	} else {
		copy(out, a.data)
	}
	return out
}

// Release destroys every element and frees the block. The array is left
// with no slots; releasing again is a no-op.
func (a *Array[T]) Release() {
	if a.data == nil {
		return
	}
	a.store.destroySlots(a.data)
	old := a.data
	a.data = nil
	a.store.free(old)
	a.own.invalidate()
}

// Len returns N.
func (a *Array[T]) Len() int { return len(a.data) }

// IsEmpty reports whether N is 0.
func (a *Array[T]) IsEmpty() bool { return len(a.data) == 0 }

// Data returns the elements. The slice aliases the block and is invalidated
// by Release.
func (a *Array[T]) Data() []T { return a.data }

// At returns the element at i. Panics if i is out of range.
func (a *Array[T]) At(i int) T {
	assertIndex(i, len(a.data))
	return a.data[i]
}

// Ref returns a pointer to the element at i. Panics if i is out of range.
func (a *Array[T]) Ref(i int) *T {
	assertIndex(i, len(a.data))
	return &a.data[i]
}

// Set destroys the element at i and stores x in its place.
func (a *Array[T]) Set(i int, x T) {
	assertIndex(i, len(a.data))
	a.store.destroySlots(a.data[i : i+1])
	a.data[i] = x
}

// Front returns the element in slot 0.
func (a *Array[T]) Front() T { return a.At(0) }

// Back returns the element in slot N-1. For N == 0 it accesses slot 0,
// which panics.
func (a *Array[T]) Back() T {
	if len(a.data) == 0 {
		return a.At(0)
	}
	return a.At(len(a.data) - 1)
}

// Begin returns an iterator referencing slot 0.
func (a *Array[T]) Begin() Iterator[T] { return newIterator(a.own, a.data, 0) }

// End returns an iterator referencing one past slot N-1.
func (a *Array[T]) End() Iterator[T] { return newIterator(a.own, a.data, len(a.data)) }

// All returns an iterator over index-element pairs for use with range.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.data {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements for use with range.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.data {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// String renders the array as [e0, e1, ...].
func (a *Array[T]) String() string {
	return render(a.data, a.store.tr)
}
