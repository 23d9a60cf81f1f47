package nostl

import (
	"unsafe"
)

// Iterator is a random-access cursor over the slots of a Vector or Array.
// It does not own the memory it points into and carries no bounds: moving it
// before Begin or past End is legal, dereferencing it there is not.
//
// An iterator is invalidated by any operation that reallocates, shifts, moves
// or releases its container's storage. Dereferencing an invalidated iterator
// panics with ErrIteratorInvalidated.
//
// The zero Iterator is a null position.
type Iterator[T any] struct {
	own   *owner
	epoch uint64
	block []T
	pos   int
}

func newIterator[T any](own *owner, block []T, pos int) Iterator[T] {
	return Iterator[T]{own: own, epoch: own.epoch, block: block, pos: pos}
}

// Valid reports whether the iterator still refers to its container's
// current storage. It says nothing about bounds.
func (it Iterator[T]) Valid() bool {
	return it.own != nil && it.own.epoch == it.epoch
}

// Pos returns the slot index the iterator references.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Inc moves the iterator forward one position (prefix ++).
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++
	return it
}

// PostInc moves the iterator forward one position and returns its old value
// (postfix ++).
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++
	return old
}

// Dec moves the iterator backwards one position (prefix --).
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.pos--
	return it
}

// PostDec moves the iterator backwards one position and returns its old
// value (postfix --).
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.pos--
	return old
}

// AddAssign moves the iterator n positions; n may be negative (+=).
func (it *Iterator[T]) AddAssign(n int) *Iterator[T] {
	it.pos += n
	return it
}

// SubAssign moves the iterator back n positions; n may be negative (-=).
func (it *Iterator[T]) SubAssign(n int) *Iterator[T] {
	it.pos -= n
	return it
}

// Add returns an iterator n positions after it.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns an iterator n positions before it.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n
	return it
}

// Distance returns the number of positions from it to other. Only
// meaningful for iterators over the same storage.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return other.pos - it.pos
}

// Deref returns a pointer to the referenced element (* and ->).
func (it Iterator[T]) Deref() *T {
	return it.slot(it.pos)
}

// Index returns a pointer to the element i positions after the referenced
// one ([]).
func (it Iterator[T]) Index(i int) *T {
	return it.slot(it.pos + i)
}

// Get returns a copy of the referenced element.
func (it Iterator[T]) Get() T {
	return *it.Deref()
}

// Set overwrites the referenced element.
func (it Iterator[T]) Set(v T) {
	*it.Deref() = v
}

func (it Iterator[T]) slot(pos int) *T {
	if !it.Valid() {
		assertf(ErrIteratorInvalidated, "position %d", pos)
	}
	assertIndex(pos, len(it.block))
	return &it.block[pos]
}

// Comparisons order iterators by the address they reference, like raw
// pointers. Iterators over different containers compare without failing,
// but the result carries no meaning.

// Equal reports whether both iterators reference the same position (==).
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.compare(other) == 0 }

// NotEqual is the negation of Equal (!=).
func (it Iterator[T]) NotEqual(other Iterator[T]) bool { return it.compare(other) != 0 }

// Less reports whether it references an earlier position than other (<).
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.compare(other) < 0 }

// Greater reports whether it references a later position than other (>).
func (it Iterator[T]) Greater(other Iterator[T]) bool { return it.compare(other) > 0 }

// LessEqual is the <= comparison.
func (it Iterator[T]) LessEqual(other Iterator[T]) bool { return it.compare(other) <= 0 }

// GreaterEqual is the >= comparison.
func (it Iterator[T]) GreaterEqual(other Iterator[T]) bool { return it.compare(other) >= 0 }

func (it Iterator[T]) compare(other Iterator[T]) int {
	a, b := it.addr(), other.addr()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	// Zero-size elements share one address; fall back to positions.
	switch {
	case it.pos < other.pos:
		return -1
	case it.pos > other.pos:
		return 1
	}
	return 0
}

func (it Iterator[T]) addr() int64 {
	var zero T
	base := int64(uintptr(unsafe.Pointer(unsafe.SliceData(it.block))))
	return base + int64(it.pos)*int64(unsafe.Sizeof(zero))
}
