package nostl

import (
	"iter"

	"go.uber.org/zap"
)

// Vector is a dynamically resizable, contiguous container. Slots [0, Len())
// hold live elements; slots [Len(), Cap()) are raw memory.
//
// A Vector exclusively owns its block: Clone duplicates it and Move transfers
// it, leaving the source empty. Copying the Vector struct itself is not
// supported. Vectors of scalar types (see IsScalar) keep their block outside
// the Go heap and the garbage collector never frees it: call Release when
// done. Not goroutine-safe.
type Vector[T any] struct {
	data    []T // the block; len(data) == capacity
	size    int
	policy  GrowthPolicy
	initCap int

	store storage[T]
	own   *owner
}

func newVector[T any](o options) *Vector[T] {
	v := &Vector[T]{
		policy:  o.policy,
		initCap: o.initialCapacity,
		store:   newStorage[T](o.alloc),
		own:     &owner{},
	}
	return v
}

// New returns an empty vector with the initial capacity preallocated.
func New[T any](opts ...Option) *Vector[T] {
	v := newVector[T](buildOptions(opts))
	v.Resize(v.initCap)
	return v
}

// NewFilled returns a vector holding count copies of value. Capacity is the
// larger of count and the initial capacity.
func NewFilled[T any](count int, value T, opts ...Option) *Vector[T] {
	assertCapacity(count)
	v := newVector[T](buildOptions(opts))
	v.Resize(max(count, v.initCap))
	v.store.fillSlots(v.data[:count], value)
	v.size = count
	return v
}

// NewOf returns a vector that takes ownership of values, in order. Capacity
// is the larger of len(values) and the initial capacity.
func NewOf[T any](values []T, opts ...Option) *Vector[T] {
	v := newVector[T](buildOptions(opts))
	v.Resize(max(len(values), v.initCap))
	v.store.moveSlots(v.data[:len(values)], values)
	v.size = len(values)
	return v
}

// FromSlice returns a vector holding a copy of s with capacity len(s).
func FromSlice[T any](s []T, opts ...Option) *Vector[T] {
	v := newVector[T](buildOptions(opts))
	v.Resize(len(s))
	v.store.copySlots(v.data, s)
	v.size = len(s)
	return v
}

// Clone returns an independent copy of v with capacity v.Len().
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{
		policy:  v.policy,
		initCap: v.initCap,
		store:   v.store.fork(),
		own:     &owner{},
	}
	c.Resize(v.size)
	c.store.copySlots(c.data, v.data[:v.size])
	c.size = v.size
	return c
}

// CopyFrom replaces the contents of v with a copy of other's. The current
// block is reused when large enough. Returns v.
func (v *Vector[T]) CopyFrom(other *Vector[T]) *Vector[T] {
	if v == other {
		return v
	}
	return v.assign(other.data[:other.size])
}

// AssignSlice replaces the contents of v with a copy of s. Returns v.
func (v *Vector[T]) AssignSlice(s []T) *Vector[T] {
	return v.assign(s)
}

func (v *Vector[T]) assign(src []T) *Vector[T] {
	place := v.store.copySlots
	src, staged := v.store.stage(v.data, src)
	if staged {
		place = v.store.moveSlots
		defer v.store.free(src)
	}
	v.Clear()
	if len(v.data) < len(src) {
		v.Resize(len(src))
	}
	place(v.data, src)
	v.size = len(src)
	return v
}

// Move transfers v's block, length, capacity and growth policy to a new
// vector in O(1). v is left empty with no block: it may be released or
// reassigned, but must not be indexed or iterated.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{
		data:    v.data,
		size:    v.size,
		policy:  v.policy,
		initCap: v.initCap,
		store:   v.store.fork(),
		own:     &owner{},
	}
	v.store.handOver(&dst.store)

	v.data, v.size = nil, 0
	v.own.invalidate()
	Logger().Debug("vector moved", zap.Int("size", dst.size), zap.Int("capacity", len(dst.data)))
	return dst
}

// MoveFrom destroys v's elements, frees its block and takes over src's
// block, length, capacity and growth policy. src is left empty as by Move.
// Returns v.
func (v *Vector[T]) MoveFrom(src *Vector[T]) *Vector[T] {
	if v == src {
		return v
	}
	v.Release()
	v.data, v.size, v.policy, v.initCap = src.data, src.size, src.policy, src.initCap
	src.store.handOver(&v.store)

	src.data, src.size = nil, 0
	src.own.invalidate()
	return v
}

// ToSlice returns a copy of the live elements in a new Go slice.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.size)
	if v.store.tr.clone {
		v.store.copySlots(out, v.data[:v.size])
	} else {
		copy(out, v.data[:v.size])
	}
	return out
}

// Release destroys every live element and frees the block exactly once. The
// vector is left empty with no block; releasing again is a no-op.
func (v *Vector[T]) Release() {
	if v.data == nil {
		v.size = 0
		return
	}
	v.store.destroySlots(v.data[:v.size])
	old := v.data
	v.data, v.size = nil, 0
	v.store.free(old)
	v.own.invalidate()
	Logger().Debug("vector released", zap.Int("capacity", len(old)))
}

// Clear destroys every live element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.store.destroySlots(v.data[:v.size])
	v.size = 0
	v.own.invalidate()
}

// Resize reallocates the block to exactly newCap slots, relocating live
// elements into it and freeing the old block. Elements at or beyond newCap
// are destroyed and the length truncated. A full relocation happens even
// when newCap equals the current capacity.
func (v *Vector[T]) Resize(newCap int) {
	assertCapacity(newCap)

	block := v.store.allocate(newCap)
	kept := min(v.size, newCap)
	v.store.moveSlots(block[:kept], v.data[:kept])
	v.store.destroySlots(v.data[kept:v.size])

	old := v.data
	v.data, v.size = block, kept
	v.store.free(old)
	v.own.invalidate()

	Logger().Debug("vector reallocated",
		zap.Int("old_capacity", len(old)),
		zap.Int("new_capacity", newCap),
		zap.Int("size", kept))
}

// ShrinkToFit reallocates the block to exactly Len() slots.
func (v *Vector[T]) ShrinkToFit() {
	v.Resize(v.size)
}

// reserveOne grows the block by the growth policy when it is full.
func (v *Vector[T]) reserveOne() {
	if v.size == len(v.data) {
		v.Resize(NextCapacity(len(v.data), v.policy))
	}
}

// PushBack moves x into a new last slot, growing the block first when full.
// Returns v.
func (v *Vector[T]) PushBack(x T) *Vector[T] {
	v.reserveOne()
	v.data[v.size] = x
	v.size++
	return v
}

// PushBackCopy appends a copy of x, made with Clone when T is a Cloner.
// Returns v.
func (v *Vector[T]) PushBackCopy(x T) *Vector[T] {
	if v.store.tr.clone {
		x = cloneValue(x)
	}
	return v.PushBack(x)
}

// EmplaceBack constructs a new last element in place: construct receives a
// pointer to the zeroed slot. Returns v.
func (v *Vector[T]) EmplaceBack(construct func(*T)) *Vector[T] {
	v.reserveOne()
	slot := &v.data[v.size]
	var zero T
	*slot = zero
	construct(slot)
	v.size++
	return v
}

// Append pushes every value in order (the += operator). Returns v.
func (v *Vector[T]) Append(values ...T) *Vector[T] {
	for _, x := range values {
		v.PushBack(x)
	}
	return v
}

// PopBack destroys the last element. It is a no-op on an empty vector and
// never reduces capacity.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.store.destroySlots(v.data[v.size : v.size+1])
}

// Erase destroys the element at index and shifts every later element down
// one slot. Runs in O(Len()-index). Panics if index is out of range.
func (v *Vector[T]) Erase(index int) {
	assertIndex(index, v.size)
	v.store.destroySlots(v.data[index : index+1])
	v.store.moveSlots(v.data[index:v.size-1], v.data[index+1:v.size])
	// The last slot now duplicates its neighbour; drop it without destroying.
	v.size--
	v.store.dropHusks(v.data[v.size : v.size+1])
	v.own.invalidate()
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.data) }

// MemoryUsed returns the bytes occupied by live elements.
func (v *Vector[T]) MemoryUsed() int { return v.store.tr.size * v.size }

// MemoryAllocated returns the bytes allocated for the block.
func (v *Vector[T]) MemoryAllocated() int { return v.store.tr.size * len(v.data) }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// GrowthPolicy returns the expansion policy.
func (v *Vector[T]) GrowthPolicy() GrowthPolicy { return v.policy }

// SetGrowthPolicy changes the expansion policy for future growth.
func (v *Vector[T]) SetGrowthPolicy(p GrowthPolicy) { v.policy = p }

// Data returns the live elements. The slice aliases the block: it is
// invalidated by any reallocation and by Release.
func (v *Vector[T]) Data() []T { return v.data[:v.size:v.size] }

// At returns the element at i. Panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	assertIndex(i, v.size)
	return v.data[i]
}

// Ref returns a pointer to the element at i. Panics if i is out of range.
func (v *Vector[T]) Ref(i int) *T {
	assertIndex(i, v.size)
	return &v.data[i]
}

// Set destroys the element at i and stores x in its place.
func (v *Vector[T]) Set(i int, x T) {
	assertIndex(i, v.size)
	v.store.destroySlots(v.data[i : i+1])
	v.data[i] = x
}

// Front returns the first element.
func (v *Vector[T]) Front() T { return v.At(0) }

// Back returns the last element. On an empty vector it accesses slot 0,
// which panics.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		return v.At(0)
	}
	return v.At(v.size - 1)
}

// Begin returns an iterator referencing the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return newIterator(v.own, v.data, 0)
}

// End returns an iterator referencing one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return newIterator(v.own, v.data, v.size)
}

// All returns an iterator over index-element pairs for use with range.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements for use with range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// String renders the vector as [e0, e1, ...].
func (v *Vector[T]) String() string {
	return render(v.data[:v.size], v.store.tr)
}

// Stats returns the vector's memory footprint.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:             v.size,
		Cap:             len(v.data),
		ElemSize:        v.store.tr.size,
		MemoryUsed:      v.MemoryUsed(),
		MemoryAllocated: v.MemoryAllocated(),
	}
}
