package nostl

import (
	"unsafe"

	"github.com/pavanmanishd/nostl/rawmem"
)

// owner is the identity a container shares with its iterators. The epoch is
// bumped whenever the container reallocates, shifts, moves or releases its
// storage, which invalidates every iterator taken before.
type owner struct {
	epoch uint64
}

func (o *owner) invalidate() {
	o.epoch++
}

// storage separates acquiring slots from constructing elements in them.
// Scalar element types live in manual memory and are relocated with
// memmove; everything else lives on the Go heap and is handled one element
// at a time so that Cloner and Destroyer hooks run.
//
// Manual blocks are only returned to the allocator by an explicit free: slices
// and iterators handed out by a container may alias the block after the
// container itself is no longer referenced.
type storage[T any] struct {
	tr    *traits
	alloc rawmem.Allocator // nil: Go heap
}

func newStorage[T any](alloc rawmem.Allocator) storage[T] {
	s := storage[T]{tr: traitsOf[T]()}
	if s.tr.scalar && s.tr.size > 0 {
		if alloc == nil {
			alloc = rawmem.Default
		}
		s.alloc = alloc
	}
	return s
}

// fork returns an empty storage with the same placement strategy.
func (s storage[T]) fork() storage[T] {
	return storage[T]{tr: s.tr, alloc: s.alloc}
}

// allocate returns n raw slots. Manual slots hold garbage until written.
func (s storage[T]) allocate(n int) []T {
	if n == 0 {
		return nil
	}
	if s.alloc != nil {
		return rawmem.AllocSlice[T](s.alloc, n)
	}
	return make([]T, n)
}

// allocateZeroed returns n value-initialized slots.
func (s storage[T]) allocateZeroed(n int) []T {
	if n == 0 {
		return nil
	}
	if s.alloc != nil {
		return rawmem.AllocSliceZeroed[T](s.alloc, n)
	}
	return make([]T, n)
}

// free returns a block obtained from allocate. No element hooks run.
func (s storage[T]) free(block []T) {
	if s.alloc != nil && cap(block) > 0 {
		rawmem.FreeSlice(s.alloc, block)
	}
}

// handOver gives dst the allocator the block it takes over must be
// returned to.
func (s storage[T]) handOver(dst *storage[T]) {
	dst.alloc = s.alloc
}

// stage copy-constructs src into a scratch block when it aliases block, so
// that destroying the elements of block cannot clobber it. When staged is
// true the caller must move the scratch elements out and free the block.
func (s storage[T]) stage(block, src []T) (out []T, staged bool) {
	if !overlaps(block, src) {
		return src, false
	}
	tmp := s.allocate(len(src))
	s.copySlots(tmp, src)
	return tmp, true
}

// overlaps reports whether src shares memory with any slot of block.
func overlaps[T any](block, src []T) bool {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 || cap(block) == 0 || len(src) == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	hi := lo + uintptr(cap(block))*size
	p := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	q := p + uintptr(len(src))*size
	return p < hi && lo < q
}

// moveSlots transfers len(src) elements into dst. The source slots become
// husks that must be zeroed or discarded, never destroyed. Overlapping
// ranges are allowed when dst starts before src.
func (s storage[T]) moveSlots(dst, src []T) {
	if s.tr.scalar {
		rawmem.Move(dst, src)
		return
	}
	for i := range src {
		dst[i] = src[i]
	}
}

// copySlots copy-constructs len(src) elements into dst.
func (s storage[T]) copySlots(dst, src []T) {
	if s.tr.scalar {
		rawmem.Move(dst, src)
		return
	}
	if !s.tr.clone {
		copy(dst, src)
		return
	}
	for i := range src {
		dst[i] = cloneValue(src[i])
	}
}

// fillSlots constructs a copy of v in every slot of dst.
func (s storage[T]) fillSlots(dst []T, v T) {
	if s.tr.scalar {
		rawmem.Fill(dst, v)
		return
	}
	for i := range dst {
		if s.tr.clone {
			dst[i] = cloneValue(v)
		} else {
			dst[i] = v
		}
	}
}

// zeroSlots value-initializes every slot of dst.
func (s storage[T]) zeroSlots(dst []T) {
	if s.tr.scalar {
		rawmem.Zero(dst)
		return
	}
	clear(dst)
}

// destroySlots runs the destroy hook of every live element in dst and
// zeroes non-scalar slots so the collector can reclaim what they referenced.
func (s storage[T]) destroySlots(dst []T) {
	if s.tr.scalar {
		return
	}
	if s.tr.destroy {
		for i := range dst {
			destroyValue(&dst[i])
		}
	}
	clear(dst)
}

// dropHusks clears slots whose elements were moved elsewhere.
func (s storage[T]) dropHusks(dst []T) {
	if !s.tr.scalar {
		clear(dst)
	}
}
