package rawmem

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// AllocSlice returns n slots of T carved from a single raw block of a.
// The slots are not initialized (contain garbage data) and T must be
// pointer-free. Returns nil if n <= 0.
func AllocSlice[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		// Zero-size elements need no backing memory.
		return make([]T, n)
	}
	if n > math.MaxInt/elemSize {
		panic(errors.Wrapf(ErrOutOfMemory, "%d slots of %d bytes overflows", n, elemSize))
	}
	b := a.AllocBytes(elemSize * n)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed allocates n slots of T with zeroed memory.
// This is slower than AllocSlice but ensures clean initialization.
func AllocSliceZeroed[T any](a Allocator, n int) []T {
	s := AllocSlice[T](a, n)
	Zero(s)
	return s
}

// FreeSlice returns the block behind s to a. s must be the full slice that
// AllocSlice returned (same first element); its length is ignored.
func FreeSlice[T any](a Allocator, s []T) {
	b := Bytes(s[:cap(s)])
	if len(b) == 0 {
		return
	}
	a.FreeBytes(b)
}

// Bytes returns the raw byte view of s. The view aliases s.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	n := len(s) * int(unsafe.Sizeof(zero))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), n)
}

// Move copies min(len(dst), len(src)) slots from src to dst with a single
// memmove and returns the number of slots moved. Overlapping ranges are
// handled. Only valid for pointer-free T.
func Move[T any](dst, src []T) int {
	n := min(len(dst), len(src))
	copy(Bytes(dst[:n]), Bytes(src[:n]))
	return n
}

// Zero clears every slot of s with a memset.
func Zero[T any](s []T) {
	clear(Bytes(s))
}

// Fill sets every slot of s to v by seeding the first slot and doubling
// the initialized prefix. Only valid for pointer-free T.
func Fill[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	b := Bytes(s)
	for done := len(b) / len(s); done < len(b); done *= 2 {
		copy(b[done:], b[:done])
	}
}
