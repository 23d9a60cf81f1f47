package rawmem

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"modernc.org/memory"
)

var (
	// ErrOutOfMemory is wrapped by the panic raised when a block cannot be obtained.
	ErrOutOfMemory = errors.New("rawmem: out of memory")
	// ErrDoubleFree is wrapped by the panic raised when a block is freed twice
	// or was never handed out by the allocator.
	ErrDoubleFree = errors.New("rawmem: double free or foreign block")
	// ErrReleased is wrapped by the panic raised on use after Release.
	ErrReleased = errors.New("rawmem: use after Release()")
)

//go:generate mockgen -source=allocator.go -destination=mock_rawmem/allocator_mock.go -package=mock_rawmem

// Allocator hands out raw byte blocks. Block contents are undefined until
// written. Every block must be returned with FreeBytes exactly once.
type Allocator interface {
	AllocBytes(n int) []byte
	FreeBytes(b []byte)
}

// Manual is an Allocator backed by memory obtained outside the Go heap.
// The garbage collector never scans these blocks, so they may only hold
// pointer-free data. Not goroutine-safe by default; use SafeAllocator for
// concurrent access.
type Manual struct {
	heap   *memory.Allocator
	blocks map[uintptr]int // base address -> requested size

	inUse    int
	reserved int
	peak     int
	allocs   uint64
	frees    uint64
}

// NewManual creates an empty manual allocator.
func NewManual() *Manual {
	return &Manual{
		heap:   &memory.Allocator{},
		blocks: make(map[uintptr]int),
	}
}

// AllocBytes returns a block of exactly n bytes. The block is not zeroed.
// Returns nil if n <= 0.
func (m *Manual) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	m.panicIfReleased()

	size := alignSize(n)
	if size < n {
		panic(errors.Wrapf(ErrOutOfMemory, "block of %d bytes overflows", n))
	}
	b, err := m.heap.Malloc(size)
	if err != nil {
		panic(errors.Wrapf(ErrOutOfMemory, "malloc %d bytes: %v", size, err))
	}
	b = b[:n:n]

	m.blocks[baseOf(b)] = n
	m.inUse += n
	m.reserved += size
	if m.inUse > m.peak {
		m.peak = m.inUse
	}
	m.allocs++
	return b
}

// FreeBytes returns a block previously obtained from AllocBytes.
// Freeing an empty slice is a no-op; freeing the same block twice panics.
func (m *Manual) FreeBytes(b []byte) {
	if cap(b) == 0 {
		return
	}
	m.panicIfReleased()

	addr := baseOf(b)
	n, ok := m.blocks[addr]
	if !ok {
		panic(errors.Wrapf(ErrDoubleFree, "block %#x", addr))
	}
	delete(m.blocks, addr)
	if err := m.heap.Free(b); err != nil {
		panic(errors.Wrapf(err, "rawmem: free block %#x", addr))
	}

	m.inUse -= n
	m.reserved -= alignSize(n)
	m.frees++
}

// Release frees every outstanding block and makes the allocator unusable.
// Any subsequent allocation or free will panic. Releasing twice is safe.
func (m *Manual) Release() {
	if m.blocks == nil {
		return
	}
	m.blocks = nil
	m.inUse, m.reserved = 0, 0
	// Close unmaps every page, including blocks that were never freed.
	_ = m.heap.Close()
}

// panicIfReleased panics if the allocator has been released.
func (m *Manual) panicIfReleased() {
	if m.blocks == nil {
		panic(ErrReleased)
	}
}

// baseOf returns the address of the first byte of b's backing array.
func baseOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// alignSize rounds n up to pointer size alignment.
func alignSize(n int) int {
	const align = int(unsafe.Sizeof(uintptr(0)))
	mask := align - 1
	return (n + mask) & ^mask
}
