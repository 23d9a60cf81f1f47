package rawmem

import (
	"sync"
)

// Default is the process-wide allocator used by the nostl containers for
// pointer-free element blocks. It is never released.
var Default = NewSafeAllocator()

// SafeAllocator is a mutex-protected wrapper around Manual for concurrent access.
// Containers are single-owner, but many containers on different goroutines
// share one allocator.
type SafeAllocator struct {
	mu sync.Mutex
	m  *Manual
}

// NewSafeAllocator creates a new thread-safe manual allocator.
func NewSafeAllocator() *SafeAllocator {
	return &SafeAllocator{m: NewManual()}
}

// AllocBytes thread-safely allocates n bytes. Returns nil if n <= 0.
func (s *SafeAllocator) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.AllocBytes(n)
}

// FreeBytes thread-safely returns a block to the allocator.
func (s *SafeAllocator) FreeBytes(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.FreeBytes(b)
}

// Release thread-safely frees every block and makes the allocator unusable.
func (s *SafeAllocator) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Release()
}
