package rawmem

// BytesInUse returns the number of bytes requested by live blocks.
func (m *Manual) BytesInUse() int {
	return m.inUse
}

// BytesReserved returns the bytes held for live blocks after alignment.
func (m *Manual) BytesReserved() int {
	return m.reserved
}

// PeakBytesInUse returns the highest BytesInUse observed so far.
func (m *Manual) PeakBytesInUse() int {
	return m.peak
}

// LiveBlocks returns the number of blocks handed out and not yet freed.
func (m *Manual) LiveBlocks() int {
	if m.blocks == nil {
		return 0
	}
	return len(m.blocks)
}

// Allocations returns the total number of blocks ever handed out.
func (m *Manual) Allocations() uint64 {
	return m.allocs
}

// Frees returns the total number of blocks returned with FreeBytes.
func (m *Manual) Frees() uint64 {
	return m.frees
}

// Metrics returns a snapshot of allocator statistics.
func (m *Manual) Metrics() Metrics {
	return Metrics{
		BytesInUse:     m.BytesInUse(),
		BytesReserved:  m.BytesReserved(),
		PeakBytesInUse: m.PeakBytesInUse(),
		LiveBlocks:     m.LiveBlocks(),
		Allocations:    m.Allocations(),
		Frees:          m.Frees(),
	}
}

// Metrics contains statistical information about an allocator.
type Metrics struct {
	BytesInUse     int    // Bytes requested by live blocks
	BytesReserved  int    // Bytes held for live blocks, alignment included
	PeakBytesInUse int    // High-water mark of BytesInUse
	LiveBlocks     int    // Blocks not yet freed
	Allocations    uint64 // Blocks ever allocated
	Frees          uint64 // Blocks ever freed
}

// Thread-safe metrics for SafeAllocator

// BytesInUse thread-safely returns the number of bytes requested by live blocks.
func (s *SafeAllocator) BytesInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.BytesInUse()
}

// LiveBlocks thread-safely returns the number of live blocks.
func (s *SafeAllocator) LiveBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.LiveBlocks()
}

// Metrics thread-safely returns a snapshot of allocator statistics.
func (s *SafeAllocator) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Metrics()
}
