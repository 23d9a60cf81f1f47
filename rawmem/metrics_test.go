package rawmem

import (
	"testing"
)

func TestManualMetrics(t *testing.T) {
	m := NewManual()
	defer m.Release()

	// Test initial state
	if m.BytesInUse() != 0 {
		t.Errorf("Initial BytesInUse = %d, want 0", m.BytesInUse())
	}
	if m.LiveBlocks() != 0 {
		t.Errorf("Initial LiveBlocks = %d, want 0", m.LiveBlocks())
	}
	if m.Allocations() != 0 || m.Frees() != 0 {
		t.Errorf("Initial counters = %d/%d, want 0/0", m.Allocations(), m.Frees())
	}

	// Allocate some data
	b1 := m.AllocBytes(100)
	b2 := m.AllocBytes(13)

	if m.BytesInUse() != 113 {
		t.Errorf("BytesInUse = %d, want 113", m.BytesInUse())
	}
	if m.BytesReserved() < m.BytesInUse() {
		t.Errorf("BytesReserved = %d, want >= %d", m.BytesReserved(), m.BytesInUse())
	}
	if m.LiveBlocks() != 2 {
		t.Errorf("LiveBlocks = %d, want 2", m.LiveBlocks())
	}

	m.FreeBytes(b1)
	if m.BytesInUse() != 13 {
		t.Errorf("BytesInUse after free = %d, want 13", m.BytesInUse())
	}
	if m.PeakBytesInUse() != 113 {
		t.Errorf("PeakBytesInUse = %d, want 113", m.PeakBytesInUse())
	}

	// Test metrics snapshot
	metrics := m.Metrics()
	if metrics.BytesInUse != m.BytesInUse() {
		t.Errorf("Metrics.BytesInUse = %d, want %d", metrics.BytesInUse, m.BytesInUse())
	}
	if metrics.BytesReserved != m.BytesReserved() {
		t.Errorf("Metrics.BytesReserved = %d, want %d", metrics.BytesReserved, m.BytesReserved())
	}
	if metrics.LiveBlocks != 1 {
		t.Errorf("Metrics.LiveBlocks = %d, want 1", metrics.LiveBlocks)
	}
	if metrics.Allocations != 2 {
		t.Errorf("Metrics.Allocations = %d, want 2", metrics.Allocations)
	}
	if metrics.Frees != 1 {
		t.Errorf("Metrics.Frees = %d, want 1", metrics.Frees)
	}

	m.FreeBytes(b2)
	if m.BytesReserved() != 0 {
		t.Errorf("BytesReserved after freeing all = %d, want 0", m.BytesReserved())
	}
}

func TestManualMetricsAfterRelease(t *testing.T) {
	m := NewManual()
	m.AllocBytes(500)
	m.Release()

	if m.BytesInUse() != 0 {
		t.Errorf("BytesInUse after Release = %d, want 0", m.BytesInUse())
	}
	if m.LiveBlocks() != 0 {
		t.Errorf("LiveBlocks after Release = %d, want 0", m.LiveBlocks())
	}
	if m.Allocations() != 1 {
		t.Errorf("Allocations after Release = %d, want 1", m.Allocations())
	}
}

func TestSafeAllocatorMetrics(t *testing.T) {
	s := NewSafeAllocator()
	defer s.Release()

	b := s.AllocBytes(64)
	if s.BytesInUse() != 64 {
		t.Errorf("BytesInUse = %d, want 64", s.BytesInUse())
	}
	if s.LiveBlocks() != 1 {
		t.Errorf("LiveBlocks = %d, want 1", s.LiveBlocks())
	}
	s.FreeBytes(b)

	metrics := s.Metrics()
	if metrics.LiveBlocks != 0 || metrics.Allocations != 1 || metrics.Frees != 1 {
		t.Errorf("Metrics = %+v, want 0 live, 1 alloc, 1 free", metrics)
	}
}
