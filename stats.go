package nostl

import "fmt"

// Stats is a snapshot of a container's memory footprint.
type Stats struct {
	Len             int // live elements
	Cap             int // allocated slots
	ElemSize        int // bytes per slot
	MemoryUsed      int
	MemoryAllocated int
}

// Unused returns the bytes allocated but not holding live elements.
func (s Stats) Unused() int {
	return s.MemoryAllocated - s.MemoryUsed
}

func (s Stats) String() string {
	return fmt.Sprintf("len=%d elements, capacity=%d elements, elem_size=%d bytes\n"+
		"mem_usage=%d bytes, total_allocated_mem=%d bytes, unused_mem=%d bytes",
		s.Len, s.Cap, s.ElemSize, s.MemoryUsed, s.MemoryAllocated, s.Unused())
}
