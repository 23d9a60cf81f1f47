// Package rawmem manages raw memory blocks whose lifetime is distinct from
// the values living in them.
//
// # Overview
//
// Containers in nostl separate acquiring storage from constructing elements
// inside it. For element types that contain no Go pointers the storage comes
// from this package: blocks are obtained outside the Go heap, viewed as typed
// slots with AllocSlice, and handed back with FreeSlice exactly once.
//
// # Basic Usage
//
//	m := rawmem.NewManual()
//	defer m.Release() // frees anything still outstanding
//
//	slots := rawmem.AllocSlice[int64](m, 16) // uninitialized
//	rawmem.Fill(slots, 7)
//	rawmem.FreeSlice(m, slots)
//
// # Thread Safety
//
// Manual is not thread-safe. SafeAllocator wraps it with a mutex; Default is
// a SafeAllocator shared by every container in the process.
//
// # Bulk Operations
//
// Bytes, Move, Zero and Fill operate on the raw byte view of a slot range and
// are only valid for pointer-free element types.
//
// # Metrics and Monitoring
//
//	metrics := m.Metrics()
//	fmt.Printf("Live blocks: %d\n", metrics.LiveBlocks)
//	fmt.Printf("Memory in use: %d bytes\n", metrics.BytesInUse)
//
// Collector exposes the same numbers to Prometheus.
package rawmem
