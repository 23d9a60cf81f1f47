// Package nostl implements generic contiguous containers on manually
// managed memory: a growable Vector, a fixed-length Array and the Iterator
// they share.
//
// # Overview
//
// Both containers separate acquiring storage from constructing elements in
// it. A Vector owns a block of Cap() slots of which the first Len() hold live
// elements; appending to a full vector relocates it into a larger block
// chosen by its GrowthPolicy, which gives amortized O(1) PushBack.
//
// # Basic Usage
//
//	v := nostl.New[int]()
//	defer v.Release()
//
//	v.PushBack(10).PushBack(20).Append(30, 40)
//	v.Erase(1)
//	fmt.Println(v) // [10, 30, 40]
//
//	a := nostl.NewArrayFilled(4, "x")
//	a.Fill("y")
//
// # Element Types
//
// Element types that hold no Go pointers (numbers, booleans, and arrays or
// structs of them) are scalar: their blocks come from rawmem.Default, outside
// the Go heap, and are copied and relocated with a single memmove. All other
// element types live on the Go heap and are handled one element at a time.
//
// Types that hold resources can implement Destroyer, which runs exactly once
// for every element a container destroys, and Cloner, which produces the
// independent copies made by Clone, CopyFrom, PushBackCopy and fills.
//
// # Ownership
//
//   - Clone and CopyFrom produce independent copies
//   - Move and MoveFrom transfer ownership and leave the source empty
//   - Release destroys live elements and frees the block exactly once
//
// Manual blocks are never freed by the garbage collector. A container of
// scalar elements dropped without Release leaks its block, while slices
// returned by Data and iterators stay readable until Release.
//
// # Iterators and Preconditions
//
// Iterators record the storage generation they were taken from. Any
// reallocation, erase, clear, move or release starts a new generation, and
// dereferencing an older iterator panics with ErrIteratorInvalidated.
//
// Precondition violations are programming errors and panic in every build
// with an assertion failure wrapping one of the Err sentinels, so a recovered
// value can be tested with errors.Is.
//
// # Logging
//
// Reallocations, moves and releases are traced at Debug level through the
// zap logger installed with SetLogger.
package nostl
