// Package seglist provides a segmented sequence container for Go.
//
// A List stores its elements across a chain of fixed-capacity segments. It
// combines the cache locality and bulk allocation of a slice with the
// non-reallocating growth of a linked structure: appending never copies the
// existing elements, and structural edits move at most the elements behind
// the edit point, one contiguous run at a time.
//
// # Quick Start
//
//	l, _ := seglist.New(seglist.WithSegmentCapacity[int](4))
//	for i := range 5 {
//	    _ = l.PushBack(i)
//	}
//	// segments: [0 1 2 3] [4]
//	v, _ := l.At(4) // 4
//
// # Indexing
//
// Position pos lives in segment pos/C at offset pos%C, because every segment
// except the tail is kept full. At walks the chain from the nearer end, so
// random access costs O(segments), not O(1). Index is the unchecked variant.
//
// # Iterators
//
// Iterator and ConstIterator are (list, index) pairs resolved on every
// dereference. The zero Iterator is the end sentinel. Moving past either end
// fails with ErrInvalidIterator. Any insert, erase, resize or clear
// invalidates all outstanding iterators.
//
//	for it := l.Begin(); !it.IsEnd(); _ = it.Next() {
//	    v, _ := it.Value()
//	    fmt.Println(v)
//	}
//
// Range-over-func iteration is usually simpler:
//
//	for i, v := range l.All() {
//	    fmt.Println(i, v)
//	}
//
// # Allocation
//
// Segment storage comes from an Allocator. HeapAllocator is the default,
// PoolAllocator recycles buffers and BudgetAllocator (or WithMemoryLimit)
// enforces a byte budget. Every structural edit obtains all the storage it
// needs before rewriting links, so an allocation failure leaves the list
// exactly as it was and surfaces as ErrAllocationFailure.
//
// # Concurrency
//
// A List is owned by one goroutine at a time. Allocators and metrics
// observers may be shared across lists.
package seglist
