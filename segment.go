package seglist

import "fmt"

// segment is a fixed-capacity run of slots in the chain.
// next is the owning link; prev is a lookup reference only.
type segment[T any] struct {
	items []T
	count int
	next  *segment[T]
	prev  *segment[T]
}

func allocateSegment[T any](alloc Allocator[T], capacity int) (*segment[T], error) {
	items, err := alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	if len(items) != capacity {
		alloc.Deallocate(items, len(items))
		return nil, NewAllocationError(capacity, 0, fmt.Errorf("allocator returned %d slots", len(items)))
	}
	return &segment[T]{items: items}, nil
}

func (s *segment[T]) get(i int) T { return s.items[i] }

func (s *segment[T]) set(i int, v T) { s.items[i] = v }

// live returns the occupied window of the segment.
func (s *segment[T]) live() []T { return s.items[:s.count] }

func (s *segment[T]) full() bool { return s.count == len(s.items) }

// resize replaces the storage with newCapacity slots. Existing slots are
// copied, added slots take fill and count is truncated to fit. The old
// storage is released only after the copy; on allocation failure the
// segment is unchanged.
func (s *segment[T]) resize(alloc Allocator[T], newCapacity int, fill T) error {
	if newCapacity < 0 {
		return invalidArgument("segment capacity %d", newCapacity)
	}
	if newCapacity == len(s.items) {
		return nil
	}

	items, err := alloc.Allocate(newCapacity)
	if err != nil {
		return err
	}
	if len(items) != newCapacity {
		alloc.Deallocate(items, len(items))
		return NewAllocationError(newCapacity, 0, fmt.Errorf("allocator returned %d slots", len(items)))
	}

	n := copy(items, s.items)
	for i := n; i < newCapacity; i++ {
		items[i] = fill
	}

	old := s.items
	s.items = items
	s.count = min(s.count, newCapacity)

	clear(old)
	alloc.Deallocate(old, len(old))
	return nil
}

// release hands the storage back and detaches the segment.
func (s *segment[T]) release(alloc Allocator[T]) {
	clear(s.items)
	alloc.Deallocate(s.items, len(s.items))
	s.items = nil
	s.count = 0
	s.next = nil
	s.prev = nil
}
