package seglist

import (
	"iter"
	"slices"

	"github.com/hupe1980/seglist/internal/resource"
)

var noopLogger = NoopLogger()

// List is an ordered sequence stored across a chain of fixed-capacity segments.
//
// Position pos lives in segment pos/C at offset pos%C: every segment except
// the tail is full. A List is not safe for concurrent use; callers that share
// one must serialize all mutating and iterating operations themselves.
type List[T any] struct {
	head     *segment[T] // owned
	tail     *segment[T] // lookup only
	size     int
	segments int
	capacity int

	alloc    Allocator[T]
	observer MetricsObserver
	logger   *Logger
}

// New creates an empty list. No segment is allocated until the first element
// is stored.
func New[T any](opts ...Option[T]) (*List[T], error) {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity < 1 {
		return nil, invalidArgument("segment capacity must be positive, got %d", o.capacity)
	}
	if o.memoryLimit < 0 {
		return nil, invalidArgument("memory limit must not be negative, got %d", o.memoryLimit)
	}

	var alloc Allocator[T] = HeapAllocator[T]{}
	if o.allocator != nil {
		alloc = o.allocator
	}
	if o.memoryLimit > 0 {
		alloc = newBudgetAllocator(resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit}), alloc)
	}

	var observer MetricsObserver = NoopMetricsObserver{}
	if o.observer != nil {
		observer = o.observer
	}

	logger := noopLogger
	if o.logger != nil {
		logger = o.logger
	}

	return &List[T]{
		capacity: o.capacity,
		alloc:    alloc,
		observer: observer,
		logger:   logger,
	}, nil
}

// NewFilled creates a list holding count copies of value.
func NewFilled[T any](count int, value T, opts ...Option[T]) (*List[T], error) {
	if count < 0 {
		return nil, invalidArgument("count must not be negative, got %d", count)
	}
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := l.insertFill(0, count, value); err != nil {
		return nil, err
	}
	return l, nil
}

// NewSized creates a list holding count zero values.
func NewSized[T any](count int, opts ...Option[T]) (*List[T], error) {
	var zero T
	return NewFilled(count, zero, opts...)
}

// FromSlice creates a list holding a copy of values.
func FromSlice[T any](values []T, opts ...Option[T]) (*List[T], error) {
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := l.insertValues(0, values); err != nil {
		return nil, err
	}
	return l, nil
}

// FromSeq creates a list holding the values yielded by seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*List[T], error) {
	return FromSlice(slices.Collect(seq), opts...)
}

// Of creates a list with default options holding values.
// The heap allocator never fails, so neither does Of.
func Of[T any](values ...T) *List[T] {
	l, err := FromSlice(values)
	if err != nil {
		panic(err)
	}
	return l
}

// emptyLike returns an empty list sharing l's configuration.
func (l *List[T]) emptyLike() *List[T] {
	return &List[T]{
		capacity: l.capacity,
		alloc:    l.alloc,
		observer: l.observer,
		logger:   l.logger,
	}
}

// Clone returns a deep copy sharing l's configuration.
// On allocation failure l is untouched and no storage is leaked.
func (l *List[T]) Clone() (*List[T], error) {
	c := l.emptyLike()
	if l.size == 0 {
		return c, nil
	}
	n := ceilDiv(l.size, l.capacity)
	first, last, err := c.allocateChain(n)
	if err != nil {
		return nil, err
	}
	c.linkTail(first, last, n)
	c.size = l.size

	dst := c.head
	for src := l.head; src != nil; src = src.next {
		for _, v := range src.live() {
			if dst.full() {
				dst = dst.next
			}
			dst.items[dst.count] = v
			dst.count++
		}
	}
	return c, nil
}

// Move transfers the chain into a new list and leaves l empty with its
// configuration intact.
func (l *List[T]) Move() *List[T] {
	m := *l
	l.head, l.tail, l.size, l.segments = nil, nil, 0, 0
	return &m
}

// Swap exchanges the contents and configuration of l and other.
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}

// adopt takes over src's chain; l must be headless.
func (l *List[T]) adopt(src *List[T]) {
	l.head, l.tail, l.size, l.segments = src.head, src.tail, src.size, src.segments
	src.head, src.tail, src.size, src.segments = nil, nil, 0, 0
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// SegmentCapacity returns C, the number of slots per segment.
func (l *List[T]) SegmentCapacity() int { return l.capacity }

// SegmentCount returns the number of linked segments.
func (l *List[T]) SegmentCount() int { return l.segments }

// Capacity returns the number of slots owned by the chain, i.e. the length
// rounded up to whole segments (less any slots released by ShrinkToFit).
func (l *List[T]) Capacity() int {
	if l.tail == nil {
		return 0
	}
	return (l.segments-1)*l.capacity + len(l.tail.items)
}

// Allocator returns the element-storage allocator.
func (l *List[T]) Allocator() Allocator[T] { return l.alloc }

// At returns the element at pos.
// Cost is proportional to the number of segments walked from the nearer end.
func (l *List[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= l.size {
		var zero T
		return zero, &OutOfRangeError{Index: pos, Size: l.size}
	}
	s, off := l.locate(pos)
	return s.get(off), nil
}

// Index returns the element at pos without a bounds check.
// pos must be in [0, Len()); anything else is a programming error.
func (l *List[T]) Index(pos int) T {
	s, off := l.locate(pos)
	return s.items[off]
}

// Set replaces the element at pos.
func (l *List[T]) Set(pos int, v T) error {
	if pos < 0 || pos >= l.size {
		return &OutOfRangeError{Index: pos, Size: l.size}
	}
	s, off := l.locate(pos)
	s.set(off, v)
	return nil
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.head.get(0), nil
}

// Back returns the last element.
func (l *List[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.tail.get(l.tail.count - 1), nil
}

// All returns an iterator over index/value pairs in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for s := l.head; s != nil; s = s.next {
			for _, v := range s.live() {
				if !yield(i, v) {
					return
				}
				i++
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := l.head; s != nil; s = s.next {
			for _, v := range s.live() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for s := l.tail; s != nil; s = s.prev {
			for j := s.count - 1; j >= 0; j-- {
				if !yield(i, s.items[j]) {
					return
				}
				i--
			}
		}
	}
}

// Segments returns an iterator over the live window of every segment,
// head first. The slices alias list storage and are only valid until the
// next structural mutation.
func (l *List[T]) Segments() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for s := l.head; s != nil; s = s.next {
			if !yield(s.live()) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a new slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for s := l.head; s != nil; s = s.next {
		out = append(out, s.live()...)
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
