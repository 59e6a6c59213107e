package seglist

import "log/slog"

// DefaultSegmentCapacity is the number of slots per segment when
// WithSegmentCapacity is not given.
const DefaultSegmentCapacity = 64

type options[T any] struct {
	capacity    int
	allocator   Allocator[T]
	memoryLimit int64
	observer    MetricsObserver
	logger      *Logger
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		capacity: DefaultSegmentCapacity,
	}
}

// Option configures a List.
type Option[T any] func(*options[T])

// WithSegmentCapacity sets the number of slots per segment (C).
// It is fixed for the lifetime of the list; values < 1 make the constructor
// fail with ErrInvalidArgument.
func WithSegmentCapacity[T any](capacity int) Option[T] {
	return func(o *options[T]) {
		o.capacity = capacity
	}
}

// WithAllocator sets the element-storage allocator.
//
// If nil is passed, HeapAllocator is used.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *options[T]) {
		o.allocator = a
	}
}

// WithMemoryLimit caps the segment storage of this list at limitBytes by
// wrapping the configured allocator in a BudgetAllocator.
//
// Example:
//
//	l, _ := seglist.New(
//	    seglist.WithSegmentCapacity[int](256),
//	    seglist.WithMemoryLimit[int](1<<20),
//	)
//	if err := l.PushBack(1); errors.Is(err, seglist.ErrAllocationFailure) {
//	    // budget exhausted, list unchanged
//	}
func WithMemoryLimit[T any](limitBytes int64) Option[T] {
	return func(o *options[T]) {
		o.memoryLimit = limitBytes
	}
}

// WithMetricsObserver configures an observer for segment lifecycle events.
// Pass nil to disable metrics collection.
func WithMetricsObserver[T any](mo MetricsObserver) Option[T] {
	return func(o *options[T]) {
		o.observer = mo
	}
}

// WithLogger configures structured logging of segment link/unlink events.
// Pass nil to disable logging.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[T any](level slog.Level) Option[T] {
	return func(o *options[T]) {
		o.logger = NewTextLogger(level)
	}
}
