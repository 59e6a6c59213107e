package seglist

import (
	"sync/atomic"
)

// MetricsObserver receives segment lifecycle events from a List.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package prommetrics).
//
// Observers may be shared by many lists and must be safe for concurrent use.
type MetricsObserver interface {
	// OnSegmentAllocated is called after segment storage of the given
	// number of slots was obtained from the allocator.
	OnSegmentAllocated(slots int)

	// OnSegmentReleased is called after segment storage was handed back.
	OnSegmentReleased(slots int)

	// OnAllocationFailed is called when the allocator refused a request.
	OnAllocationFailed(slots int, err error)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnSegmentAllocated(int)        {}
func (NoopMetricsObserver) OnSegmentReleased(int)         {}
func (NoopMetricsObserver) OnAllocationFailed(int, error) {}

// BasicMetricsObserver provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsObserver struct {
	SegmentsAllocated  atomic.Int64
	SegmentsReleased   atomic.Int64
	SlotsAllocated     atomic.Int64
	SlotsReleased      atomic.Int64
	AllocationFailures atomic.Int64
}

// OnSegmentAllocated implements MetricsObserver.
func (b *BasicMetricsObserver) OnSegmentAllocated(slots int) {
	b.SegmentsAllocated.Add(1)
	b.SlotsAllocated.Add(int64(slots))
}

// OnSegmentReleased implements MetricsObserver.
func (b *BasicMetricsObserver) OnSegmentReleased(slots int) {
	b.SegmentsReleased.Add(1)
	b.SlotsReleased.Add(int64(slots))
}

// OnAllocationFailed implements MetricsObserver.
func (b *BasicMetricsObserver) OnAllocationFailed(int, error) {
	b.AllocationFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsObserver) GetStats() BasicMetricsStats {
	allocated := b.SegmentsAllocated.Load()
	released := b.SegmentsReleased.Load()
	return BasicMetricsStats{
		SegmentsAllocated:  allocated,
		SegmentsReleased:   released,
		SegmentsLive:       allocated - released,
		SlotsLive:          b.SlotsAllocated.Load() - b.SlotsReleased.Load(),
		AllocationFailures: b.AllocationFailures.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsObserver state.
type BasicMetricsStats struct {
	SegmentsAllocated  int64
	SegmentsReleased   int64
	SegmentsLive       int64
	SlotsLive          int64
	AllocationFailures int64
}
