package seglist

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/seglist/internal/resource"
)

// Allocator provides element storage for segments.
//
// Allocate must return a slice of exactly n slots or an error satisfying
// errors.Is(err, ErrAllocationFailure). The list returns that error to its
// caller unmodified and never retries. Deallocate receives storage previously
// obtained from Allocate, already cleared.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T, n int)
}

// HeapAllocator allocates segment storage on the Go heap.
// It never fails.
type HeapAllocator[T any] struct{}

// Allocate implements Allocator.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	return make([]T, n), nil
}

// Deallocate implements Allocator. The garbage collector reclaims buf.
func (HeapAllocator[T]) Deallocate([]T, int) {}

// PoolAllocator recycles segment buffers of one fixed size through a sync.Pool.
// Requests of any other size fall through to the heap.
//
// A PoolAllocator may be shared by lists that use the same segment capacity.
type PoolAllocator[T any] struct {
	size int
	pool sync.Pool
}

// NewPoolAllocator creates a PoolAllocator for buffers of size slots.
func NewPoolAllocator[T any](size int) *PoolAllocator[T] {
	a := &PoolAllocator[T]{size: size}
	a.pool.New = func() any {
		buf := make([]T, size)
		return &buf
	}
	return a
}

// Allocate implements Allocator.
func (a *PoolAllocator[T]) Allocate(n int) ([]T, error) {
	if n != a.size {
		return make([]T, n), nil
	}
	return *(a.pool.Get().(*[]T)), nil
}

// Deallocate implements Allocator.
func (a *PoolAllocator[T]) Deallocate(buf []T, n int) {
	if n != a.size || cap(buf) < a.size {
		return
	}
	buf = buf[:a.size]
	clear(buf)
	a.pool.Put(&buf)
}

// BudgetAllocator enforces a byte budget on segment storage.
// Requests beyond the budget fail with an *AllocationError wrapping
// resource.ErrMemoryLimitExceeded.
//
// The budget is shared by every list that uses the same BudgetAllocator.
type BudgetAllocator[T any] struct {
	rc       *resource.Controller
	elemSize int64
	inner    Allocator[T]
}

// NewBudgetAllocator creates a BudgetAllocator that admits at most limitBytes
// of segment storage. A limit of 0 only tracks usage.
func NewBudgetAllocator[T any](limitBytes int64) *BudgetAllocator[T] {
	return newBudgetAllocator[T](resource.NewController(resource.Config{MemoryLimitBytes: limitBytes}), HeapAllocator[T]{})
}

func newBudgetAllocator[T any](rc *resource.Controller, inner Allocator[T]) *BudgetAllocator[T] {
	var zero T
	return &BudgetAllocator[T]{
		rc:       rc,
		elemSize: int64(unsafe.Sizeof(zero)),
		inner:    inner,
	}
}

// Allocate implements Allocator.
func (a *BudgetAllocator[T]) Allocate(n int) ([]T, error) {
	bytes := int64(n) * a.elemSize
	if err := a.rc.AcquireMemory(bytes); err != nil {
		return nil, NewAllocationError(n, bytes, err)
	}
	buf, err := a.inner.Allocate(n)
	if err != nil {
		a.rc.ReleaseMemory(bytes)
		return nil, err
	}
	return buf, nil
}

// Deallocate implements Allocator.
func (a *BudgetAllocator[T]) Deallocate(buf []T, n int) {
	a.inner.Deallocate(buf, n)
	a.rc.ReleaseMemory(int64(n) * a.elemSize)
}

// InUse returns the bytes currently reserved.
func (a *BudgetAllocator[T]) InUse() int64 { return a.rc.MemoryUsage() }

// Peak returns the highest reservation observed.
func (a *BudgetAllocator[T]) Peak() int64 { return a.rc.PeakMemoryUsage() }

// Limit returns the configured budget in bytes (0 if unlimited).
func (a *BudgetAllocator[T]) Limit() int64 { return a.rc.MemoryLimit() }
