// Package resource implements the shared resource controller used by segment
// allocators and snapshot IO.
//
// Two resource types are governed:
//
//   - Memory: byte budget for segment storage (non-blocking, fail-fast)
//   - IO: token-bucket rate limit for snapshot reads and writes
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory never blocks; it returns
// ErrMemoryLimitExceeded immediately so that a list can abandon a structural
// edit before rewriting any link:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(4096)
//
// # IO Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 8 << 20,
//	})
//
//	w := resource.NewRateLimitedWriter(ctx, file, rc)
//	r := resource.NewRateLimitedReader(ctx, file, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
