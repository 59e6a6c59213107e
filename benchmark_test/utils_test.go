package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/seglist"
	"github.com/hupe1980/seglist/testutil"
)

// Segment capacities swept by most benchmarks.
var capacities = []int{16, 64, 256, 1024}

// Element counts swept by most benchmarks.
var sizes = []int{1_000, 100_000}

func buildList(b *testing.B, capacity, n int, opts ...seglist.Option[int]) *seglist.List[int] {
	b.Helper()
	opts = append([]seglist.Option[int]{seglist.WithSegmentCapacity[int](capacity)}, opts...)
	l, err := seglist.FromSlice(testutil.Sequence(n), opts...)
	if err != nil {
		b.Fatalf("build list: %v", err)
	}
	return l
}

func caseName(capacity, n int) string {
	return fmt.Sprintf("C=%d/N=%d", capacity, n)
}
