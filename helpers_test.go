package seglist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// limitedAllocator serves a fixed number of allocations, then refuses.
type limitedAllocator[T any] struct {
	remaining int
	live      int
}

func (a *limitedAllocator[T]) Allocate(n int) ([]T, error) {
	if a.remaining == 0 {
		return nil, NewAllocationError(n, 0, errInjected)
	}
	a.remaining--
	a.live++
	return make([]T, n), nil
}

func (a *limitedAllocator[T]) Deallocate([]T, int) { a.live-- }

func newIntList(t testing.TB, capacity int, values ...int) *List[int] {
	t.Helper()
	l, err := FromSlice(values, WithSegmentCapacity[int](capacity))
	require.NoError(t, err)
	return l
}

func segmentsOf[T any](l *List[T]) [][]T {
	var out [][]T
	for s := range l.Segments() {
		out = append(out, append([]T(nil), s...))
	}
	return out
}

// checkInvariants verifies the chain layout against size and capacity.
func checkInvariants[T any](t testing.TB, l *List[T]) {
	t.Helper()

	if l.head == nil {
		require.Nil(t, l.tail)
		require.Zero(t, l.size)
		require.Zero(t, l.segments)
		return
	}
	require.Nil(t, l.head.prev, "head has a predecessor")

	n, total := 0, 0
	var prev *segment[T]
	for s := l.head; s != nil; s = s.next {
		require.Same(t, prev, s.prev, "broken prev link at segment %d", n)
		if s != l.tail {
			require.Len(t, s.items, l.capacity, "segment %d", n)
			require.True(t, s.full(), "non-tail segment %d not full", n)
		}
		require.LessOrEqual(t, s.count, len(s.items))
		total += s.count
		prev = s
		n++
	}
	require.Same(t, prev, l.tail, "tail is not the last segment")
	require.Equal(t, l.segments, n)
	require.Equal(t, l.size, total)

	if l.size == 0 {
		require.Equal(t, 1, n, "empty list keeps only the head")
	} else {
		require.Equal(t, ceilDiv(l.size, l.capacity), n, fmt.Sprintf("size %d", l.size))
	}
}
