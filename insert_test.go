package seglist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_Middle(t *testing.T) {
	l := newIntList(t, 3, 0, 1, 2, 3, 4, 5)

	pos, err := l.IteratorAt(2)
	require.NoError(t, err)
	it, err := l.Insert(pos, 42)
	require.NoError(t, err)

	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, []int{0, 1, 42, 2, 3, 4, 5}, l.ToSlice())
	assert.Equal(t, [][]int{{0, 1, 42}, {2, 3, 4}, {5}}, segmentsOf(l))
	checkInvariants(t, l)
}

func TestInsert_AtEnd(t *testing.T) {
	l := newIntList(t, 2, 1, 2)

	it, err := l.Insert(l.End(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, it.Index())
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	checkInvariants(t, l)
}

func TestInsert_IntoHeadlessList(t *testing.T) {
	l := newIntList(t, 4)

	_, err := l.Insert(l.Begin(), 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, l.ToSlice())
	assert.Equal(t, 1, l.SegmentCount())
	checkInvariants(t, l)
}

func TestInsertN(t *testing.T) {
	l := newIntList(t, 4, 1, 2, 3, 4, 5)

	pos, err := l.IteratorAt(1)
	require.NoError(t, err)
	it, err := l.InsertN(pos, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, it.Index())
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 2, 3, 4, 5}, l.ToSlice())
	checkInvariants(t, l)

	it, err = l.InsertN(pos, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, pos, it)
	assert.Equal(t, 11, l.Len())

	_, err = l.InsertN(pos, -1, 9)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 11, l.Len())
}

func TestInsertSliceAndSeq(t *testing.T) {
	l := newIntList(t, 3, 1, 5)

	pos, err := l.IteratorAt(1)
	require.NoError(t, err)
	_, err = l.InsertSlice(pos, []int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())

	_, err = l.InsertSeq(l.End(), slices.Values([]int{6, 7}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, l.ToSlice())

	_, err = l.InsertSlice(l.Begin(), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, l.Len())
	checkInvariants(t, l)
}

func TestEmplace(t *testing.T) {
	type point struct{ X, Y int }

	l, err := New(WithSegmentCapacity[point](2))
	require.NoError(t, err)

	require.NoError(t, l.EmplaceBack(func(p *point) { p.X, p.Y = 1, 2 }))
	require.NoError(t, l.EmplaceFront(func(p *point) { p.X = 9 }))
	_, err = l.Emplace(l.Last(), nil)
	require.NoError(t, err)

	assert.Equal(t, []point{{9, 0}, {0, 0}, {1, 2}}, l.ToSlice())
	checkInvariants(t, l)
}

func TestInsert_ForeignIterator(t *testing.T) {
	a := newIntList(t, 4, 1, 2)
	b := newIntList(t, 4, 3, 4)

	_, err := a.Insert(b.Begin(), 0)
	assert.ErrorIs(t, err, ErrInvalidIterator)
	assert.Equal(t, []int{1, 2}, a.ToSlice())
}

func TestInsert_StaleIterator(t *testing.T) {
	l := newIntList(t, 4, 1, 2, 3)
	stale := l.Last()
	l.Clear()

	_, err := l.Insert(stale, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.True(t, l.Empty())
}

func TestInsert_AllocationFailureLeavesListUnchanged(t *testing.T) {
	alloc := &limitedAllocator[int]{remaining: 3}
	obs := &BasicMetricsObserver{}
	l, err := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7},
		WithSegmentCapacity[int](4),
		WithAllocator[int](alloc),
		WithMetricsObserver[int](obs),
	)
	require.NoError(t, err)
	require.Equal(t, 2, alloc.live)

	// Needs two more segments; only one is available.
	_, err = l.InsertN(l.Begin(), 5, -1)
	require.ErrorIs(t, err, ErrAllocationFailure)
	require.ErrorIs(t, err, errInjected)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, l.ToSlice())
	assert.Equal(t, 2, l.SegmentCount())
	assert.Equal(t, 2, alloc.live, "partially allocated segments must be released")
	assert.Equal(t, int64(1), obs.GetStats().AllocationFailures)
	checkInvariants(t, l)

	// PushBack on a full tail fails the same way.
	err = l.PushBack(8)
	require.ErrorIs(t, err, ErrAllocationFailure)
	assert.Equal(t, 8, l.Len())
}
