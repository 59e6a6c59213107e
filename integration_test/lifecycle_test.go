package integration_test

import (
	"bytes"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seglist"
	"github.com/hupe1980/seglist/codec"
	"github.com/hupe1980/seglist/snapshot"
	"github.com/hupe1980/seglist/testutil"
)

// TestLifecycle_MutateSnapshotRestore alternates random edits with snapshot
// round trips and checks the list against a slice model after every step.
func TestLifecycle_MutateSnapshotRestore(t *testing.T) {
	rng := testutil.NewRNG(99)
	l, err := seglist.New(seglist.WithSegmentCapacity[int](5))
	require.NoError(t, err)
	var model []int

	for step := range 40 {
		switch rng.Intn(4) {
		case 0:
			vals := rng.Ints(rng.Intn(30), 1000)
			pos := 0
			if len(model) > 0 {
				pos = rng.Intn(len(model) + 1)
			}
			it, err := l.IteratorAt(pos)
			require.NoError(t, err)
			_, err = l.InsertSlice(it, vals)
			require.NoError(t, err)
			model = append(model[:pos], append(append([]int(nil), vals...), model[pos:]...)...)
		case 1:
			set := l.IndexSet(func(v int) bool { return v%2 == 1 })
			n, err := l.EraseIndices(set)
			require.NoError(t, err)
			kept := model[:0]
			for _, v := range model {
				if v%2 == 0 {
					kept = append(kept, v)
				}
			}
			require.Equal(t, len(model)-len(kept), n)
			model = kept
		case 2:
			if len(model) > 2 {
				set := roaring.New()
				set.AddInt(0)
				set.AddInt(len(model) - 1)
				_, err := l.EraseIndices(set)
				require.NoError(t, err)
				model = model[1 : len(model)-1]
			}
		default:
			require.NoError(t, l.Resize(len(model)+3))
			model = append(model, 0, 0, 0)
		}

		var buf bytes.Buffer
		cd := []codec.Codec{codec.JSON{}, codec.GoJSON{}}[step%2]
		require.NoError(t, snapshot.Write(&buf, l, snapshot.WithCodec(cd), snapshot.WithCompression(snapshot.CompressionZstd)))

		restored, err := snapshot.Read[int](&buf)
		require.NoError(t, err)
		require.Equal(t, nilIfEmpty(model), nilIfEmpty(restored.ToSlice()), "step %d", step)
		require.True(t, seglist.Equal(l, restored))

		l = restored
	}
}
