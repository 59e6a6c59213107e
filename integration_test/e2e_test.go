package integration_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seglist"
	"github.com/hupe1980/seglist/blobstore"
	"github.com/hupe1980/seglist/snapshot"
	"github.com/hupe1980/seglist/testutil"
)

type task struct {
	ID       int    `json:"id"`
	Priority int    `json:"priority"`
	Owner    string `json:"owner"`
}

// TestE2E_CheckpointedQueue drives a memory-bounded FIFO, checkpoints it to a
// local store behind a cache and restores it after a simulated restart.
func TestE2E_CheckpointedQueue(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewCachingStore(blobstore.NewLocalStore(t.TempDir()), 1<<20)
	rng := testutil.NewRNG(7)

	newQueue := func(capacity int) *seglist.List[task] {
		q, err := seglist.New(
			seglist.WithSegmentCapacity[task](capacity),
			seglist.WithMemoryLimit[task](1<<20),
		)
		require.NoError(t, err)
		return q
	}

	queue := newQueue(32)
	var model []task
	nextID := 0

	for round := range 10 {
		for range rng.Intn(200) {
			tk := task{ID: nextID, Priority: rng.Intn(5), Owner: fmt.Sprintf("w%d", rng.Intn(4))}
			nextID++
			require.NoError(t, queue.PushBack(tk))
			model = append(model, tk)
		}
		for range rng.Intn(150) {
			got, ok := queue.PopFront()
			if len(model) == 0 {
				require.False(t, ok)
				continue
			}
			require.True(t, ok)
			require.Equal(t, model[0], got)
			model = model[1:]
		}

		// cancel low-priority work
		removed := queue.EraseIf(func(tk task) bool { return tk.Priority == 0 })
		kept := model[:0]
		for _, tk := range model {
			if tk.Priority != 0 {
				kept = append(kept, tk)
			}
		}
		require.Equal(t, len(model)-len(kept), removed)
		model = kept

		name := fmt.Sprintf("queue/checkpoint-%03d.sgl", round)
		require.NoError(t, snapshot.Save(ctx, store, name, queue,
			snapshot.WithCompression(snapshot.Compression(round%3))))
	}

	names, err := store.List(ctx, "queue/")
	require.NoError(t, err)
	require.Len(t, names, 10)

	// restart with a different layout
	restored := newQueue(8)
	require.NoError(t, snapshot.LoadInto(ctx, store, names[len(names)-1], restored))
	assert.Equal(t, nilIfEmpty(model), nilIfEmpty(restored.ToSlice()))
	assert.Equal(t, 8, restored.SegmentCapacity())

	// the original layout is recorded in the snapshot
	again, err := snapshot.Load[task](ctx, store, names[len(names)-1])
	require.NoError(t, err)
	assert.Equal(t, 32, again.SegmentCapacity())
	assert.True(t, seglist.EqualFunc(restored, again, func(a, b task) bool { return a == b }))

	hits, _ := store.Stats()
	assert.Equal(t, int64(1), hits)
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
