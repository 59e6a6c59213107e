package seglist

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsObserver(t *testing.T) {
	obs := &BasicMetricsObserver{}
	l, err := New(WithSegmentCapacity[int](4), WithMetricsObserver[int](obs))
	require.NoError(t, err)

	for i := range 9 {
		require.NoError(t, l.PushBack(i))
	}
	stats := obs.GetStats()
	assert.Equal(t, int64(3), stats.SegmentsAllocated)
	assert.Equal(t, int64(3), stats.SegmentsLive)
	assert.Equal(t, int64(12), stats.SlotsLive)

	require.NoError(t, l.Resize(4))
	stats = obs.GetStats()
	assert.Equal(t, int64(2), stats.SegmentsReleased)
	assert.Equal(t, int64(1), stats.SegmentsLive)

	l.Clear()
	assert.Equal(t, int64(0), obs.GetStats().SlotsLive)
}

func TestNoopMetricsObserver(t *testing.T) {
	var obs MetricsObserver = NoopMetricsObserver{}
	obs.OnSegmentAllocated(1)
	obs.OnSegmentReleased(1)
	obs.OnAllocationFailed(1, errors.New("x"))
}

func TestLogger_SegmentEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).WithList("events")

	l, err := New(WithSegmentCapacity[int](2), WithLogger[int](logger))
	require.NoError(t, err)
	for i := range 3 {
		require.NoError(t, l.PushBack(i))
	}
	_, _ = l.PopBack()
	require.NoError(t, l.PushBack(2))
	require.NoError(t, l.PushBack(3))
	_, _ = l.PopBack()
	require.NoError(t, l.ShrinkToFit())

	out := buf.String()
	assert.Contains(t, out, "segment linked")
	assert.Contains(t, out, "segment unlinked")
	assert.Contains(t, out, "tail shrunk")
	assert.Contains(t, out, "list=events")
}

func TestLogger_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l, err := New(WithSegmentCapacity[int](1), WithLogger[int](logger))
	require.NoError(t, err)
	require.NoError(t, l.PushBack(1))
	require.NoError(t, l.PushBack(2))
	assert.Empty(t, buf.String())
}

func TestLogger_Snapshot(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	logger.LogSnapshot(context.Background(), "save", "a.sgl", 10, 128, time.Millisecond, nil)
	assert.Contains(t, buf.String(), `"msg":"snapshot save completed"`)
	assert.Contains(t, buf.String(), `"elements":10`)
	assert.Contains(t, buf.String(), `"size":"128 B"`)

	buf.Reset()
	logger.LogSnapshot(context.Background(), "load", "a.sgl", 0, 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.False(t, NoopLogger().Enabled(context.Background(), slog.LevelError))

	l, err := New(WithLogLevel[int](slog.LevelWarn))
	require.NoError(t, err)
	require.NoError(t, l.PushBack(1))
}
