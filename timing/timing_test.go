package timing_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visigraph/visigraph/timing"
)

func TestRecorder_StartStop(t *testing.T) {
	rec := timing.NewRecorder()

	rec.Start(0, "work")
	assert.True(t, rec.Running(0))
	assert.Equal(t, "work", rec.Name(0))

	time.Sleep(time.Millisecond)
	d := rec.Stop(0)
	assert.Greater(t, d, time.Duration(0))
	assert.False(t, rec.Running(0))
	assert.Equal(t, d, rec.Elapsed(0))
}

func TestRecorder_StopWithoutStart(t *testing.T) {
	rec := timing.NewRecorder()
	assert.Zero(t, rec.Stop(0))
	assert.Zero(t, rec.Stop(5))
	assert.Zero(t, rec.Elapsed(3))
	assert.False(t, rec.Running(-1))
	assert.Empty(t, rec.Name(9))
}

func TestRecorder_RestartDiscardsInFlight(t *testing.T) {
	rec := timing.NewRecorder()
	rec.Start(1, "first")
	rec.Start(1, "second")
	require.Equal(t, "second", rec.Name(1))
	require.True(t, rec.Running(1))
	rec.Stop(1)
	assert.Equal(t, "second", rec.Name(1))
}

func TestRecorder_SparseSlotIDs(t *testing.T) {
	rec := timing.NewRecorder()
	rec.Start(7, "late")
	d := rec.Stop(7)
	assert.Equal(t, d, rec.Elapsed(7))

	// Negative ids are ignored, not grown.
	rec.Start(-2, "nope")
	assert.False(t, rec.Running(-2))
}

func TestRecorder_HistogramObservation(t *testing.T) {
	h := timing.NewHistogram("visigraph_test_seconds", "test timings")
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(h))

	rec := timing.NewRecorder(timing.WithHistogram(h))
	rec.Start(0, "bfs")
	rec.Stop(0)
	rec.Start(0, "bfs")
	rec.Stop(0)
	rec.Start(1, "dfs")
	rec.Stop(1)

	// One series per slot name.
	assert.Equal(t, 2, testutil.CollectAndCount(h))
}

func TestWithHistogram_NilPanics(t *testing.T) {
	assert.Panics(t, func() { timing.WithHistogram(nil) })
}
