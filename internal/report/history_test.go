package report

import (
	"path/filepath"
	"testing"

	"compilebench/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestHistory(t *testing.T) *HistoryStore {
	t.Helper()
	store, err := OpenHistory(filepath.Join(t.TempDir(), "history", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHistorySaveAndList(t *testing.T) {
	store := openTestHistory(t)

	results := []benchmark.Result{
		{
			Name: "07_loop_sum", Category: "loop", Profile: "O2",
			CandidateBuilt: true, ReferenceBuilt: true,
			CandidateTimes: []float64{4.8}, ReferenceTimes: []float64{4.9},
		},
		{
			Name: "25_array_sum", Category: "memory", Profile: "O2",
			ReferenceBuilt: true, ReferenceTimes: []float64{3.0},
		},
	}

	id, err := store.SaveRun("O2", results)
	require.NoError(t, err)
	assert.Positive(t, id)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "O2", runs[0].Profile)
	assert.Equal(t, 2, runs[0].Benchmarks)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestHistoryListNewestFirst(t *testing.T) {
	store := openTestHistory(t)

	_, err := store.SaveRun("O0", nil)
	require.NoError(t, err)
	_, err = store.SaveRun("O3", nil)
	require.NoError(t, err)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "O3", runs[0].Profile)
	assert.Equal(t, "O0", runs[1].Profile)
}

func TestHistoryListLimit(t *testing.T) {
	store := openTestHistory(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun("O2", nil)
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestHistoryEmpty(t *testing.T) {
	store := openTestHistory(t)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
