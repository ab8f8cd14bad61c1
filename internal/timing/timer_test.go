package timing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeArtifact creates an existing file so the Stat precondition passes.
func fakeArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench_bin")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o755))
	return path
}

type outcome struct {
	code int
	err  error
}

func repeat(o outcome, n int) []outcome {
	out := make([]outcome, n)
	for i := range out {
		out[i] = o
	}
	return out
}

// stubTimer returns a Timer whose run function replays the given outcomes in
// order.
func stubTimer(t *testing.T, outcomes []outcome) (*Timer, *int) {
	t.Helper()
	calls := 0
	tm := NewTimer()
	tm.Logger = slog.Default()
	tm.run = func(ctx context.Context, artifact string) (int, error) {
		require.Less(t, calls, len(outcomes), "more runs than scripted outcomes")
		o := outcomes[calls]
		calls++
		return o.code, o.err
	}
	return tm, &calls
}

func TestMeasureMissingArtifact(t *testing.T) {
	tm := NewTimer()
	tm.run = func(ctx context.Context, artifact string) (int, error) {
		t.Fatal("must not execute a missing artifact")
		return 0, nil
	}

	samples := tm.Measure(context.Background(), filepath.Join(t.TempDir(), "absent"), 5)
	assert.Empty(t, samples)
}

func TestMeasureSampleCount(t *testing.T) {
	// 5 iterations -> 7 executions: warm-up + 6 timed, first sample discarded.
	tm, calls := stubTimer(t, repeat(outcome{code: 0}, 7))

	samples := tm.Measure(context.Background(), fakeArtifact(t), 5)

	assert.Len(t, samples, 5)
	assert.Equal(t, 7, *calls)
	for _, s := range samples {
		assert.GreaterOrEqual(t, s, 0.0)
	}
}

func TestMeasureExitCodeOneAccepted(t *testing.T) {
	tm, _ := stubTimer(t, repeat(outcome{code: 1}, 5))

	samples := tm.Measure(context.Background(), fakeArtifact(t), 3)
	assert.Len(t, samples, 3)
}

func TestMeasureCrashDropsSingleSample(t *testing.T) {
	// warm-up, discard, good, crash (139), good
	tm, _ := stubTimer(t, []outcome{
		{code: 0}, {code: 0}, {code: 0}, {code: 139}, {code: 0},
	})

	samples := tm.Measure(context.Background(), fakeArtifact(t), 3)
	assert.Len(t, samples, 2)
}

func TestMeasureAllRunsFail(t *testing.T) {
	tm, _ := stubTimer(t, repeat(outcome{code: -1, err: errors.New("spawn failed")}, 4))

	samples := tm.Measure(context.Background(), fakeArtifact(t), 2)
	assert.Empty(t, samples)
}

func TestMeasureTimeoutDropsSample(t *testing.T) {
	// warm-up, discard, timeout, good, good
	tm, _ := stubTimer(t, []outcome{
		{code: 0}, {code: 0},
		{code: -1, err: context.DeadlineExceeded},
		{code: 0}, {code: 0},
	})

	samples := tm.Measure(context.Background(), fakeArtifact(t), 3)
	assert.Len(t, samples, 2)
}

func TestMeasureWarmupFailureStillDiscardsFirstSuccess(t *testing.T) {
	// Even when the warm-up execution itself fails, the first successful
	// timed sample is the one treated as warm-up.
	tm, _ := stubTimer(t, append([]outcome{{code: -1, err: errors.New("cold start crash")}},
		repeat(outcome{code: 0}, 3)...))

	samples := tm.Measure(context.Background(), fakeArtifact(t), 2)
	assert.Len(t, samples, 2)
}

func TestRealProcessExecution(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh available")
	}
	script := filepath.Join(t.TempDir(), "noop")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	tm := NewTimer()
	samples := tm.Measure(context.Background(), script, 2)

	assert.Len(t, samples, 2)
	for _, s := range samples {
		assert.Greater(t, s, 0.0)
	}
}
