// Package timing measures the wall-clock cost of running a compiled benchmark
// artifact. The artifact is a black box: each measurement wraps a full process
// spawn and exit, using the monotonic clock carried by time.Time.
package timing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// DefaultRunTimeout bounds a single execution of an artifact.
const DefaultRunTimeout = 60 * time.Second

// Benchmark programs conventionally exit 0 or 1; both count as a successful
// run. Anything else (crashes, aborts) drops that single sample.
var acceptedExit = map[int]bool{0: true, 1: true}

// runFunc executes an artifact once and returns its exit code. Spawn errors
// and timeouts surface as a non-nil error. Replaceable for tests.
type runFunc func(ctx context.Context, artifact string) (int, error)

// Timer runs artifacts repeatedly and collects elapsed wall-clock samples in
// fractional milliseconds.
type Timer struct {
	Timeout time.Duration
	Logger  *slog.Logger

	run runFunc
}

// NewTimer returns a Timer that spawns real processes.
func NewTimer() *Timer {
	return &Timer{
		Timeout: DefaultRunTimeout,
		Logger:  slog.Default(),
		run:     runProcess,
	}
}

// Measure executes artifact iterations+2 times: one untimed warm-up to pull
// the binary into the OS cache, then timed runs of which the first successful
// sample is also discarded. With no failures the result has exactly
// `iterations` samples; failed or timed-out runs shorten it, down to empty.
// An empty result means "no data", not zero cost.
func (t *Timer) Measure(ctx context.Context, artifact string, iterations int) []float64 {
	if _, err := os.Stat(artifact); err != nil {
		t.Logger.Debug("artifact missing, skipping measurement", "artifact", artifact)
		return nil
	}

	// Warm-up: outcome deliberately ignored.
	t.runOnce(ctx, artifact)

	var samples []float64
	warmDiscarded := false
	for i := 0; i < iterations+1; i++ {
		start := time.Now()
		code, err := t.runOnce(ctx, artifact)
		elapsed := time.Since(start)

		if err != nil || !acceptedExit[code] {
			t.Logger.Debug("run dropped", "artifact", artifact, "exit", code, "error", err)
			continue
		}
		if !warmDiscarded {
			warmDiscarded = true
			continue
		}
		samples = append(samples, float64(elapsed)/float64(time.Millisecond))
	}
	return samples
}

func (t *Timer) runOnce(ctx context.Context, artifact string) (int, error) {
	runCtx, cancel := context.WithTimeout(ctx, t.timeout())
	defer cancel()
	return t.run(runCtx, artifact)
}

func (t *Timer) timeout() time.Duration {
	if t.Timeout > 0 {
		return t.Timeout
	}
	return DefaultRunTimeout
}

func runProcess(ctx context.Context, artifact string) (int, error) {
	cmd := exec.CommandContext(ctx, artifact)
	// Output is irrelevant to timing; discard it.
	cmd.Stdout = nil
	cmd.Stderr = nil

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		return -1, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
