// Package benchmark orchestrates the compile-then-measure cycle for each
// catalog entry and assembles immutable Results for aggregation.
package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"compilebench/internal/catalog"
	"compilebench/internal/toolchain"
)

// Builder compiles one side's source into a runnable artifact.
type Builder interface {
	Build(ctx context.Context, source, output, flags string) toolchain.BuildResult
}

// Measurer times repeated executions of an artifact, returning samples in
// milliseconds.
type Measurer interface {
	Measure(ctx context.Context, artifact string, iterations int) []float64
}

// Layout resolves where benchmark sources live and where artifacts go.
// Paths are deterministic per (benchmark, profile) so re-runs overwrite
// prior artifacts instead of accumulating.
type Layout struct {
	CandidateDir string
	ReferenceDir string
	CandidateExt string
	ReferenceExt string
	BinDir       string
}

// CandidateSource returns the candidate-side source path for a benchmark.
func (l Layout) CandidateSource(name string) string {
	return filepath.Join(l.CandidateDir, name+"."+l.CandidateExt)
}

// ReferenceSource returns the reference-side source path for a benchmark.
func (l Layout) ReferenceSource(name string) string {
	return filepath.Join(l.ReferenceDir, name+"."+l.ReferenceExt)
}

// CandidateArtifact returns the candidate binary path for a benchmark/profile.
func (l Layout) CandidateArtifact(name, profile string) string {
	return filepath.Join(l.BinDir, fmt.Sprintf("%s_candidate_%s", name, strings.ToLower(profile)))
}

// ReferenceArtifact returns the reference binary path for a benchmark/profile.
func (l Layout) ReferenceArtifact(name, profile string) string {
	return filepath.Join(l.BinDir, fmt.Sprintf("%s_reference_%s", name, strings.ToLower(profile)))
}

// Runner drives the full cycle for each benchmark, strictly sequentially.
// Concurrency is deliberately absent: parallel runs on one host contend for
// CPU and cache and would corrupt the timings being collected.
type Runner struct {
	Candidate  Builder
	Reference  Builder
	Timer      Measurer
	Layout     Layout
	Iterations int
	Logger     *slog.Logger

	// OnResult, when set, observes each Result as it completes. Used by the
	// CLI for progress rendering; the core never depends on it.
	OnResult func(Result)
}

// Validate rejects configurations the core refuses to run with. The CLI
// checks the same conditions at the flag boundary; this is the backstop.
func Validate(profileName, category string, iterations int) error {
	if _, ok := catalog.LookupProfile(profileName); !ok {
		return fmt.Errorf("unknown optimization profile %q (known: %s)",
			profileName, strings.Join(catalog.ProfileNames(), ", "))
	}
	if category != "" && !catalog.IsKnownCategory(category) {
		return fmt.Errorf("unknown category %q (known: %s)",
			category, strings.Join(catalog.Categories(), ", "))
	}
	if iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	return nil
}

// RunOne executes the compile-then-measure cycle for a single benchmark.
// It never fails: build failures and dropped runs are encoded in the Result's
// built booleans and sample lengths, so asymmetric failures stay visible.
func (r *Runner) RunOne(ctx context.Context, b catalog.Benchmark, p catalog.Profile) Result {
	res := Result{
		Name:     b.Name,
		Category: b.Category,
		Profile:  p.Name,
	}

	candBin := r.Layout.CandidateArtifact(b.Name, p.Name)
	refBin := r.Layout.ReferenceArtifact(b.Name, p.Name)

	res.CandidateBuilt = r.Candidate.Build(ctx, r.Layout.CandidateSource(b.Name), candBin, p.CandidateFlags).OK
	res.ReferenceBuilt = r.Reference.Build(ctx, r.Layout.ReferenceSource(b.Name), refBin, p.ReferenceFlags).OK

	if res.CandidateBuilt {
		res.CandidateTimes = r.Timer.Measure(ctx, candBin, r.Iterations)
	}
	if res.ReferenceBuilt {
		res.ReferenceTimes = r.Timer.Measure(ctx, refBin, r.Iterations)
	}

	r.logger().Debug("benchmark complete",
		"name", b.Name, "profile", p.Name,
		"candidate_built", res.CandidateBuilt, "reference_built", res.ReferenceBuilt,
		"candidate_samples", len(res.CandidateTimes), "reference_samples", len(res.ReferenceTimes))
	return res
}

// RunAll runs every given benchmark under one profile, in order, and returns
// the full result set. Ordering affects only wall-clock duration, never
// correctness: benchmarks are fully independent.
func (r *Runner) RunAll(ctx context.Context, benchmarks []catalog.Benchmark, p catalog.Profile) []Result {
	results := make([]Result, 0, len(benchmarks))
	for _, b := range benchmarks {
		res := r.RunOne(ctx, b, p)
		results = append(results, res)
		if r.OnResult != nil {
			r.OnResult(res)
		}
	}
	return results
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
