package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"compilebench/internal/benchmark"
	"compilebench/internal/catalog"
	"compilebench/internal/config"
	"compilebench/internal/report"
	"compilebench/internal/timing"
	"compilebench/internal/toolchain"
	"compilebench/internal/ui"

	"github.com/spf13/cobra"
)

var (
	runProfile  string
	runCategory string
)

// Factory variables allow stubbing the engine and history store in tests.
var (
	newEngineFunc = newEngine
	openHistoryFn = report.OpenHistory
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compile and time the benchmark suite under one optimization profile",
	Long: `Compiles every catalog benchmark with the candidate and reference
toolchains under the selected optimization profile, runs each binary with a
warm-up discard, and reports minimum-of-N timings, ratios and category
averages. One CSV file per profile is written to the results directory.`,
	Args: cobra.NoArgs,
	RunE: runBenchmarks,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runProfile, "opt", "O", catalog.DefaultProfileName,
		"Optimization profile (O0, O1, O2, O3, Os)")
	runCmd.Flags().StringVarP(&runCategory, "category", "c", "",
		"Only run benchmarks in this category")
	runCmd.Flags().IntP("iterations", "i", 5, "Timed iterations per benchmark")
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	settings := config.HarnessSettings()
	// The flag wins over config only when the user actually set it.
	if cmd.Flags().Changed("iterations") {
		settings.Iterations, _ = cmd.Flags().GetInt("iterations")
	}

	if err := benchmark.Validate(runProfile, runCategory, settings.Iterations); err != nil {
		return err
	}
	profile, _ := catalog.LookupProfile(runProfile)
	benchmarks := catalog.Filter(runCategory)

	if err := os.MkdirAll(settings.BinDir, 0o755); err != nil {
		return fmt.Errorf("failed to create binary directory: %w", err)
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.Header(profile, runCategory, settings.Iterations, len(benchmarks))

	engine := newEngineFunc(settings)
	engine.OnResult = printer.Result

	slog.Info("starting benchmark run",
		"profile", profile.Name, "category", runCategory,
		"benchmarks", len(benchmarks), "iterations", settings.Iterations)

	results := engine.RunAll(cmd.Context(), benchmarks, profile)

	csvPath, err := report.WriteCSV(settings.ResultsDir, profile.Name, results)
	if err != nil {
		return fmt.Errorf("failed to persist results: %w", err)
	}
	printer.Summary(profile.Name, report.Summarize(results), csvPath)

	saveHistory(settings.HistoryDB, profile.Name, results)
	return nil
}

// saveHistory is best-effort: a broken history database must not discard a
// completed measurement run.
func saveHistory(path, profile string, results []benchmark.Result) {
	store, err := openHistoryFn(path)
	if err != nil {
		slog.Warn("history disabled for this run", "path", path, "error", err)
		return
	}
	defer store.Close()
	if _, err := store.SaveRun(profile, results); err != nil {
		slog.Warn("failed to record run history", "error", err)
	}
}

func newEngine(s config.Harness) *benchmark.Runner {
	candidate := toolchain.NewCompiler(s.CandidateBin)
	candidate.Timeout = time.Duration(s.CompileTimeoutSeconds) * time.Second
	reference := toolchain.NewCompiler(s.ReferenceBin)
	reference.Timeout = candidate.Timeout

	timer := timing.NewTimer()
	timer.Timeout = time.Duration(s.RunTimeoutSeconds) * time.Second

	return &benchmark.Runner{
		Candidate: candidate,
		Reference: reference,
		Timer:     timer,
		Layout: benchmark.Layout{
			CandidateDir: s.CandidateDir,
			ReferenceDir: s.ReferenceDir,
			CandidateExt: s.CandidateExt,
			ReferenceExt: s.ReferenceExt,
			BinDir:       s.BinDir,
		},
		Iterations: s.Iterations,
		Logger:     slog.Default(),
	}
}
