package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"compilebench/internal/benchmark"
)

// csvHeader is the persisted report schema. Column order is part of the
// format and must not change between runs.
var csvHeader = []string{"profile", "name", "category", "candidate_min_ms", "reference_min_ms", "ratio"}

// WriteCSV persists one row per result to
// <dir>/benchmark_results_<profile>.csv, creating dir if needed. The file is
// keyed by profile so runs under different profiles keep separate histories.
// It returns the written path.
func WriteCSV(dir, profile string, results []benchmark.Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("benchmark_results_%s.csv", strings.ToLower(profile)))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Profile,
			r.Name,
			r.Category,
			fmt.Sprintf("%.3f", r.CandidateMin()),
			fmt.Sprintf("%.3f", r.ReferenceMin()),
			fmt.Sprintf("%.2f", r.Ratio()),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row for %s: %w", r.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush results: %w", err)
	}
	return path, nil
}
