// Package ui renders harness progress and summaries for the console. It is
// presentation glue only: all numbers arrive precomputed from the report
// package.
package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"compilebench/internal/benchmark"
	"compilebench/internal/catalog"
	"compilebench/internal/report"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled harness output to a single destination.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header announces one harness invocation.
func (p *Printer) Header(profile catalog.Profile, category string, iterations, benchmarks int) {
	if category == "" {
		category = "all"
	}
	body := strings.Join([]string{
		"Candidate vs Reference Performance Benchmark Suite",
		"",
		fmt.Sprintf("Optimization:    %s (%s)", profile.Name, profile.Description),
		fmt.Sprintf("Category:        %s", category),
		fmt.Sprintf("Iterations:      %d", iterations),
		fmt.Sprintf("Candidate flags: %s", profile.CandidateFlags),
		fmt.Sprintf("Reference flags: %s", profile.ReferenceFlags),
	}, "\n")
	fmt.Fprintln(p.w, headerStyle.Render(body))
	fmt.Fprintln(p.w, sectionStyle.Render(fmt.Sprintf("Compiling and running %d benchmarks...", benchmarks)))
	fmt.Fprintln(p.w)
}

// Result renders one benchmark's outcome as it completes.
func (p *Printer) Result(r benchmark.Result) {
	rule := ruleStyle.Render(strings.Repeat("━", 64))
	fmt.Fprintln(p.w, rule)
	fmt.Fprintf(p.w, "%s (%s)\n", benchTitleStyle.Render("Benchmark: "+r.Name), r.Category)
	fmt.Fprintln(p.w, rule)

	p.side("Candidate", r.CandidateBuilt, r.CandidateTimes, r.CandidateMin())
	p.side("Reference", r.ReferenceBuilt, r.ReferenceTimes, r.ReferenceMin())

	if ratio := r.Ratio(); ratio > 0 {
		status := report.Classify(ratio)
		fmt.Fprintf(p.w, "  Ratio: %s (%s)\n", styleFor(status).Render(fmt.Sprintf("%.2fx", ratio)), status)
	}
	fmt.Fprintln(p.w)
}

func (p *Printer) side(label string, built bool, samples []float64, min float64) {
	switch {
	case built && len(samples) > 0:
		fmt.Fprintf(p.w, "  %-10s %10.3f ms (min of %d runs)\n", label+":", min, len(samples))
	case built:
		fmt.Fprintf(p.w, "  %s\n", failureStyle.Render(label+": all runs failed"))
	default:
		fmt.Fprintf(p.w, "  %s\n", failureStyle.Render(label+": compilation failed or not found"))
	}
}

// Summary renders the per-category table and where the CSV went.
func (p *Printer) Summary(profile string, summaries []report.CategorySummary, csvPath string) {
	fmt.Fprintln(p.w, headerStyle.Render(fmt.Sprintf("BENCHMARK SUMMARY (%s)", profile)))
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, sectionStyle.Render("Category averages (using min times):"))

	w := tabwriter.NewWriter(p.w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tCANDIDATE\tREFERENCE\tRATIO\tSTATUS")
	for _, s := range summaries {
		ratio := "n/a"
		if s.Ratio > 0 {
			ratio = fmt.Sprintf("%.2fx", s.Ratio)
		}
		fmt.Fprintf(w, "%s\t%.2f ms\t%.2f ms\t%s\t%s\n",
			s.Category, s.CandidateMean, s.ReferenceMean, ratio, report.Classify(s.Ratio))
	}
	w.Flush()

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "Results saved to:", csvPath)
}

// History renders persisted run records.
func (p *Printer) History(runs []report.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(p.w, "No recorded runs.")
		return
	}
	w := tabwriter.NewWriter(p.w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tPROFILE\tBENCHMARKS\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", r.ID, r.Profile, r.Benchmarks, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
}

func styleFor(status report.Status) lipgloss.Style {
	switch status {
	case report.StatusCompetitive:
		return competitiveStyle
	case report.StatusSlower:
		return slowerStyle
	case report.StatusNeedsWork:
		return needsWorkStyle
	default:
		return failureStyle
	}
}
