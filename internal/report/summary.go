// Package report aggregates benchmark results into category summaries and
// persists them as CSV rows and sqlite run history.
package report

import (
	"sort"

	"compilebench/internal/benchmark"
)

// Status is the qualitative classification of a ratio, used only for
// human-readable output, never persisted.
type Status string

const (
	StatusNoData      Status = "no data"
	StatusCompetitive Status = "competitive"
	StatusSlower      Status = "slower"
	StatusNeedsWork   Status = "needs optimization"
)

// Classification thresholds. Fixed by convention, not configurable.
const (
	competitiveBelow = 1.10
	slowerBelow      = 2.0
)

// Classify maps a ratio to its qualitative status. The zero sentinel means
// the ratio was not computable.
func Classify(ratio float64) Status {
	switch {
	case ratio <= 0:
		return StatusNoData
	case ratio < competitiveBelow:
		return StatusCompetitive
	case ratio < slowerBelow:
		return StatusSlower
	default:
		return StatusNeedsWork
	}
}

// CategorySummary aggregates the benchmarks of one category. Means are taken
// over per-benchmark minimum times; sides with no data are excluded from
// their mean rather than dragging it to zero.
type CategorySummary struct {
	Category      string
	CandidateMean float64
	ReferenceMean float64
	Ratio         float64
	Benchmarks    int
}

// Summarize folds the result list into per-category summaries, ordered
// lexicographically by category. It is a pure function of its input.
func Summarize(results []benchmark.Result) []CategorySummary {
	grouped := make(map[string][]benchmark.Result)
	for _, r := range results {
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	cats := make([]string, 0, len(grouped))
	for c := range grouped {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	summaries := make([]CategorySummary, 0, len(cats))
	for _, cat := range cats {
		var candMins, refMins []float64
		for _, r := range grouped[cat] {
			if m := r.CandidateMin(); m > 0 {
				candMins = append(candMins, m)
			}
			if m := r.ReferenceMin(); m > 0 {
				refMins = append(refMins, m)
			}
		}

		s := CategorySummary{
			Category:      cat,
			CandidateMean: mean(candMins),
			ReferenceMean: mean(refMins),
			Benchmarks:    len(grouped[cat]),
		}
		if s.CandidateMean > 0 && s.ReferenceMean > 0 {
			s.Ratio = s.CandidateMean / s.ReferenceMean
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
