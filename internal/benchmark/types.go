package benchmark

// Result captures one benchmark's outcome under one optimization profile.
// It is assembled once by the Runner and never mutated; min, mean and ratio
// are derived from the raw samples on demand so they cannot drift.
type Result struct {
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Profile        string    `json:"profile"`
	CandidateBuilt bool      `json:"candidate_built"`
	ReferenceBuilt bool      `json:"reference_built"`
	CandidateTimes []float64 `json:"candidate_times_ms"`
	ReferenceTimes []float64 `json:"reference_times_ms"`
}

// CandidateMin returns the smallest candidate sample, or 0 with no samples.
func (r Result) CandidateMin() float64 { return minOf(r.CandidateTimes) }

// ReferenceMin returns the smallest reference sample, or 0 with no samples.
func (r Result) ReferenceMin() float64 { return minOf(r.ReferenceTimes) }

// CandidateMean returns the mean candidate sample, or 0 with no samples.
func (r Result) CandidateMean() float64 { return meanOf(r.CandidateTimes) }

// ReferenceMean returns the mean reference sample, or 0 with no samples.
func (r Result) ReferenceMean() float64 { return meanOf(r.ReferenceTimes) }

// Ratio compares the two sides using minimum times, the least
// noise-corrupted statistic for short scheduler-perturbed processes.
// A ratio above 1 means the candidate is slower. 0 is the "not computable"
// sentinel, returned whenever either side lacks a positive minimum; it must
// never be read as "infinitely fast".
func (r Result) Ratio() float64 {
	cmin, rmin := r.CandidateMin(), r.ReferenceMin()
	if cmin > 0 && rmin > 0 {
		return cmin / rmin
	}
	return 0
}

func minOf(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	m := samples[0]
	for _, s := range samples[1:] {
		if s < m {
			m = s
		}
	}
	return m
}

func meanOf(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}
