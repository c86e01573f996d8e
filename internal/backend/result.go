package backend

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Result records one simulation run. It is immutable once created and is
// appended to the session history.
type Result struct {
	Counts    map[string]int
	Shots     int
	Elapsed   time.Duration
	Depth     int
	NumQubits int
}

// Outcome pairs a measured bitstring with its count.
type Outcome struct {
	State string
	Count int
}

// Sorted returns the outcomes ordered by count, most frequent first; ties
// break lexicographically so the ordering is stable across runs.
func (r *Result) Sorted() []Outcome {
	out := make([]Outcome, 0, len(r.Counts))
	for state, c := range r.Counts {
		out = append(out, Outcome{State: state, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].State < out[j].State
	})
	return out
}

// Probability returns the observed frequency of a bitstring.
func (r *Result) Probability(state string) float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Counts[state]) / float64(r.Shots)
}

// Entropy returns the Shannon entropy (nats) of the outcome distribution.
func (r *Result) Entropy() float64 {
	if r.Shots == 0 || len(r.Counts) == 0 {
		return 0
	}
	probs := make([]float64, 0, len(r.Counts))
	for _, c := range r.Counts {
		probs = append(probs, float64(c)/float64(r.Shots))
	}
	return stat.Entropy(probs)
}
