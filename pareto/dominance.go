package pareto

import "github.com/danielchen26/dmysssp/internal/numeric"

// dominates reports whether a's objective vector dominates b's under
// senses: a is at least as good as b in every dimension and strictly
// better in at least one (spec §4.7's dominance rule, with Maximize
// dimensions flipped so "better" always means "numerically smaller"
// internally).
func dominates(a, b []float64, senses []Sense) bool {
	strictlyBetter := false
	for i := range senses {
		av, bv := a[i], b[i]
		if senses[i] == Maximize {
			av, bv = -av, -bv
		}
		if av > bv && !numeric.Equal(av, bv) {
			return false
		}
		if av < bv && !numeric.Equal(av, bv) {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// dominatedByAny reports whether candidate is dominated by any label
// already present in the set, matching within tolerance.
func dominatedByAny(candidate []float64, set []*label, senses []Sense) bool {
	for _, l := range set {
		if dominates(l.objectives, candidate, senses) {
			return true
		}
	}
	return false
}

// pruneDominated removes every set member that candidate dominates,
// returning the surviving subset. Used when inserting a new label: a
// label set never holds two labels where one dominates the other.
func pruneDominated(set []*label, candidate []float64, senses []Sense) []*label {
	kept := set[:0]
	for _, l := range set {
		if !dominates(candidate, l.objectives, senses) {
			kept = append(kept, l)
		}
	}
	return kept
}
