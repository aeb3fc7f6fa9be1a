// Package numeric wraps gonum's floating-point tolerance helper so the
// rest of this module never hand-rolls an epsilon compare. It backs
// verify_shortest_path's real-valued comparisons (spec §6) and the
// pareto package's dominance tie tolerance (spec §4.7).
package numeric

import "gonum.org/v1/gonum/floats"

// DefaultAbsTol and DefaultRelTol bound the tolerance used by Equal
// below. They are generous enough to absorb float64 summation drift
// across a path of a few thousand edges without masking a genuine
// distance mismatch.
const (
	DefaultAbsTol = 1e-9
	DefaultRelTol = 1e-9
)

// Equal reports whether a and b are equal within DefaultAbsTol/RelTol,
// via gonum/floats.EqualWithinAbsOrRel.
func Equal(a, b float64) bool {
	return floats.EqualWithinAbsOrRel(a, b, DefaultAbsTol, DefaultRelTol)
}

// LessOrEqual reports a <= b within the same tolerance Equal uses, i.e.
// a <= b or Equal(a, b), for comparisons such as the triangle inequality
// (spec §8 property 3) where float summation can put a hair past b.
// Nothing in this module calls it at present.
func LessOrEqual(a, b float64) bool {
	return a <= b || Equal(a, b)
}
