package pareto

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// KneePoint selects the point of maximum curvature along the Pareto
// front (spec §4.8): objectives are min-max normalized per dimension
// (the front carries no senses, so no dimension is flipped; mirroring an
// axis would not change any turn angle), the front is ordered by
// normalized first objective, and each
// interior point's turn angle against its two neighbors is measured.
// The sharpest turn (largest angle) is the knee; ties go to the
// smaller raw first objective.
func KneePoint(front []ParetoSolution) (*ParetoSolution, error) {
	if len(front) == 0 {
		return nil, ErrEmptyFront
	}
	if len(front) == 1 {
		return &front[0], nil
	}

	normalized := normalizeObjectives(front)
	order := make([]int, len(front))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return normalized[order[i]][0] < normalized[order[j]][0]
	})

	if len(front) == 2 {
		return pickByFirstObjective(front, order[0], order[1]), nil
	}

	bestPos := -1
	bestAngle := math.Inf(-1)
	for pos := 1; pos < len(order)-1; pos++ {
		prev := normalized[order[pos-1]]
		cur := normalized[order[pos]]
		next := normalized[order[pos+1]]
		angle := turnAngle(prev, cur, next)
		if angle > bestAngle {
			bestAngle = angle
			bestPos = pos
		} else if angle == bestAngle {
			i, j := order[pos], order[bestPos]
			if front[i].Objectives[0] < front[j].Objectives[0] {
				bestPos = pos
			}
		}
	}
	return &front[order[bestPos]], nil
}

func pickByFirstObjective(front []ParetoSolution, i, j int) *ParetoSolution {
	if front[j].Objectives[0] < front[i].Objectives[0] {
		return &front[j]
	}
	return &front[i]
}

// turnAngle returns the angle, in radians, between the incoming
// direction (prev->cur) and outgoing direction (cur->next). Larger
// means a sharper bend (0 is a straight line).
func turnAngle(prev, cur, next []float64) float64 {
	v1 := make([]float64, len(cur))
	v2 := make([]float64, len(cur))
	for i := range cur {
		v1[i] = cur[i] - prev[i]
		v2[i] = next[i] - cur[i]
	}
	dot := floats.Dot(v1, v2)
	n1 := floats.Norm(v1, 2)
	n2 := floats.Norm(v2, 2)
	if n1 == 0 || n2 == 0 {
		return 0
	}
	cos := dot / (n1 * n2)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// normalizeObjectives min-max normalizes every dimension to [0,1]
// across the front, mapping each dimension's minimum to 0 and maximum
// to 1. A degenerate (constant) dimension normalizes to all zeros.
func normalizeObjectives(front []ParetoSolution) [][]float64 {
	dims := len(front[0].Objectives)
	lo := make([]float64, dims)
	hi := make([]float64, dims)
	for d := 0; d < dims; d++ {
		col := make([]float64, len(front))
		for i, sol := range front {
			col[i] = sol.Objectives[d]
		}
		lo[d] = floats.Min(col)
		hi[d] = floats.Max(col)
	}
	out := make([][]float64, len(front))
	for i, sol := range front {
		row := make([]float64, dims)
		for d := 0; d < dims; d++ {
			span := hi[d] - lo[d]
			if span > 0 {
				row[d] = (sol.Objectives[d] - lo[d]) / span
			}
		}
		out[i] = row
	}
	return out
}
