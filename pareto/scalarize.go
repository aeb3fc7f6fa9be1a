package pareto

import (
	"fmt"
	"sort"

	"github.com/danielchen26/dmysssp"
)

// WeightedSum collapses a MultiGraph into a single scalar Graph via
// sum(weights[i] * objective[i]) and runs the scalar DMY engine on it
// (spec §4.8's first scalarization strategy). Every sense must be
// Minimize -- a Maximize dimension would need weights[i] to be
// negative for the sum to stay a valid non-negative scalar weight,
// which the scalar engine's non-negativity invariant rules out, so
// callers must pre-negate or drop that dimension before calling this.
func WeightedSum(g *MultiGraph, source, target VertexID, weights []float64) (*ParetoSolution, error) {
	if len(weights) != g.Dimensions() {
		return nil, fmt.Errorf("pareto: weights length %d does not match %d objective dimensions", len(weights), g.Dimensions())
	}
	for _, s := range g.Senses() {
		if s == Maximize {
			return nil, ErrUnsupportedSense
		}
	}

	scalarEdges := make([]dmysssp.Edge, 0)
	scalarWeights := make([]float64, 0)
	for v := 1; v <= g.VertexCount(); v++ {
		for _, e := range g.OutEdges(VertexID(v)) {
			w := 0.0
			for i, obj := range e.Objectives {
				w += weights[i] * obj
			}
			scalarEdges = append(scalarEdges, dmysssp.Edge{Source: e.Source, Target: e.Target, ID: e.ID})
			scalarWeights = append(scalarWeights, w)
		}
	}
	sg, err := dmysssp.NewGraph(g.VertexCount(), scalarEdges, scalarWeights)
	if err != nil {
		return nil, fmt.Errorf("pareto: weighted-sum scalar graph: %w", err)
	}

	d, p, err := dmysssp.SSSPWithParents(sg, source)
	if err != nil {
		return nil, err
	}
	if d[target] == dmysssp.Inf {
		return nil, ErrInfeasible
	}
	path := dmysssp.ReconstructPath(p, source, target)
	return &ParetoSolution{
		Objectives: sumObjectivesAlongPath(g, path),
		Path:       path,
	}, nil
}

// EpsilonConstraint enumerates the Pareto front and returns the
// solution that minimizes the primary objective among those whose
// remaining objectives[i] <= upperBounds[i] for every i != primary
// (spec §4.8's second strategy). upperBounds must have the same
// length as the graph's dimension count; the primary entry is ignored.
func EpsilonConstraint(g *MultiGraph, source, target VertexID, primary int, upperBounds []float64, maxSolutions int) (*ParetoSolution, error) {
	front, err := ComputeParetoFront(g, source, target, maxSolutions)
	if err != nil {
		return nil, err
	}
	var best *ParetoSolution
	for i := range front {
		sol := front[i]
		feasible := true
		for d, bound := range upperBounds {
			if d == primary {
				continue
			}
			if sol.Objectives[d] > bound {
				feasible = false
				break
			}
		}
		if !feasible {
			continue
		}
		if best == nil || sol.Objectives[primary] < best.Objectives[primary] {
			best = &sol
		}
	}
	if best == nil {
		return nil, ErrInfeasible
	}
	return best, nil
}

// Lexicographic orders the Pareto front by priority (a permutation of
// dimension indices, most important first) and returns the front
// member that is lexicographically smallest under that order (spec
// §4.8's third strategy).
func Lexicographic(g *MultiGraph, source, target VertexID, priority []int, maxSolutions int) (*ParetoSolution, error) {
	front, err := ComputeParetoFront(g, source, target, maxSolutions)
	if err != nil {
		return nil, err
	}
	if len(front) == 0 {
		return nil, ErrEmptyFront
	}
	sort.Slice(front, func(i, j int) bool {
		for _, d := range priority {
			oi, oj := front[i].Objectives[d], front[j].Objectives[d]
			if oi != oj {
				return oi < oj
			}
		}
		return false
	})
	return &front[0], nil
}

func sumObjectivesAlongPath(g *MultiGraph, path []VertexID) []float64 {
	sum := make([]float64, g.Dimensions())
	for i := 0; i+1 < len(path); i++ {
		for _, e := range g.OutEdges(path[i]) {
			if e.Target == path[i+1] {
				for d, v := range e.Objectives {
					sum[d] += v
				}
				break
			}
		}
	}
	return sum
}
