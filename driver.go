package dmysssp

import "math"

// baseCaseFrontierSize is the |F| below which recursive_layer runs BMSSP
// directly instead of pivoting and partitioning again (spec §4.6 base
// case: "B is finite and |F| is small"). Below this size, pivoting
// cannot shrink the frontier any further than BMSSP already would.
const baseCaseFrontierSize = 4

// dmySSSP is the top-level entry of spec §4.6: it validates the source,
// allocates d (and p, if withParents), and kicks off the recursion with
// the frontier {source}, an infinite bound, and
// depth = ceil(log2(n+1)). withStats allocates the instrumentation
// accumulator only when the caller actually wants it (SSSPStatistics);
// every other entry point passes false and recursiveLayer/bmssp thread
// a nil *runStats through at no cost (see runStats's doc comment).
func dmySSSP(g *Graph, source VertexID, withParents, withStats bool, opts ...Option) (Distances, Parents, *runStats, error) {
	n := g.VertexCount()
	if int(source) < 1 || int(source) > n {
		return nil, nil, nil, ErrInvalidSource
	}

	cfg := resolveConfig(opts...)
	d := NewDistances(n, source)
	var p Parents
	if withParents {
		p = NewParents(n)
	}
	var stats *runStats
	if withStats {
		stats = newRunStats()
	}

	depth := int(math.Ceil(math.Log2(float64(n) + 1)))
	frontier := NewFrontierSet(source)
	if err := recursiveLayer(g, frontier, math.Inf(1), depth, d, p, cfg, stats); err != nil {
		return nil, nil, nil, err
	}
	if stats != nil {
		if stats.maxFrontier < 1 {
			stats.maxFrontier = 1
		}
		stats.recursionDepth = depth
	}
	return d, p, stats, nil
}

// recursiveLayer implements spec §4.6's recursive_layer. Termination:
// depth strictly decreases on every recursive call (each call's frontier
// is one block of the vertices with d < B, pivots excluded), so the
// recursion bottoms out at depth 0 at the latest, regardless of graph
// shape.
func recursiveLayer(g *Graph, F FrontierSet, B float64, depth int, d Distances, p Parents, cfg RunConfig, stats *runStats) error {
	if stats != nil && F.Len() > stats.maxFrontier {
		stats.maxFrontier = F.Len()
	}

	if depth == 0 || F.Len() <= 1 || (!math.IsInf(B, 1) && F.Len() <= baseCaseFrontierSize) {
		return bmssp(g, F, B, math.MaxInt32, d, p, stats)
	}

	pivots := SelectPivots(g, F, d, cfg.Pivot)
	pivotSet := NewFrontierSet(pivots...)
	if err := bmssp(g, pivotSet, B, cfg.RecursionConstant*F.Len(), d, p, stats); err != nil {
		return err
	}

	// F' = { v in 1..n : d[v] < B } minus the pivots bmssp just settled
	// (spec §4.6 step 3). Treating the pivot set itself as "settled" is
	// this module's resolution of the spec's informal settledness
	// definition; no other vertex is tested for settledness.
	next := make(FrontierSet)
	for v := 1; v <= g.VertexCount(); v++ {
		vid := VertexID(v)
		if d[vid] < B && !pivotSet.Has(vid) {
			next.Add(vid)
		}
	}
	if next.Len() == 0 {
		return nil
	}

	t := CalculatePartitionParameter(next.Len())
	blocks := PartitionBlocksAdaptive(next, B, t, d)
	for _, block := range blocks {
		if len(block.Members) == 0 {
			continue
		}
		if err := recursiveLayer(g, NewFrontierSet(block.Members...), block.UpperBound, depth-1, d, p, cfg, stats); err != nil {
			return err
		}
	}
	return nil
}
