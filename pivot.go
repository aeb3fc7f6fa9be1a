package dmysssp

import (
	"math"
	"sort"
)

// PivotThreshold computes k, the target pivot count, from |F| per spec
// §4.3. It is monotonic non-decreasing in frontierSize — the only
// property the spec's test suite holds the formula to (the constants
// themselves are not normative).
func PivotThreshold(frontierSize int, cfg PivotConfig) int {
	if frontierSize <= 0 {
		return 1
	}
	f := float64(frontierSize)
	k := math.Pow(f, cfg.CubeRootExponent) * math.Pow(math.Log(f+1), cfg.LogExponent)
	k = math.Ceil(k)
	if k < 1 {
		k = 1
	}
	return int(k)
}

// SelectPivots chooses pivots P from frontier F (spec §4.3): order F by
// (d[v] ascending, out-degree descending, vertex id ascending) and take
// the first k = PivotThreshold(|F|) of them. Small-distance, high-fanout
// vertices are assumed to cover the most reachable subtree per pivot;
// vertex id breaks remaining ties so results are reproducible (spec §8
// byte-identical-output requirement).
func SelectPivots(g *Graph, frontier FrontierSet, d Distances, cfg PivotConfig) []VertexID {
	ordered := frontier.ToSlice()
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if d[a] != d[b] {
			return d[a] < d[b]
		}
		degA, degB := g.OutDegree(a), g.OutDegree(b)
		if degA != degB {
			return degA > degB
		}
		return a < b
	})

	k := PivotThreshold(len(ordered), cfg)
	if k > len(ordered) {
		k = len(ordered)
	}
	return ordered[:k]
}
