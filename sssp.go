package dmysssp

// SSSP runs the DMY engine from source and returns d[1..n] (spec §6).
// Unreachable vertices hold Inf. Index 0 of the returned slice is
// unused (vertices are numbered 1..n).
func SSSP(g *Graph, source VertexID, opts ...Option) (Distances, error) {
	d, _, _, err := dmySSSP(g, source, false, false, opts...)
	return d, err
}

// SSSPWithParents is SSSP plus a parent array for path reconstruction
// (spec §6).
func SSSPWithParents(g *Graph, source VertexID, opts ...Option) (Distances, Parents, error) {
	d, p, _, err := dmySSSP(g, source, true, false, opts...)
	return d, p, err
}

// SSSPBounded runs SSSP but reports any vertex whose true distance is
// >= B as Inf, per spec §6. It works by running the full, unbounded
// engine and then clamping the result; B does not limit the traversal
// itself.
func SSSPBounded(g *Graph, source VertexID, B float64, opts ...Option) (Distances, error) {
	d, _, _, err := dmySSSP(g, source, false, false, opts...)
	if err != nil {
		return nil, err
	}
	for v := range d {
		if v == 0 {
			continue
		}
		if d[v] >= B {
			d[v] = Inf
		}
	}
	return d, nil
}

// SSSPStatistics runs the engine from source and reports the
// instrumentation counters spec §6 names (relaxations, pivot rounds,
// max frontier size, recursion depth).
func SSSPStatistics(g *Graph, source VertexID, opts ...Option) (Statistics, error) {
	_, _, stats, err := dmySSSP(g, source, false, true, opts...)
	if err != nil {
		return Statistics{}, err
	}
	return stats.snapshot(), nil
}
