package dmysssp

import "github.com/danielchen26/dmysssp/internal/numeric"

// ReconstructPath walks p backwards from target to source (spec §6). It
// returns an empty slice if target is unreachable (p[target] is
// noParent and target != source), and [source] if source == target.
func ReconstructPath(p Parents, source, target VertexID) []VertexID {
	if source == target {
		return []VertexID{source}
	}
	if p == nil || int(target) >= len(p) || int(target) < 1 {
		return nil
	}

	var reversed []VertexID
	cur := target
	for {
		reversed = append(reversed, cur)
		if cur == source {
			break
		}
		parent := p[cur]
		if parent == noParent {
			return nil // unreachable: walk hit a vertex with no recorded parent before reaching source
		}
		cur = parent
	}

	path := make([]VertexID, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}
	return path
}

// PathLength sums the edge weights along path, failing with
// ErrInvalidPath if any consecutive pair is not a graph edge.
func PathLength(g *Graph, path []VertexID) (float64, error) {
	if len(path) < 2 {
		return 0, nil
	}
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		w, ok := edgeWeight(g, path[i], path[i+1])
		if !ok {
			return 0, ErrInvalidPath
		}
		total += w
	}
	return total, nil
}

// VerifyShortestPath reports whether claimedPath is a valid source->target
// walk in g whose length equals d[target] (spec §6). An empty claimedPath
// is accepted exactly when d[target] is Inf (target unreachable).
func VerifyShortestPath(g *Graph, source, target VertexID, d Distances, claimedPath []VertexID) bool {
	if len(claimedPath) == 0 {
		return int(target) < len(d) && d[target] == Inf
	}
	if claimedPath[0] != source || claimedPath[len(claimedPath)-1] != target {
		return false
	}
	length, err := PathLength(g, claimedPath)
	if err != nil {
		return false
	}
	return numeric.Equal(length, d[target])
}

func edgeWeight(g *Graph, u, v VertexID) (float64, bool) {
	for i, e := range g.OutEdges(u) {
		if e.Target == v {
			return g.Weight(u, i), true
		}
	}
	return 0, false
}
