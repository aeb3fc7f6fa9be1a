package dmysssp

import (
	"fmt"
	"math"
)

// VertexID identifies a vertex. Vertices are numbered 1..n; 0 is never
// a valid vertex id, which lets Option[VertexID] be represented as a
// plain VertexID with 0 meaning "none" (see Parents in distances.go).
type VertexID int

// EdgeID is a stable identity for an edge, unique across 1..|E|. External
// tables (multi-objective edge-cost vectors, for instance) key off it.
type EdgeID int

// Edge is a directed connection Source->Target carrying its own id.
type Edge struct {
	Source VertexID
	Target VertexID
	ID     EdgeID
}

// Graph is an immutable directed graph over vertices 1..N with
// non-negative finite edge weights. It is logically a CSR (compressed
// sparse row) structure: edges are stored once, grouped by source
// vertex, and each vertex's outgoing range is precomputed at
// construction so OutEdges is O(deg(v)).
//
// A Graph is safe to share by read across concurrent SSSP calls; nothing
// in this package mutates a Graph after NewGraph returns.
type Graph struct {
	n           int
	edges       []Edge             // all edges, grouped by Source (see start/outDeg)
	weights     []float64          // weights[i] is the weight of edges[i]
	start       []int              // start[v] is the index into edges/weights where v's out-edges begin, 1-indexed, len n+2
	outDeg      []int              // outDeg[v] is the out-degree of v, 1-indexed, len n+1
	maxDeg      int
	weightByID  map[EdgeID]float64 // edge_id -> weight, built once at construction (spec §4.1's weight(edge_id))
}

// NewGraph validates (n, edges, weights) and builds the adjacency
// structure described in spec §4.1. It fails if any endpoint is out of
// range, any weight is negative or non-finite, the edges/weights slices
// disagree in length, or two edges share an id. Ids are not checked
// against the range 1..|E|.
func NewGraph(n int, edges []Edge, weights []float64) (*Graph, error) {
	if len(edges) != len(weights) {
		return nil, &InvalidGraphError{Reason: ReasonLengthMismatch}
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, &InvalidGraphError{Reason: ReasonNegativeOrNonFiniteWeight,
				Detail: weightDetail(edges[i].ID, w)}
		}
	}
	seen := make(map[EdgeID]bool, len(edges))
	for _, e := range edges {
		if int(e.Source) < 1 || int(e.Source) > n || int(e.Target) < 1 || int(e.Target) > n {
			return nil, &InvalidGraphError{Reason: ReasonEndpointOutOfRange,
				Detail: endpointDetail(e)}
		}
		if seen[e.ID] {
			return nil, &InvalidGraphError{Reason: ReasonDuplicateEdgeID,
				Detail: idDetail(e.ID)}
		}
		seen[e.ID] = true
	}

	// Group edges by source with a counting sort, keeping edges with the
	// same source in their original relative order (stable), so adjacency
	// iteration is deterministic given the input order.
	outDeg := make([]int, n+1)
	for _, e := range edges {
		outDeg[e.Source]++
	}
	start := make([]int, n+2)
	for v := 1; v <= n; v++ {
		start[v+1] = start[v] + outDeg[v]
	}
	sortedEdges := make([]Edge, len(edges))
	sortedWeights := make([]float64, len(edges))
	cursor := make([]int, n+1)
	copy(cursor, start[:n+1])
	for i, e := range edges {
		pos := cursor[e.Source]
		sortedEdges[pos] = e
		sortedWeights[pos] = weights[i]
		cursor[e.Source]++
	}

	maxDeg := 0
	for v := 1; v <= n; v++ {
		if outDeg[v] > maxDeg {
			maxDeg = outDeg[v]
		}
	}

	weightByID := make(map[EdgeID]float64, len(edges))
	for i, e := range sortedEdges {
		weightByID[e.ID] = sortedWeights[i]
	}

	return &Graph{
		n:          n,
		edges:      sortedEdges,
		weights:    sortedWeights,
		start:      start,
		outDeg:     outDeg,
		maxDeg:     maxDeg,
		weightByID: weightByID,
	}, nil
}

// VertexCount returns n, the number of vertices (numbered 1..n).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of outgoing edges from v. O(1).
func (g *Graph) OutDegree(v VertexID) int {
	if int(v) < 1 || int(v) > g.n {
		return 0
	}
	return g.outDeg[v]
}

// MaxOutDegree returns the largest out-degree over all vertices.
func (g *Graph) MaxOutDegree() int { return g.maxDeg }

// OutEdges returns the slice of v's outgoing edges, in construction
// order. The returned slice aliases the graph's internal storage and
// must not be mutated. O(1) to obtain the slice header; iterating it is
// O(deg(v)).
func (g *Graph) OutEdges(v VertexID) []Edge {
	if int(v) < 1 || int(v) > g.n {
		return nil
	}
	return g.edges[g.start[v]:g.start[v+1]]
}

// OutWeights returns the weights parallel to OutEdges(v).
func (g *Graph) OutWeights(v VertexID) []float64 {
	if int(v) < 1 || int(v) > g.n {
		return nil
	}
	return g.weights[g.start[v]:g.start[v+1]]
}

// Weight returns the weight of outgoing edge i (as returned by OutEdges)
// at the same index within OutWeights. Kept as a convenience for callers
// that hold an (Edge, index) pair from OutEdges together with OutWeights.
func (g *Graph) Weight(v VertexID, idx int) float64 {
	return g.weights[g.start[v]+idx]
}

// WeightByID returns the weight of the edge with the given id (spec
// §4.1's weight(edge_id) operation), O(1) regardless of which vertex
// the edge belongs to. ok is false if no edge with that id exists.
func (g *Graph) WeightByID(id EdgeID) (w float64, ok bool) {
	w, ok = g.weightByID[id]
	return w, ok
}

func weightDetail(id EdgeID, w float64) string {
	return fmt.Sprintf("edge %d has weight %v", id, w)
}

func endpointDetail(e Edge) string {
	return fmt.Sprintf("edge %d (%d->%d)", e.ID, e.Source, e.Target)
}

func idDetail(id EdgeID) string {
	return fmt.Sprintf("edge id %d", id)
}
