package pareto

import (
	"math"

	"github.com/danielchen26/dmysssp"
)

// VertexID and EdgeID are aliases for the scalar engine's identifiers,
// so a MultiGraph can be built against the same vertex/edge numbering
// as a scalar Graph over the same problem (spec §3: "same vertex/edge
// structure as the scalar graph").
type VertexID = dmysssp.VertexID
type EdgeID = dmysssp.EdgeID

// Sense is the optimization direction of one objective dimension.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// MultiEdge is a directed edge carrying a vector of objective values,
// one per dimension of the owning MultiGraph's senses.
type MultiEdge struct {
	Source     VertexID
	Target     VertexID
	ID         EdgeID
	Objectives []float64
}

// MultiGraph is the vector-cost counterpart of dmysssp.Graph (spec §3).
// Like Graph, it is immutable after construction and adjacency is
// precomputed once.
type MultiGraph struct {
	n       int
	senses  []Sense
	edges   []MultiEdge
	start   []int
	outDeg  []int
}

// NewMultiGraph validates and builds a MultiGraph. Every edge's
// Objectives must have exactly len(senses) entries, all finite and
// non-negative (the same non-negativity the scalar Graph requires,
// spec §1's scope is non-negative weighted graphs throughout); vertex
// endpoints must lie in 1..n.
func NewMultiGraph(n int, edges []MultiEdge, senses []Sense) (*MultiGraph, error) {
	if len(senses) == 0 {
		return nil, &InvalidMultiGraphError{Detail: "at least one objective dimension is required"}
	}
	for _, e := range edges {
		if int(e.Source) < 1 || int(e.Source) > n || int(e.Target) < 1 || int(e.Target) > n {
			return nil, &InvalidMultiGraphError{Detail: "edge endpoint out of range"}
		}
		if len(e.Objectives) != len(senses) {
			return nil, &InvalidMultiGraphError{Detail: "edge objective vector length does not match sense vector"}
		}
		for _, v := range e.Objectives {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, &InvalidMultiGraphError{Detail: "negative or non-finite objective value"}
			}
		}
	}

	outDeg := make([]int, n+1)
	for _, e := range edges {
		outDeg[e.Source]++
	}
	start := make([]int, n+2)
	for v := 1; v <= n; v++ {
		start[v+1] = start[v] + outDeg[v]
	}
	sorted := make([]MultiEdge, len(edges))
	cursor := make([]int, n+1)
	copy(cursor, start[:n+1])
	for _, e := range edges {
		sorted[cursor[e.Source]] = e
		cursor[e.Source]++
	}

	return &MultiGraph{n: n, senses: append([]Sense(nil), senses...), edges: sorted, start: start, outDeg: outDeg}, nil
}

// VertexCount returns n.
func (g *MultiGraph) VertexCount() int { return g.n }

// Senses returns the objective sense vector, in dimension order.
func (g *MultiGraph) Senses() []Sense { return g.senses }

// Dimensions returns the number of objective dimensions.
func (g *MultiGraph) Dimensions() int { return len(g.senses) }

// OutEdges returns v's outgoing edges, aliasing internal storage.
func (g *MultiGraph) OutEdges(v VertexID) []MultiEdge {
	if int(v) < 1 || int(v) > g.n {
		return nil
	}
	return g.edges[g.start[v]:g.start[v+1]]
}

// ParetoSolution is one non-dominated path from source to target (spec §3).
type ParetoSolution struct {
	Objectives []float64
	Path       []VertexID
	Edges      []EdgeID
}

// label is one entry in a vertex's non-dominated label set during
// compute_pareto_front's search (spec §4.7). parent is nil for the
// source's initial zero-vector label.
type label struct {
	objectives []float64
	vertex     VertexID
	parent     *label
	viaEdge    EdgeID
}

func (l *label) path() []VertexID {
	var reversed []VertexID
	for cur := l; cur != nil; cur = cur.parent {
		reversed = append(reversed, cur.vertex)
	}
	path := make([]VertexID, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}
	return path
}

func (l *label) edges() []EdgeID {
	var reversed []EdgeID
	for cur := l; cur.parent != nil; cur = cur.parent {
		reversed = append(reversed, cur.viaEdge)
	}
	edges := make([]EdgeID, len(reversed))
	for i, e := range reversed {
		edges[len(reversed)-1-i] = e
	}
	return edges
}
