package adapters

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/danielchen26/dmysssp"
)

func init() {
	Register("gonum-graph", gonumGraphAdapter)
}

// gonumGraphAdapter imports a *simple.WeightedDirectedGraph, letting
// callers already building graphs with gonum's graph tooling hand
// that graph straight to the registry instead of re-describing it in
// this module's own edge-list form. Gonum node IDs become this
// module's dense vertex numbering 1..n in iteration order; the
// IndexMap key is the decimal string of the gonum node ID.
func gonumGraphAdapter(data any) (*dmysssp.Graph, IndexMap, error) {
	src, ok := data.(*simple.WeightedDirectedGraph)
	if !ok {
		return nil, nil, fmt.Errorf("adapters: gonum-graph adapter expects *simple.WeightedDirectedGraph, got %T", data)
	}

	idx := IndexMap{}
	nextID := dmysssp.VertexID(1)
	nodes := graph.NodesOf(src.Nodes())
	for _, node := range nodes {
		idx[fmt.Sprintf("%d", node.ID())] = nextID
		nextID++
	}

	var edges []dmysssp.Edge
	var weights []float64
	edgeID := dmysssp.EdgeID(1)
	for _, u := range nodes {
		to := graph.NodesOf(src.From(u.ID()))
		for _, v := range to {
			w, ok := src.Weight(u.ID(), v.ID())
			if !ok {
				continue
			}
			edges = append(edges, dmysssp.Edge{
				Source: idx[fmt.Sprintf("%d", u.ID())],
				Target: idx[fmt.Sprintf("%d", v.ID())],
				ID:     edgeID,
			})
			weights = append(weights, w)
			edgeID++
		}
	}

	g, err := dmysssp.NewGraph(int(nextID)-1, edges, weights)
	if err != nil {
		return nil, nil, err
	}
	return g, idx, nil
}
