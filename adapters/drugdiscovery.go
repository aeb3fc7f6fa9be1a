package adapters

import (
	"fmt"

	"github.com/danielchen26/dmysssp"
)

func init() {
	Register("drug-discovery", drugDiscoveryAdapter)
}

// Interaction is one scored step in a drug-interaction pathway: a
// compound transforms into another compound with some cost (binding
// affinity, synthesis difficulty, or a similarly inverted "goodness"
// score where lower is better).
type Interaction struct {
	From, To string
	Cost     float64
}

// DrugDiscoveryProblem is the raw shape a drug-discovery caller
// passes as Problem.Data: every scored compound-to-compound step
// under consideration.
type DrugDiscoveryProblem struct {
	Interactions []Interaction
}

// drugDiscoveryAdapter builds a Graph over the compounds named in
// Interactions, keyed by compound name (spec §6's "domain-specific
// constructors... thin adapters producing a graph + index maps").
func drugDiscoveryAdapter(data any) (*dmysssp.Graph, IndexMap, error) {
	problem, ok := data.(DrugDiscoveryProblem)
	if !ok {
		return nil, nil, fmt.Errorf("adapters: drug-discovery adapter expects DrugDiscoveryProblem, got %T", data)
	}
	return buildLabeledGraph(problem.Interactions)
}

func buildLabeledGraph(interactions []Interaction) (*dmysssp.Graph, IndexMap, error) {
	idx := IndexMap{}
	nextID := dmysssp.VertexID(1)
	labelOf := func(name string) dmysssp.VertexID {
		if v, ok := idx[name]; ok {
			return v
		}
		v := nextID
		idx[name] = v
		nextID++
		return v
	}

	edges := make([]dmysssp.Edge, 0, len(interactions))
	weights := make([]float64, 0, len(interactions))
	for i, step := range interactions {
		edges = append(edges, dmysssp.Edge{
			Source: labelOf(step.From),
			Target: labelOf(step.To),
			ID:     dmysssp.EdgeID(i + 1),
		})
		weights = append(weights, step.Cost)
	}

	g, err := dmysssp.NewGraph(int(nextID)-1, edges, weights)
	if err != nil {
		return nil, nil, err
	}
	return g, idx, nil
}
