package adapters

import (
	"fmt"

	"github.com/danielchen26/dmysssp"
)

func init() {
	Register("metabolic", metabolicAdapter)
}

// Reaction is one step of a metabolic pathway: a metabolite converts
// into another via a reaction whose cost is, e.g., the negative log of
// its flux or an enzyme-efficiency penalty.
type Reaction struct {
	Substrate, Product string
	Cost               float64
}

// MetabolicProblem is the raw shape a metabolic-pathway caller passes
// as Problem.Data.
type MetabolicProblem struct {
	Reactions []Reaction
}

func metabolicAdapter(data any) (*dmysssp.Graph, IndexMap, error) {
	problem, ok := data.(MetabolicProblem)
	if !ok {
		return nil, nil, fmt.Errorf("adapters: metabolic adapter expects MetabolicProblem, got %T", data)
	}
	interactions := make([]Interaction, len(problem.Reactions))
	for i, r := range problem.Reactions {
		interactions[i] = Interaction{From: r.Substrate, To: r.Product, Cost: r.Cost}
	}
	return buildLabeledGraph(interactions)
}
