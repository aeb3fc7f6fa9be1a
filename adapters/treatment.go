package adapters

import (
	"fmt"

	"github.com/danielchen26/dmysssp"
)

func init() {
	Register("treatment", treatmentAdapter)
}

// Transition is one step of a treatment plan: a patient state moves to
// another state through an intervention with some cost (time, risk,
// or a blended clinical score).
type Transition struct {
	FromState, ToState string
	Cost               float64
}

// TreatmentProblem is the raw shape a treatment-planning caller passes
// as Problem.Data.
type TreatmentProblem struct {
	Transitions []Transition
}

func treatmentAdapter(data any) (*dmysssp.Graph, IndexMap, error) {
	problem, ok := data.(TreatmentProblem)
	if !ok {
		return nil, nil, fmt.Errorf("adapters: treatment adapter expects TreatmentProblem, got %T", data)
	}
	interactions := make([]Interaction, len(problem.Transitions))
	for i, tr := range problem.Transitions {
		interactions[i] = Interaction{From: tr.FromState, To: tr.ToState, Cost: tr.Cost}
	}
	return buildLabeledGraph(interactions)
}
