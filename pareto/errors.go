package pareto

import "errors"

// Sentinel errors for the multi-objective engine (spec §7).
var (
	// ErrUnsupportedSense: weighted-sum scalarization sees a maximize
	// dimension without a prior transformation.
	ErrUnsupportedSense = errors.New("pareto: unsupported objective sense for weighted sum")

	// ErrInfeasible: epsilon-constraint's feasible set is empty.
	ErrInfeasible = errors.New("pareto: no feasible solution satisfies the epsilon constraints")

	// ErrInvalidSource mirrors dmysssp.ErrInvalidSource for multi-graphs.
	ErrInvalidSource = errors.New("pareto: invalid source or target vertex")

	// ErrEmptyFront: KneePoint was called on an empty Pareto set.
	ErrEmptyFront = errors.New("pareto: empty pareto front")
)

// InvalidMultiGraphError reports why a MultiGraph failed validation,
// mirroring dmysssp.InvalidGraphError for the vector-cost graph.
type InvalidMultiGraphError struct {
	Detail string
}

func (e *InvalidMultiGraphError) Error() string {
	return "pareto: invalid multi-objective graph: " + e.Detail
}
