// Package adapters implements the problem-transformation facade (spec
// §6): a registry mapping a symbolic problem kind to a function value
// that turns domain-specific raw data into a Graph plus a vertex index
// map, and optimize_to_graph, which looks up that adapter and then
// runs the scalar SSSP engine on the result.
package adapters

import (
	"errors"
	"fmt"

	"github.com/danielchen26/dmysssp"
)

// ErrUnknownProblemKind is returned when OptimizeToGraph is given a
// kind with no registered adapter.
var ErrUnknownProblemKind = errors.New("adapters: unknown problem kind")

// IndexMap translates a domain-specific vertex label (a drug id, a
// metabolite name, a treatment step) into the dense 1..n vertex
// numbering the Graph substrate requires.
type IndexMap map[string]dmysssp.VertexID

// Adapter turns domain-specific raw data into a graph over a dense
// vertex numbering plus the map back to the domain's own labels.
type Adapter func(data any) (*dmysssp.Graph, IndexMap, error)

// Problem is one transformation request (spec §6's problem record).
type Problem struct {
	Kind   string
	Data   any
	Source string // domain-specific source label, resolved through the adapter's IndexMap
}

var registry = map[string]Adapter{}

// Register installs an adapter under kind, overwriting any previous
// registration for that kind. Called from each adapter file's init,
// mirroring a compile-time registry (spec §9's redesign note).
func Register(kind string, a Adapter) {
	registry[kind] = a
}

// OptimizeToGraph dispatches problem.Kind to its registered adapter,
// builds the graph, resolves problem.Source through the returned
// IndexMap, and runs the scalar SSSP engine over it (spec §6).
func OptimizeToGraph(problem Problem, opts ...dmysssp.Option) (dmysssp.Distances, IndexMap, error) {
	adapter, ok := registry[problem.Kind]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownProblemKind, problem.Kind)
	}
	g, idx, err := adapter(problem.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("adapters: %s adapter: %w", problem.Kind, err)
	}
	source, ok := idx[problem.Source]
	if !ok {
		return nil, nil, fmt.Errorf("adapters: source label %q not present in %s adapter's index map", problem.Source, problem.Kind)
	}
	d, err := dmysssp.SSSP(g, source, opts...)
	if err != nil {
		return nil, nil, err
	}
	return d, idx, nil
}
