package dmysssp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core engine's entry points. Callers should
// branch on these with errors.Is, not on their wrapped messages.
var (
	// ErrInvalidSource indicates a source (or target) vertex outside 1..n.
	ErrInvalidSource = errors.New("dmysssp: invalid source vertex")

	// ErrInvalidPath indicates a path sequence containing a non-edge.
	ErrInvalidPath = errors.New("dmysssp: path contains a non-edge")

	// errBudgetExhausted names BMSSP's budget-exhausted condition (spec
	// §4.5, §7). It is never returned: bmsspSingleRound reports
	// exhaustion as a boolean and bmssp retries with a larger budget.
	errBudgetExhausted = errors.New("dmysssp: relaxation budget exhausted")
)

// InvalidGraphError reports why a Graph failed construction-time
// validation (spec §4.1, §7). Its Is method lets callers match with
// errors.Is(err, &InvalidGraphError{Reason: r}), ignoring Detail.
type InvalidGraphError struct {
	Reason InvalidGraphReason
	Detail string
}

// InvalidGraphReason enumerates the distinct validation failures a
// Graph constructor can report.
type InvalidGraphReason int

const (
	// ReasonEndpointOutOfRange: an edge references a vertex outside 1..n.
	ReasonEndpointOutOfRange InvalidGraphReason = iota
	// ReasonNegativeOrNonFiniteWeight: a weight is negative, NaN, or +-Inf.
	ReasonNegativeOrNonFiniteWeight
	// ReasonLengthMismatch: len(edges) != len(weights).
	ReasonLengthMismatch
	// ReasonDuplicateEdgeID: two edges share an edge id.
	ReasonDuplicateEdgeID
	// ReasonInternalInconsistency: BMSSP failed to converge after
	// repeated budget increases, which spec §7 attributes to a driver
	// bug rather than a malformed graph, but still surfaces as
	// InvalidGraph since that is the only error type the core returns
	// from a failed run.
	ReasonInternalInconsistency
)

func (r InvalidGraphReason) String() string {
	switch r {
	case ReasonEndpointOutOfRange:
		return "endpoint out of range"
	case ReasonNegativeOrNonFiniteWeight:
		return "negative or non-finite weight"
	case ReasonLengthMismatch:
		return "edges/weights length mismatch"
	case ReasonDuplicateEdgeID:
		return "duplicate edge id"
	case ReasonInternalInconsistency:
		return "internal inconsistency"
	default:
		return "unknown reason"
	}
}

func (e *InvalidGraphError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("dmysssp: invalid graph: %s", e.Reason)
	}
	return fmt.Sprintf("dmysssp: invalid graph: %s: %s", e.Reason, e.Detail)
}

// Is allows errors.Is(err, &InvalidGraphError{Reason: X}) to match on
// reason alone, ignoring Detail.
func (e *InvalidGraphError) Is(target error) bool {
	other, ok := target.(*InvalidGraphError)
	if !ok {
		return false
	}
	return e.Reason == other.Reason
}
