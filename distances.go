package dmysssp

import "math"

// Inf is the extended-real "unreached" distance (spec §3).
const Inf = math.MaxFloat64

// noParent is the sentinel stored in a Parents array for "no parent yet",
// represented by vertex id 0 (never a valid 1..n vertex).
const noParent VertexID = 0

// Distances is d[1..n], indexed by VertexID (index 0 is unused). It is
// mutably owned by exactly one SSSP call for the call's duration; the
// immutable Graph it was allocated against may be shared freely.
type Distances []float64

// NewDistances allocates d[1..n] set to Inf, except d[source] = 0.
func NewDistances(n int, source VertexID) Distances {
	d := make(Distances, n+1)
	for v := 1; v <= n; v++ {
		d[v] = Inf
	}
	d[source] = 0
	return d
}

// Parents is p[1..n]; Parents[v] == noParent means "no parent recorded".
type Parents []VertexID

// NewParents allocates p[1..n], all noParent.
func NewParents(n int) Parents {
	return make(Parents, n+1)
}

// relax applies d[target] <- min(d[target], d[source] + w) for a single
// edge, using strict less-than so the first discoverer of an optimal
// distance wins (spec §4.2 — required for the determinism tests in §8).
// p may be nil, in which case parent bookkeeping is skipped.
func relax(e Edge, w float64, d Distances, p Parents) bool {
	alt := d[e.Source] + w
	if alt < d[e.Target] {
		d[e.Target] = alt
		if p != nil {
			p[e.Target] = e.Source
		}
		return true
	}
	return false
}
