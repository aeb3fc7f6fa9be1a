package dmysssp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielchen26/dmysssp"
)

// randomSparseGraph builds a deterministic (seeded) random directed
// graph for property tests, grounded in the teacher's own
// generateRandomGraph benchmark helper and lvlath's test_helpers_test.go
// convention of isolating fixture construction from assertions.
func randomSparseGraph(t *testing.T, n, m int, seed int64) *dmysssp.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))

	edges := make([]dmysssp.Edge, 0, m)
	weights := make([]float64, 0, m)
	seenPairs := make(map[[2]dmysssp.VertexID]bool, m)
	id := dmysssp.EdgeID(1)
	for len(edges) < m {
		u := dmysssp.VertexID(r.Intn(n) + 1)
		v := dmysssp.VertexID(r.Intn(n) + 1)
		if u == v {
			continue
		}
		key := [2]dmysssp.VertexID{u, v}
		if seenPairs[key] {
			continue
		}
		seenPairs[key] = true
		edges = append(edges, dmysssp.Edge{Source: u, Target: v, ID: id})
		weights = append(weights, r.Float64()*100+1)
		id++
	}

	g, err := dmysssp.NewGraph(n, edges, weights)
	require.NoError(t, err)
	return g
}
