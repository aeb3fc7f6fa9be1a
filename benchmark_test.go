package dmysssp_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/danielchen26/dmysssp"
)

// BenchmarkSSSP measures the full engine across graph sizes, modeled
// on the duan-sssp benchmark suite's size/name table.
func BenchmarkSSSP(b *testing.B) {
	sizes := []struct {
		name        string
		vertices, m int
	}{
		{"Small_V1K_E3K", 1000, 3000},
		{"Medium_V5K_E15K", 5000, 15000},
		{"Large_V10K_E30K", 10000, 30000},
	}

	for _, sz := range sizes {
		b.Run(sz.name, func(b *testing.B) {
			g := benchGraph(b, sz.vertices, sz.m, 1)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := dmysssp.SSSP(g, 1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkScalability holds density fixed and grows vertex count,
// isolating how recursion depth and pivot-round count scale with n.
func BenchmarkScalability(b *testing.B) {
	vertexCounts := []int{1000, 5000, 10000, 20000}
	const edgeFactor = 3

	for _, n := range vertexCounts {
		b.Run(benchName(n), func(b *testing.B) {
			g := benchGraph(b, n, n*edgeFactor, 7)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := dmysssp.SSSP(g, 1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkComparison pits the recursive engine against the reference
// Dijkstra oracle on the same graph.
func BenchmarkComparison(b *testing.B) {
	const vertices, edges = 10000, 30000
	g := benchGraph(b, vertices, edges, 42)

	b.Run("DMY", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := dmysssp.SSSP(g, 1); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("ReferenceDijkstra", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := dmysssp.ReferenceDijkstra(g, 1); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchGraph(b *testing.B, n, m int, seed int64) *dmysssp.Graph {
	b.Helper()
	edges := make([]dmysssp.Edge, 0, m)
	weights := make([]float64, 0, m)
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[[2]int]bool, m)
	for len(edges) < m {
		u := rng.Intn(n) + 1
		v := rng.Intn(n) + 1
		if u == v {
			v = v%n + 1
		}
		key := [2]int{u, v}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, dmysssp.Edge{Source: dmysssp.VertexID(u), Target: dmysssp.VertexID(v), ID: dmysssp.EdgeID(len(edges) + 1)})
		weights = append(weights, rng.Float64()*100.0+1.0)
	}
	g, err := dmysssp.NewGraph(n, edges, weights)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func benchName(n int) string {
	switch {
	case n >= 1000000:
		return "V" + strconv.Itoa(n/1000000) + "M"
	case n >= 1000:
		return "V" + strconv.Itoa(n/1000) + "K"
	default:
		return "V" + strconv.Itoa(n)
	}
}
