package pareto_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielchen26/dmysssp/pareto"
)

// twoPathGraph builds the Scenario D fixture: n=4, edges
// (1->2,[10,1]) (1->3,[30,0.5]) (2->4,[5,2]) (3->4,[15,1]), both
// dimensions minimized.
func twoPathGraph(t *testing.T) *pareto.MultiGraph {
	t.Helper()
	edges := []pareto.MultiEdge{
		{Source: 1, Target: 2, ID: 1, Objectives: []float64{10, 1}},
		{Source: 1, Target: 3, ID: 2, Objectives: []float64{30, 0.5}},
		{Source: 2, Target: 4, ID: 3, Objectives: []float64{5, 2}},
		{Source: 3, Target: 4, ID: 4, Objectives: []float64{15, 1}},
	}
	g, err := pareto.NewMultiGraph(4, edges, []pareto.Sense{pareto.Minimize, pareto.Minimize})
	require.NoError(t, err)
	return g
}

func TestComputeParetoFront_TwoPathScenario(t *testing.T) {
	g := twoPathGraph(t)
	front, err := pareto.ComputeParetoFront(g, 1, 4, 0)
	require.NoError(t, err)
	require.Len(t, front, 2)

	sort.Slice(front, func(i, j int) bool { return front[i].Objectives[0] < front[j].Objectives[0] })
	assert.InDeltaSlice(t, []float64{15, 3}, front[0].Objectives, 1e-9)
	assert.Equal(t, []pareto.VertexID{1, 2, 4}, front[0].Path)
	assert.InDeltaSlice(t, []float64{45, 1.5}, front[1].Objectives, 1e-9)
	assert.Equal(t, []pareto.VertexID{1, 3, 4}, front[1].Path)
}

func TestComputeParetoFront_InvalidSource(t *testing.T) {
	g := twoPathGraph(t)
	_, err := pareto.ComputeParetoFront(g, 0, 4, 0)
	assert.ErrorIs(t, err, pareto.ErrInvalidSource)
	_, err = pareto.ComputeParetoFront(g, 1, 99, 0)
	assert.ErrorIs(t, err, pareto.ErrInvalidSource)
}

func TestComputeParetoFront_NoSolutionDominatesAnother(t *testing.T) {
	g := twoPathGraph(t)
	front, err := pareto.ComputeParetoFront(g, 1, 4, 0)
	require.NoError(t, err)
	for i := range front {
		for j := range front {
			if i == j {
				continue
			}
			assert.False(t, dominatesForTest(front[i].Objectives, front[j].Objectives),
				"solution %d must not dominate solution %d", i, j)
		}
	}
}

func dominatesForTest(a, b []float64) bool {
	strictlyBetter := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

func TestComputeParetoFront_MaxSolutionsCap(t *testing.T) {
	g := twoPathGraph(t)
	front, err := pareto.ComputeParetoFront(g, 1, 4, 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(front), 1)
}

func TestWeightedSum_PicksDominantTradeoffByWeights(t *testing.T) {
	g := twoPathGraph(t)
	sol, err := pareto.WeightedSum(g, 1, 4, []float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []pareto.VertexID{1, 2, 4}, sol.Path)

	sol, err = pareto.WeightedSum(g, 1, 4, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []pareto.VertexID{1, 3, 4}, sol.Path)
}

func TestWeightedSum_RejectsMaximizeSense(t *testing.T) {
	edges := []pareto.MultiEdge{{Source: 1, Target: 2, ID: 1, Objectives: []float64{1, 1}}}
	g, err := pareto.NewMultiGraph(2, edges, []pareto.Sense{pareto.Minimize, pareto.Maximize})
	require.NoError(t, err)
	_, err = pareto.WeightedSum(g, 1, 2, []float64{1, 1})
	assert.ErrorIs(t, err, pareto.ErrUnsupportedSense)
}

func TestEpsilonConstraint_FiltersByBound(t *testing.T) {
	g := twoPathGraph(t)
	sol, err := pareto.EpsilonConstraint(g, 1, 4, 0, []float64{0, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, []pareto.VertexID{1, 3, 4}, sol.Path)

	_, err = pareto.EpsilonConstraint(g, 1, 4, 0, []float64{0, 1}, 0)
	assert.ErrorIs(t, err, pareto.ErrInfeasible)
}

func TestLexicographic_OrdersByPriority(t *testing.T) {
	g := twoPathGraph(t)
	sol, err := pareto.Lexicographic(g, 1, 4, []int{1, 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, []pareto.VertexID{1, 3, 4}, sol.Path)
}

func TestKneePoint_FrontSymmetricTieBreak(t *testing.T) {
	front := []pareto.ParetoSolution{
		{Objectives: []float64{1, 10}},
		{Objectives: []float64{2, 5}},
		{Objectives: []float64{5, 2}},
		{Objectives: []float64{10, 1}},
	}
	knee, err := pareto.KneePoint(front)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, knee.Objectives)
}

func TestKneePoint_EmptyFront(t *testing.T) {
	_, err := pareto.KneePoint(nil)
	assert.ErrorIs(t, err, pareto.ErrEmptyFront)
}

// TestKneePoint_LShapedFront uses an asymmetric front with an obvious
// sharp bend at the third point and near-straight runs on either side
// of it, so picking the minimum turn angle (the straightest point)
// instead of the maximum (the sharpest bend) gives a different,
// wrong, answer.
func TestKneePoint_LShapedFront(t *testing.T) {
	front := []pareto.ParetoSolution{
		{Objectives: []float64{0, 1}},
		{Objectives: []float64{0.01, 0.5}},
		{Objectives: []float64{0.02, 0.02}},
		{Objectives: []float64{0.5, 0.01}},
		{Objectives: []float64{1, 0}},
	}
	knee, err := pareto.KneePoint(front)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.02, 0.02}, knee.Objectives)
}

func TestNewMultiGraph_RejectsMismatchedObjectiveLength(t *testing.T) {
	edges := []pareto.MultiEdge{{Source: 1, Target: 2, ID: 1, Objectives: []float64{1}}}
	_, err := pareto.NewMultiGraph(2, edges, []pareto.Sense{pareto.Minimize, pareto.Minimize})
	require.Error(t, err)
	var invalid *pareto.InvalidMultiGraphError
	assert.ErrorAs(t, err, &invalid)
}

func TestNewMultiGraph_RejectsNegativeObjective(t *testing.T) {
	edges := []pareto.MultiEdge{{Source: 1, Target: 2, ID: 1, Objectives: []float64{-1}}}
	_, err := pareto.NewMultiGraph(2, edges, []pareto.Sense{pareto.Minimize})
	require.Error(t, err)
}
