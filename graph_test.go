package dmysssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielchen26/dmysssp"
)

func triangleGraph(t *testing.T) *dmysssp.Graph {
	t.Helper()
	g, err := dmysssp.NewGraph(3, []dmysssp.Edge{
		{Source: 1, Target: 2, ID: 1},
		{Source: 2, Target: 3, ID: 2},
		{Source: 1, Target: 3, ID: 3},
	}, []float64{1, 2, 4})
	require.NoError(t, err)
	return g
}

func TestNewGraph_Valid(t *testing.T) {
	g := triangleGraph(t)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.OutDegree(1))
	assert.Equal(t, 1, g.OutDegree(2))
	assert.Equal(t, 0, g.OutDegree(3))
	assert.Equal(t, 2, g.MaxOutDegree())
}

func TestNewGraph_EndpointOutOfRange(t *testing.T) {
	_, err := dmysssp.NewGraph(2, []dmysssp.Edge{{Source: 1, Target: 3, ID: 1}}, []float64{1})
	require.Error(t, err)
	var ige *dmysssp.InvalidGraphError
	require.ErrorAs(t, err, &ige)
	assert.Equal(t, dmysssp.ReasonEndpointOutOfRange, ige.Reason)
}

func TestNewGraph_NegativeWeight(t *testing.T) {
	_, err := dmysssp.NewGraph(2, []dmysssp.Edge{{Source: 1, Target: 2, ID: 1}}, []float64{-1})
	require.Error(t, err)
	var ige *dmysssp.InvalidGraphError
	require.ErrorAs(t, err, &ige)
	assert.Equal(t, dmysssp.ReasonNegativeOrNonFiniteWeight, ige.Reason)
}

func TestNewGraph_NonFiniteWeight(t *testing.T) {
	_, err := dmysssp.NewGraph(2, []dmysssp.Edge{{Source: 1, Target: 2, ID: 1}}, []float64{math.Inf(1)})
	require.Error(t, err)
}

func TestNewGraph_LengthMismatch(t *testing.T) {
	_, err := dmysssp.NewGraph(2, []dmysssp.Edge{{Source: 1, Target: 2, ID: 1}}, nil)
	require.Error(t, err)
	var ige *dmysssp.InvalidGraphError
	require.ErrorAs(t, err, &ige)
	assert.Equal(t, dmysssp.ReasonLengthMismatch, ige.Reason)
}

func TestNewGraph_DuplicateEdgeID(t *testing.T) {
	_, err := dmysssp.NewGraph(2, []dmysssp.Edge{
		{Source: 1, Target: 2, ID: 1},
		{Source: 2, Target: 1, ID: 1},
	}, []float64{1, 1})
	require.Error(t, err)
	var ige *dmysssp.InvalidGraphError
	require.ErrorAs(t, err, &ige)
	assert.Equal(t, dmysssp.ReasonDuplicateEdgeID, ige.Reason)
}

func TestOutEdges_UnknownVertex(t *testing.T) {
	g := triangleGraph(t)
	assert.Nil(t, g.OutEdges(99))
	assert.Equal(t, 0, g.OutDegree(99))
}

func TestWeightByID(t *testing.T) {
	g := triangleGraph(t)
	w, ok := g.WeightByID(2)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)

	w, ok = g.WeightByID(3)
	assert.True(t, ok)
	assert.Equal(t, 4.0, w)

	_, ok = g.WeightByID(99)
	assert.False(t, ok)
}
