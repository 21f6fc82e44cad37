package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitality/core"
)

// square builds the undirected 4-cycle A—B—C—D—A with the given options.
func square(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	return g
}

func TestGraph_InducedSubgraph(t *testing.T) {
	g := square(t)

	sub := g.InducedSubgraph(map[string]bool{"A": true, "B": true, "C": true})

	require.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	// D—A and C—D lose an endpoint; A—B and B—C survive.
	require.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 0},
		{From: "B", To: "C", Weight: 0},
	}, sub.Edges())

	// The source graph is untouched.
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())
}

func TestGraph_InducedSubgraphCarriesFlags(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("A", "B", 7))
	require.NoError(t, g.AddEdge("B", "B", 1))

	sub := g.InducedSubgraph(map[string]bool{"A": true, "B": true})

	require.True(t, sub.Directed())
	require.True(t, sub.Weighted())
	require.True(t, sub.Multigraph())
	require.True(t, sub.Looped())
	require.Equal(t, 3, sub.EdgeCount())
}

func TestGraph_Without(t *testing.T) {
	g := square(t)

	rest := g.Without("B")
	require.Equal(t, []string{"A", "C", "D"}, rest.Vertices())
	// Only C—D and D—A survive the removal of B.
	require.Equal(t, []core.Edge{
		{From: "A", To: "D", Weight: 0},
		{From: "C", To: "D", Weight: 0},
	}, rest.Edges())
}

func TestGraph_WithoutAbsentVertexIsCopy(t *testing.T) {
	g := square(t)

	copied := g.Without("Z")
	require.Equal(t, g.Vertices(), copied.Vertices())
	require.Equal(t, g.Edges(), copied.Edges())
	require.NotSame(t, g, copied)
}
