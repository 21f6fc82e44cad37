// Package core_test contains unit tests for the plain Graph type:
// construction flags, vertex/edge validation, deterministic accessors and
// the Unwrapper capability.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitality/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex("B"))

	// Re-adding is a no-op.
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddEdge("", "B", 0), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("A", "", 0), core.ErrEmptyVertexID)

	// Non-zero weight on an unweighted graph.
	require.ErrorIs(t, g.AddEdge("A", "B", 2.5), core.ErrBadWeight)

	// Self-loop without WithLoops.
	require.ErrorIs(t, g.AddEdge("A", "A", 0), core.ErrLoopNotAllowed)

	// Duplicate edge without WithMultiEdges; the mirrored direction of an
	// undirected edge counts as the same edge.
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.ErrorIs(t, g.AddEdge("A", "B", 0), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, g.AddEdge("B", "A", 0), core.ErrMultiEdgeNotAllowed)
}

func TestGraph_AddEdgeAutoCreatesVertices(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddEdge("A", "B", 0))
	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
}

func TestGraph_LoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())

	require.NoError(t, g.AddEdge("X", "X", 1))
	require.NoError(t, g.AddEdge("X", "Y", 2))
	require.NoError(t, g.AddEdge("X", "Y", 5))
	require.Equal(t, 3, g.EdgeCount())

	edges, err := g.Neighbors("X")
	require.NoError(t, err)
	// Loop once, two parallel edges to Y sorted by weight.
	require.Equal(t, []core.Edge{
		{From: "X", To: "X", Weight: 1},
		{From: "X", To: "Y", Weight: 2},
		{From: "X", To: "Y", Weight: 5},
	}, edges)
}

func TestGraph_VerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, g.AddVertex(id))
	}

	require.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, g.Vertices())
}

func TestGraph_EdgesUndirectedReportedOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B", "A", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	// Each logical edge appears once, normalized to From ≤ To.
	require.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 0},
		{From: "B", To: "C", Weight: 0},
	}, g.Edges())
}

func TestGraph_NeighborsDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))

	out, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "B", out[0].To)

	// No backwards traversal along a directed edge.
	back, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Empty(t, back)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_UnwrapReturnsSelf(t *testing.T) {
	g := core.NewGraph()

	var u core.Unwrapper = g
	require.Same(t, g, u.Unwrap())
}
