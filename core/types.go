// Package core defines the Graph, Edge and option types plus sentinel errors.
//
// This file declares the data structures and the NewGraph constructor;
// mutation and query methods live in methods.go, non-mutating views in
// view.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one connection between two vertices.
//
// For undirected graphs every logical edge is reported once, with
// From ≤ To. Weight is always 0 on unweighted graphs.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight float64
}

// GraphOption configures a Graph at construction time.
// Flags are immutable after NewGraph returns.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected; default false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the plain in-memory graph data structure.
//
// It supports directed vs. undirected, weighted vs. unweighted graphs,
// parallel edges and self-loops. A single RWMutex guards vertices and
// adjacency; read methods take the read lock only, so concurrent read-only
// traversals of one shared Graph proceed without contention.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags, fixed at construction.
	directed   bool // edges are one-way
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage.
	vertices  map[string]struct{}             // vertex ID set
	adj       map[string]map[string][]float64 // from → to → parallel edge weights
	edgeCount int                             // logical edges (mirrors counted once)
}

// Unwrapper yields the plain Graph behind a possibly decorated graph value.
//
// *Graph implements Unwrapper itself (a plain graph is its own underlying
// representation), so functions accepting Unwrapper handle plain and wrapped
// graphs through the same single call — there is no "unrecognized wrapper"
// state to fall through.
type Unwrapper interface {
	Unwrap() *Graph
}

// Unwrap returns g itself. It exists so that *Graph satisfies Unwrapper.
func (g *Graph) Unwrap() *Graph { return g }

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, with no loops and no
// multi-edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string]map[string][]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
