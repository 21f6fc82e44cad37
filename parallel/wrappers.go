// File: wrappers.go
// Role: parallel-graph decorator variants over core.Graph.
//
// Each variant corresponds to one combination of the underlying graph's
// directedness and multi-edge flags, and unwraps to the plain graph via
// core.Unwrapper.
package parallel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vitality/core"
)

// Sentinel errors for wrapper construction.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a constructor.
	ErrNilGraph = errors.New("parallel: graph is nil")

	// ErrVariantMismatch indicates that the graph's flags do not match the
	// requested wrapper variant (e.g. a directed graph passed to NewGraph).
	ErrVariantMismatch = errors.New("parallel: graph flags do not match wrapper variant")
)

// Graph wraps an undirected simple graph for parallel processing.
type Graph struct {
	plain *core.Graph
}

// NewGraph wraps g as an undirected simple parallel graph.
// Returns ErrNilGraph for nil input and ErrVariantMismatch when g is
// directed or a multigraph.
func NewGraph(g *core.Graph) (*Graph, error) {
	if err := checkVariant(g, false, false); err != nil {
		return nil, err
	}

	return &Graph{plain: g}, nil
}

// Unwrap returns the plain graph behind the wrapper.
func (w *Graph) Unwrap() *core.Graph { return w.plain }

// DiGraph wraps a directed simple graph for parallel processing.
type DiGraph struct {
	plain *core.Graph
}

// NewDiGraph wraps g as a directed simple parallel graph.
func NewDiGraph(g *core.Graph) (*DiGraph, error) {
	if err := checkVariant(g, true, false); err != nil {
		return nil, err
	}

	return &DiGraph{plain: g}, nil
}

// Unwrap returns the plain graph behind the wrapper.
func (w *DiGraph) Unwrap() *core.Graph { return w.plain }

// MultiGraph wraps an undirected multigraph for parallel processing.
type MultiGraph struct {
	plain *core.Graph
}

// NewMultiGraph wraps g as an undirected parallel multigraph.
func NewMultiGraph(g *core.Graph) (*MultiGraph, error) {
	if err := checkVariant(g, false, true); err != nil {
		return nil, err
	}

	return &MultiGraph{plain: g}, nil
}

// Unwrap returns the plain graph behind the wrapper.
func (w *MultiGraph) Unwrap() *core.Graph { return w.plain }

// MultiDiGraph wraps a directed multigraph for parallel processing.
type MultiDiGraph struct {
	plain *core.Graph
}

// NewMultiDiGraph wraps g as a directed parallel multigraph.
func NewMultiDiGraph(g *core.Graph) (*MultiDiGraph, error) {
	if err := checkVariant(g, true, true); err != nil {
		return nil, err
	}

	return &MultiDiGraph{plain: g}, nil
}

// Unwrap returns the plain graph behind the wrapper.
func (w *MultiDiGraph) Unwrap() *core.Graph { return w.plain }

// checkVariant validates that g exists and carries exactly the directedness
// and multi-edge flags the wrapper variant promises.
func checkVariant(g *core.Graph, directed, multi bool) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() != directed || g.Multigraph() != multi {
		return fmt.Errorf("%w: want directed=%t multi=%t, got directed=%t multi=%t",
			ErrVariantMismatch, directed, multi, g.Directed(), g.Multigraph())
	}

	return nil
}
