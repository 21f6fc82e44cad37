// Package vitality implements closeness vitality over core graphs.
//
// The evaluator for one node is wiener.Index(G) − wiener.Index(G − v); the
// all-nodes entry point fixes the whole-graph index once and fans the
// per-node evaluations out over parallel.Map.
package vitality

import (
	"fmt"

	"github.com/katalvlaran/vitality/core"
	"github.com/katalvlaran/vitality/parallel"
	"github.com/katalvlaran/vitality/wiener"
)

// ClosenessOf returns the closeness vitality of a single node:
// the drop in the graph's Wiener index caused by removing it.
//
// The result is −Inf when removing the node disconnects the remaining
// graph. Returns ErrNilGraph for nil input, ErrVertexNotFound when the node
// is absent, ErrOptionViolation for invalid options; wiener errors
// propagate unchanged.
//
// Complexity: two Wiener index evaluations (one if WithWienerIndex is set).
func ClosenessOf(g core.Unwrapper, node string, opts ...Option) (float64, error) {
	plain, cfg, err := prepare(g, opts)
	if err != nil {
		return 0, err
	}
	if !plain.HasVertex(node) {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, node)
	}

	whole, err := wholeIndex(plain, cfg)
	if err != nil {
		return 0, err
	}

	return evaluate(plain, cfg, whole, node)
}

// Closeness returns the closeness vitality of every node in the graph as a
// map from vertex ID to vitality value.
//
// The whole-graph Wiener index is resolved exactly once — computed fresh,
// or taken verbatim from WithWienerIndex — and shared read-only by all
// per-node evaluations. Each node is one independent task on a pool of
// Options.Workers goroutines (default: all available execution units); the
// call blocks until every task finishes, and the first task error aborts it
// with no partial results.
//
// The returned map's key set always equals the graph's vertex set.
func Closeness(g core.Unwrapper, opts ...Option) (map[string]float64, error) {
	plain, cfg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	whole, err := wholeIndex(plain, cfg)
	if err != nil {
		return nil, err
	}

	nodes := plain.Vertices()
	values, err := parallel.Map(nodes, cfg.Workers, func(node string) (float64, error) {
		return evaluate(plain, cfg, whole, node)
	})
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64, len(nodes))
	for i, node := range nodes {
		result[node] = values[i]
	}

	return result, nil
}

// prepare applies options and unwraps the input down to the plain graph.
//
// Validation, in order: invalid option → ErrOptionViolation; nil input or a
// wrapper around nil → ErrNilGraph.
func prepare(g core.Unwrapper, opts []Option) (*core.Graph, Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg, cfg.err
	}

	if g == nil {
		return nil, cfg, ErrNilGraph
	}
	plain := g.Unwrap()
	if plain == nil {
		return nil, cfg, ErrNilGraph
	}

	return plain, cfg, nil
}

// wholeIndex resolves the Wiener index of the intact graph: the
// caller-supplied value when present, a fresh computation otherwise.
func wholeIndex(g *core.Graph, cfg Options) (float64, error) {
	if cfg.hasWiener {
		return cfg.WienerIndex, nil
	}

	return wiener.Index(g, cfg.wienerOptions()...)
}

// evaluate computes the vitality of one node against the fixed whole-graph
// index: whole − wiener.Index(G − node). A +Inf index of the remainder
// yields −Inf.
func evaluate(g *core.Graph, cfg Options, whole float64, node string) (float64, error) {
	after, err := wiener.Index(g.Without(node), cfg.wienerOptions()...)
	if err != nil {
		return 0, err
	}

	return whole - after, nil
}
