// Package vitality defines options and error values for closeness vitality.
package vitality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vitality/wiener"
)

// Sentinel errors for closeness vitality.
var (
	// ErrNilGraph indicates that the graph input (or its unwrapped plain
	// graph) was nil.
	ErrNilGraph = errors.New("vitality: graph is nil")

	// ErrVertexNotFound indicates that the requested node does not exist in
	// the graph.
	ErrVertexNotFound = errors.New("vitality: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("vitality: invalid option supplied")
)

// Option configures closeness vitality via functional arguments.
// An invalid Option (e.g. a non-positive worker count) is recorded
// internally and surfaced as ErrOptionViolation when the entry point runs.
type Option func(*Options)

// Options holds the parameters shared by Closeness and ClosenessOf.
type Options struct {
	// WienerIndex is a caller-supplied precomputed Wiener index of the whole
	// graph. Only consulted when set through WithWienerIndex; it is then
	// treated as a constant shared input and never recomputed.
	WienerIndex float64

	// Workers is the pool size used by Closeness. Zero selects one worker
	// per available execution unit.
	Workers int

	// UnitWeights makes all distance computations ignore edge weights.
	UnitWeights bool

	hasWiener bool  // WienerIndex was explicitly provided
	err       error // first invalid option, reported at call time
}

// DefaultOptions returns the Options used when no Option is supplied:
// Wiener index computed fresh, pool sized to all execution units,
// distances following edge weights.
func DefaultOptions() Options {
	return Options{}
}

// WithWienerIndex supplies an already computed Wiener index of the whole
// graph, avoiding one full all-pairs pass.
func WithWienerIndex(w float64) Option {
	return func(o *Options) {
		o.WienerIndex = w
		o.hasWiener = true
	}
}

// WithWorkers sets the worker-pool size used by Closeness.
//
//	n ≥ 1: dispatch at most n per-node tasks concurrently
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithUnitWeights makes vitality measure hop-count distances, ignoring any
// stored edge weights.
func WithUnitWeights() Option {
	return func(o *Options) { o.UnitWeights = true }
}

// wienerOptions translates the shared Options into wiener.Index options.
func (o Options) wienerOptions() []wiener.Option {
	if o.UnitWeights {
		return []wiener.Option{wiener.WithUnitWeights()}
	}

	return nil
}
