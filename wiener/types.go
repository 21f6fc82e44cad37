// Package wiener defines options and error values for the Wiener index.
package wiener

import "errors"

// Sentinel errors returned by Index.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Index.
	ErrNilGraph = errors.New("wiener: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Shortest-path distances over negative weights are undefined here.
	ErrNegativeWeight = errors.New("wiener: negative edge weight encountered")
)

// Options configures the behavior of Index.
//
// UnitWeights — treat every edge as distance 1, ignoring stored weights.
// Unweighted graphs always use unit distances regardless of this flag.
type Options struct {
	UnitWeights bool
}

// Option is a functional option for configuring Index.
type Option func(*Options)

// WithUnitWeights makes Index ignore edge weights and measure hop counts.
func WithUnitWeights() Option {
	return func(o *Options) { o.UnitWeights = true }
}

// DefaultOptions returns the Options used when no Option is supplied:
// distances follow edge weights whenever the graph is weighted.
func DefaultOptions() Options {
	return Options{UnitWeights: false}
}
