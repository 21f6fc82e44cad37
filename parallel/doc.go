// Package parallel provides the parallel-graph wrapper variants and the
// bounded fan-out primitive used by the all-nodes analyses in this module.
//
// Wrappers:
//
//   - Graph, DiGraph, MultiGraph and MultiDiGraph are thin decorators over a
//     plain *core.Graph, marking it as intended for parallel processing.
//     Each variant implements core.Unwrapper exactly once, so consumers
//     recover the plain graph with a single polymorphic Unwrap call — no
//     chain of type checks, and no silent fall-through when a new variant
//     appears.
//   - Constructors validate that the wrapped graph's directedness and
//     multi-edge flags agree with the variant (ErrVariantMismatch), so a
//     wrapper's static type can be trusted downstream.
//
// Fan-out:
//
//   - Map runs one task per input item on at most `workers` goroutines and
//     blocks until every task finishes. Tasks must be independent: Map adds
//     no locking, ordering or retry policy of its own. The first task error
//     aborts the whole call with no partial results.
//
// There is no streaming, cancellation, timeout, batching or backpressure:
// Map is a one-shot scatter-gather over a fixed, known-in-advance task set.
package parallel
