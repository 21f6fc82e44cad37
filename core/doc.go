// Package core provides the plain in-memory Graph type consumed by the
// distance-based analyses in this module (wiener, vitality).
//
// Overview:
//
//   - Graph stores string-identified vertices and float64-weighted edges.
//   - Construction flags select directed vs. undirected, weighted vs.
//     unweighted, parallel edges (multi-edges) and self-loops.
//   - All accessors returning slices (Vertices, Edges, Neighbors) are sorted,
//     so iteration order is deterministic across runs.
//   - A single sync.RWMutex guards all state: concurrent readers never block
//     each other, which matters when many goroutines walk one shared graph.
//
// Views:
//
//   - InducedSubgraph(keep) builds a fresh Graph containing only the kept
//     vertices and the edges with both endpoints kept.
//   - Without(id) is the common "G − v" special case.
//     Neither view mutates the source graph.
//
// Unwrapping:
//
//   - Unwrapper is the capability of exposing the plain *Graph behind a
//     decorated graph value. *Graph implements it trivially, returning
//     itself, so APIs accepting Unwrapper take "plain or wrapped" uniformly
//     with no type switching. See the parallel package for the wrapper
//     variants.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID       — vertex ID is the empty string.
//   - ErrVertexNotFound      — requested vertex does not exist.
//   - ErrBadWeight           — non-zero weight on an unweighted graph.
//   - ErrLoopNotAllowed      — self-loop when loops are disabled.
//   - ErrMultiEdgeNotAllowed — parallel edge when multi-edges are disabled.
package core
