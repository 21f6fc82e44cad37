// Package vitality computes closeness vitality: a node's contribution to the
// total connectivity of a graph, measured as the increase in the Wiener
// index (the sum of all-pairs shortest-path distances) caused by removing
// that node. Defined in Section 3.6.2 of Brandes & Erlebach (eds.),
// "Network Analysis: Methodological Foundations", Springer, 2005.
//
// Entry points:
//
//   - ClosenessOf(g, node) — vitality of one node:
//     wiener.Index(G) − wiener.Index(G − node).
//   - Closeness(g) — vitality of every node, evaluated through a worker
//     pool: the whole-graph Wiener index is computed once (or taken from
//     WithWienerIndex) and shared read-only across all per-node tasks,
//     never recomputed per node.
//
// Both accept any core.Unwrapper: a plain *core.Graph or one of the
// parallel wrapper variants (parallel.Graph, parallel.DiGraph,
// parallel.MultiGraph, parallel.MultiDiGraph). Unwrapping is a single
// polymorphic call, not a type switch.
//
// Results:
//
//   - A node whose removal disconnects the remaining graph has vitality
//     −Inf (the +Inf Wiener index of the disconnected remainder propagates
//     through the subtraction).
//   - The function is specified for connected (directed: strongly
//     connected) input; on an already disconnected graph both terms are
//     +Inf and results are NaN.
//
// Options:
//
//   - WithWienerIndex(w) — supply a precomputed whole-graph Wiener index.
//   - WithWorkers(n)     — pool size for Closeness; default is all available
//     execution units. WithWorkers(1) gives deterministic sequential runs.
//   - WithUnitWeights()  — measure hop-count distances, ignoring weights.
//
// Failure model: there are no partial results. Any per-node task error
// aborts the whole Closeness call; invalid options surface as
// ErrOptionViolation, an absent node as ErrVertexNotFound, and everything
// else propagates from the wiener package.
package vitality
