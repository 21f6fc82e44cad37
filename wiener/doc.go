// Package wiener computes the Wiener index of a core.Graph: the sum of
// shortest-path distances over all pairs of vertices.
//
// Overview:
//
//   - Undirected graphs sum each unordered pair once; directed graphs sum
//     every ordered pair.
//   - Unweighted graphs (and WithUnitWeights) use per-source BFS; weighted
//     graphs use per-source Dijkstra with a lazy-decrease-key min-heap.
//   - A graph that is not connected (for directed graphs: not strongly
//     connected) has Wiener index +Inf — a defined numeric result, not an
//     error. Graphs with fewer than two vertices have Wiener index 0.
//
// Complexity:
//
//   - Unweighted: O(V·(V+E)) — one BFS per source.
//   - Weighted:   O(V·(V+E) log V) — one Dijkstra per source.
//
// Errors (sentinel):
//
//   - ErrNilGraph       — nil graph pointer.
//   - ErrNegativeWeight — a negative edge weight was detected (weighted
//     graphs are pre-scanned in O(E) and fail fast).
//
// The computation is deterministic, sequential and side-effect free; the
// input graph is only read. For parallel per-node analyses built on top of
// this index, see the vitality package.
package wiener
