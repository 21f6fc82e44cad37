// Package vitality computes closeness vitality for nodes of an in-memory
// graph: the drop in the graph's Wiener index (the sum of all-pairs
// shortest-path distances) caused by removing a node.
//
// The module is organized under four subpackages:
//
//	core/     — plain Graph type: vertices, weighted edges, induced subgraphs
//	wiener/   — Wiener index over unweighted (BFS) and weighted (Dijkstra) graphs
//	parallel/ — parallel-graph wrapper variants and a bounded parallel map
//	vitality/ — closeness vitality, single-node and all-nodes entry points
//
// Quick ASCII example:
//
//	    A───B
//	     \ /
//	      C
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 0)
//	g.AddEdge("B", "C", 0)
//	g.AddEdge("C", "A", 0)
//
//	vit, _ := vitality.Closeness(g)
//	// vit == map[A:2 B:2 C:2]
//
// Removing any vertex of the triangle shrinks the Wiener index from 3 to 1,
// so every vertex has closeness vitality 2. A vertex whose removal
// disconnects the graph has vitality −Inf.
//
// The all-nodes computation fans out across a worker pool sized to the
// available execution units by default; pass vitality.WithWorkers(1) for
// strictly sequential evaluation.
package vitality
