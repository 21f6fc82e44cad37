// File: view.go
// Role: non-mutating graph views (induced subgraphs).
// The source graph is only read-locked; results are fresh Graph instances.
package core

// InducedSubgraph returns a new Graph induced by the vertex set "keep":
// the result contains only vertices v with keep[v] == true, and every edge
// of g whose endpoints are both kept. Configuration flags carry over.
// The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on the source.
func (g *Graph) InducedSubgraph(keep map[string]bool) *Graph {
	out := NewGraph(g.cloneOptions()...)

	g.mu.RLock()
	defer g.mu.RUnlock()

	for id := range g.vertices {
		if keep[id] {
			out.ensureVertex(id)
		}
	}

	for from, row := range g.adj {
		if !keep[from] {
			continue
		}
		for to, weights := range row {
			if !keep[to] {
				continue
			}
			// Visit each undirected edge once; its mirror is rebuilt by addWeight.
			if !g.directed && from > to {
				continue
			}
			for _, w := range weights {
				out.addWeight(from, to, w)
			}
		}
	}

	return out
}

// Without returns the induced subgraph on all vertices except id — the
// classic "G − v". Removing an absent id yields a plain copy of g.
//
// Complexity: O(V + E).
func (g *Graph) Without(id string) *Graph {
	g.mu.RLock()
	keep := make(map[string]bool, len(g.vertices))
	for v := range g.vertices {
		if v != id {
			keep[v] = true
		}
	}
	g.mu.RUnlock()

	return g.InducedSubgraph(keep)
}

// cloneOptions reproduces g's construction flags for a derived graph.
func (g *Graph) cloneOptions() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
