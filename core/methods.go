package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from → to with the given weight, creating missing
// endpoint vertices automatically.
//
// Validation, in order:
//  1. Both IDs must be non-empty (ErrEmptyVertexID).
//  2. Non-zero weight requires a weighted graph (ErrBadWeight).
//  3. from == to requires WithLoops (ErrLoopNotAllowed).
//  4. An existing from→to edge requires WithMultiEdges (ErrMultiEdgeNotAllowed).
//
// On undirected graphs the edge is registered in both adjacency directions
// but counts as a single logical edge.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight != 0 && !g.weighted {
		return fmt.Errorf("%w: weight=%g on edge %s→%s", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s→%s", ErrLoopNotAllowed, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.adj[from][to]) > 0 && !g.allowMulti {
		return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.addWeight(from, to, weight)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of logical edges (an undirected edge counts
// once, each parallel edge counts separately).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every logical edge, sorted by (From, To, Weight).
// Undirected edges are reported once with From ≤ To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, row := range g.adj {
		for to, weights := range row {
			// Skip the mirrored direction of undirected edges; self-loops
			// are stored once and pass through (from == to).
			if !g.directed && from > to {
				continue
			}
			for _, w := range weights {
				out = append(out, Edge{From: from, To: to, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out
}

// Neighbors returns the edges leaving id, sorted by (To, Weight).
// For directed graphs only outgoing edges are returned; for undirected
// graphs every incident edge appears (with From == id).
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()

		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]Edge, 0, len(g.adj[id]))
	for to, weights := range g.adj[id] {
		for _, w := range weights {
			out = append(out, Edge{From: id, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out, nil
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// ensureVertex registers id, initializing its adjacency row.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adj[id] = make(map[string][]float64)
}

// addWeight records one already-validated edge, mirroring undirected
// non-loop edges into the reverse adjacency row.
// Caller must hold the write lock and must have ensured both endpoints.
func (g *Graph) addWeight(from, to string, weight float64) {
	g.adj[from][to] = append(g.adj[from][to], weight)
	if !g.directed && from != to {
		g.adj[to][from] = append(g.adj[to][from], weight)
	}
	g.edgeCount++
}
