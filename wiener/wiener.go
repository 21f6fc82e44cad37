// Package wiener implements the Wiener index over core graphs.
//
// Index runs one single-source shortest-path pass per vertex: BFS when
// distances are unit, Dijkstra (lazy-decrease-key min-heap) when they follow
// edge weights. Parallel edges contribute their cheapest weight.
package wiener

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/vitality/core"
)

// Index returns the Wiener index of g: the sum of shortest-path distances
// over all vertex pairs (unordered pairs for undirected graphs, ordered
// pairs for directed ones).
//
// Returns:
//
//   - 0 for graphs with fewer than two vertices.
//   - +Inf when some pair of vertices has no connecting path.
//   - ErrNilGraph for a nil graph, ErrNegativeWeight when a weighted pass
//     would traverse a negative edge.
//
// Complexity: O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted.
func Index(g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	if len(vertices) < 2 {
		return 0, nil
	}

	// Unweighted graphs carry no distance information beyond hop counts.
	unit := cfg.UnitWeights || !g.Weighted()

	// Fail fast on negative weights before any traversal starts.
	if !unit {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return 0, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	var total float64
	for _, src := range vertices {
		dist, err := distancesFrom(g, src, unit)
		if err != nil {
			return 0, err
		}
		for _, v := range vertices {
			if v == src {
				continue
			}
			d, ok := dist[v]
			if !ok {
				// v is unreachable from src: the graph is not (strongly)
				// connected and the index is +Inf by convention.
				return math.Inf(1), nil
			}
			total += d
		}
	}

	// Undirected traversals visit every unordered pair twice.
	if !g.Directed() {
		total /= 2
	}

	return total, nil
}

// distancesFrom returns shortest-path distances from src to every reachable
// vertex. Unreachable vertices are absent from the result map.
func distancesFrom(g *core.Graph, src string, unit bool) (map[string]float64, error) {
	if unit {
		return bfsDistances(g, src)
	}

	return dijkstraDistances(g, src)
}

// bfsDistances walks g breadth-first from src, assigning hop-count distances.
func bfsDistances(g *core.Graph, src string) (map[string]float64, error) {
	dist := map[string]float64{src: 0}
	queue := []string{src}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("wiener: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			if _, seen := dist[e.To]; seen {
				continue
			}
			dist[e.To] = dist[u] + 1
			queue = append(queue, e.To)
		}
	}

	return dist, nil
}

// dijkstraDistances computes weighted shortest-path distances from src using
// a min-heap with the lazy-decrease-key strategy: shorter rediscoveries push
// duplicate heap entries, and stale entries are skipped when popped.
func dijkstraDistances(g *core.Graph, src string) (map[string]float64, error) {
	dist := map[string]float64{src: 0}
	done := make(map[string]bool)

	pq := make(nodePQ, 0, g.VertexCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if done[u] {
			continue // stale lazy-decrease-key entry
		}
		done[u] = true

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("wiener: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			next := dist[u] + e.Weight
			if best, seen := dist[e.To]; seen && next >= best {
				continue
			}
			dist[e.To] = next
			heap.Push(&pq, &nodeItem{id: e.To, dist: next})
		}
	}

	return dist, nil
}

// nodeItem pairs a vertex with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
