package wiener_test

import (
	"fmt"

	"github.com/katalvlaran/vitality/core"
	"github.com/katalvlaran/vitality/wiener"
)

// ExampleIndex computes the Wiener index of a triangle: three vertex pairs,
// each at distance 1.
func ExampleIndex() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "A", 0)

	w, err := wiener.Index(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(w)
	// Output:
	// 3
}

// ExampleIndex_weighted shows weighted distances: the direct A—C edge is
// more expensive than the detour through B, so Dijkstra ignores it.
func ExampleIndex_weighted() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	w, _ := wiener.Index(g)
	fmt.Println(w)

	hops, _ := wiener.Index(g, wiener.WithUnitWeights())
	fmt.Println(hops)
	// Output:
	// 6
	// 3
}
