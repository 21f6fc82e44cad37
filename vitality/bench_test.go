package vitality_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/vitality/core"
	"github.com/katalvlaran/vitality/vitality"
)

// benchGraph builds an n-cycle with chords every four vertices: connected,
// with enough structure that per-node removals differ.
func benchGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%n), 0)
	}
	for i := 0; i < n; i += 4 {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+n/2)%n), 0)
	}

	return g
}

// BenchmarkCloseness_Serial evaluates all nodes on a single worker.
func BenchmarkCloseness_Serial(b *testing.B) {
	g := benchGraph(48)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = vitality.Closeness(g, vitality.WithWorkers(1))
	}
}

// BenchmarkCloseness_Parallel evaluates all nodes with the default pool
// (one worker per execution unit).
func BenchmarkCloseness_Parallel(b *testing.B) {
	g := benchGraph(48)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = vitality.Closeness(g)
	}
}
