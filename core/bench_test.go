// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/flowdecomp/core"
)

// BenchmarkAddEdge measures appending edges to a single fan-out vertex.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(b.N + 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(1, i+2, int64(i))
	}
}

// BenchmarkEdgesFrom measures adjacency reads on a vertex with 100 edges.
func BenchmarkEdgesFrom(b *testing.B) {
	g := core.NewGraph(101)
	for v := 2; v <= 101; v++ {
		_, _ = g.AddEdge(1, v, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.EdgesFrom(1)
	}
}
