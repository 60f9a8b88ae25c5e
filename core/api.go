// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters: vertex range, source/sink, counts, Stats.
// Policy:
//   - No algorithms or hidden state here.

package core

import "sort"

// VertexCount returns V, the number of vertices the graph was built for.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return g.vertices }

// Source returns the fixed source vertex (always 1).
func (g *Graph) Source() int { return 1 }

// Sink returns the fixed sink vertex (always V).
func (g *Graph) Sink() int { return g.vertices }

// EdgeCount returns the number of stored edges, parallel edges counted separately.
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns 1..V in ascending order.
// Complexity: O(V)
func (g *Graph) Vertices() []int {
	out := make([]int, 0, g.vertices)
	for v := 1; v <= g.vertices; v++ {
		out = append(out, v)
	}

	return out
}

// Tails returns, in ascending order, the vertices in 1..V that have at least
// one outgoing edge. Scanning Tails visits the same edges as scanning
// Vertices, without touching the vertices that have none.
// Complexity: O(T log T) for T tail vertices.
func (g *Graph) Tails() []int {
	out := make([]int, 0, len(g.adjacency))
	for u, ids := range g.adjacency {
		if u >= 1 && u <= g.vertices && len(ids) > 0 {
			out = append(out, u)
		}
	}
	sort.Ints(out)

	return out
}

// SearchBound returns the most vertices a single search from one vertex can
// reach: min(V, EdgeCount()+1). Use it as a size hint instead of V.
// Complexity: O(1)
func (g *Graph) SearchBound() int {
	return min(g.vertices, len(g.edges)+1)
}

// TotalFlow returns the sum of residual flow over all edges.
// Each decomposition step lowers it by at least one unit per traversed edge.
// Complexity: O(E)
func (g *Graph) TotalFlow() int64 {
	var sum int64
	for _, e := range g.edges {
		sum += e.Flow
	}

	return sum
}

// GraphStats is a read-only snapshot of graph size and flow magnitudes.
type GraphStats struct {
	VertexCount       int
	EdgeCount         int
	ParallelPairCount int   // endpoint pairs carried by more than one edge
	TotalFlow         int64 // sum of residual flow
	MaxEdgeFlow       int64 // largest residual flow on a single edge
}

// Stats produces a snapshot of counts and flow magnitudes.
//
// Returns:
//   - *GraphStats with counts taken at call time.
//
// Complexity: O(E)
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount: g.vertices,
		EdgeCount:   len(g.edges),
	}
	for _, n := range g.pairs {
		if n > 1 {
			stats.ParallelPairCount++
		}
	}
	for _, e := range g.edges {
		stats.TotalFlow += e.Flow
		if e.Flow > stats.MaxEdgeFlow {
			stats.MaxEdgeFlow = e.Flow
		}
	}

	return &stats
}
