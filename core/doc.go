// Package core provides the FlowGraph: an in-memory directed multigraph over
// integer vertices 1..V whose edges carry mutable residual flow.
//
// The graph G = (V, E) is shaped for flow decomposition:
//
//   - Vertex 1 is the source and vertex V is the sink.
//   - Every edge has a stable integer ID (its insertion index) and a Flow
//     field that is the residual counter.
//   - Parallel edges are kept as distinct records; EdgeKey groups them by
//     endpoints when an aggregate view is needed (FlowByPair).
//   - Adjacency is insertion-ordered, so every traversal built on top of
//     EdgesFrom is deterministic.
//
// Why edge identity?
//
//	A walk found by a search is recorded as the IDs of the edges it used
//	(Walk.EdgeIDs). Subtracting a bottleneck from exactly those edges keeps
//	parallel edges apart, and the per-pair sums still match what a reader of
//	the text format (which only knows vertices) reconstructs.
//
// Configuration Options (GraphOption):
//
//	– WithoutParallelEdges()
//	    A second AddEdge(u, v) returns ErrParallelEdge.
//
//	– WithEdgeCapacity(n)
//	    Preallocates the edge catalog.
//
// Core Methods:
//
//	AddEdge(u, v int, flow int64) (*Edge, error)   // O(1)
//	EdgesFrom(u int) []*Edge                       // O(deg(u)), insertion order
//	Edge(id int) (*Edge, error)                    // O(1)
//	Subtract(id int, w int64) error                // O(1), never below zero
//	Bottleneck(ids []int) int64                    // O(len(ids))
//	FlowByPair() map[EdgeKey]int64                 // O(E)
//	Clone() *Graph                                 // O(V+E)
//	Stats() *GraphStats                            // O(E)
//	Tails() []int                                  // O(T log T), tails in 1..V
//	SearchBound() int                              // O(1), min(V, E+1)
//
// Size hints come from SearchBound, never from V: a header may declare far
// more vertices than the edges touch.
//
// Invariant: every residual flow is ≥ 0 at all times and only decreases
// after AddEdge. Subtract enforces it with ErrFlowUnderflow.
//
// Concurrency: a Graph belongs to one decomposition run and carries no locks.
package core
