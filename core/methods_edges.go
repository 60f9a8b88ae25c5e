// File: methods_edges.go
// Role: Edge lifecycle and residual bookkeeping: AddEdge, Edge, Edges,
//       EdgesFrom, Subtract, Bottleneck, FlowByPair.
// Determinism:
//   - Edges() and EdgesFrom() return edges in insertion order.
//   - Edge IDs are dense and assigned in insertion order starting at 0.

package core

import "fmt"

// AddEdge appends a new edge u→v carrying flow and returns it.
//
// The edge is never merged with an existing (u, v) edge: parallel edges keep
// independent residual counters. Vertex ids are not checked against [1, V];
// an edge touching an out-of-range vertex is stored but no search starting
// at the source, or scanning vertices 1..V, will begin from it.
//
// Errors:
//   - EdgeError if flow < 0.
//   - ErrParallelEdge if the graph forbids parallel edges and (u, v) exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, flow int64) (*Edge, error) {
	if flow < 0 {
		return nil, EdgeError{From: u, To: v, Flow: flow}
	}
	key := EdgeKey{From: u, To: v}
	if g.forbidParallel && g.pairs[key] > 0 {
		return nil, fmt.Errorf("%w: %s", ErrParallelEdge, key)
	}

	e := &Edge{ID: len(g.edges), From: u, To: v, Flow: flow}
	g.edges = append(g.edges, e)
	g.adjacency[u] = append(g.adjacency[u], e.ID)
	g.pairs[key]++

	return e, nil
}

// Edge returns the edge with the given ID.
// Complexity: O(1)
func (g *Graph) Edge(id int) (*Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return nil, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns all edges in insertion order. The returned edges are live:
// their Flow field reflects, and may be used to change, the residual state.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgesFrom returns the outgoing edges of u in insertion order.
// Unknown vertices yield an empty slice.
// Complexity: O(deg(u))
func (g *Graph) EdgesFrom(u int) []*Edge {
	ids := g.adjacency[u]
	out := make([]*Edge, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.edges[id])
	}

	return out
}

// Subtract removes w units of residual flow from edge id.
//
// Errors:
//   - ErrEdgeNotFound for an unknown id.
//   - ErrFlowUnderflow if w exceeds the residual flow; the edge is left unchanged.
//
// Complexity: O(1)
func (g *Graph) Subtract(id int, w int64) error {
	e, err := g.Edge(id)
	if err != nil {
		return err
	}
	if w > e.Flow {
		return fmt.Errorf("%w: edge %d %s has %d, asked %d", ErrFlowUnderflow, id, e.Key(), e.Flow, w)
	}
	e.Flow -= w

	return nil
}

// Bottleneck returns the minimum residual flow over the given edge IDs,
// or 0 if ids is empty or references an unknown edge.
// Complexity: O(len(ids))
func (g *Graph) Bottleneck(ids []int) int64 {
	if len(ids) == 0 {
		return 0
	}
	var min int64
	for i, id := range ids {
		e, err := g.Edge(id)
		if err != nil {
			return 0
		}
		if i == 0 || e.Flow < min {
			min = e.Flow
		}
	}

	return min
}

// FlowByPair returns the current residual flow aggregated by endpoint pair:
// parallel (u, v) edges are summed into one entry.
// Complexity: O(E)
func (g *Graph) FlowByPair() map[EdgeKey]int64 {
	out := make(map[EdgeKey]int64, len(g.pairs))
	for _, e := range g.edges {
		out[e.Key()] += e.Flow
	}

	return out
}
