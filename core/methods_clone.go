// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves edge IDs and adjacency order exactly.

package core

// Clone returns a deep copy of the Graph: configuration, edges with their
// current residual flow, and adjacency order.
//
// A decomposition run consumes its graph; callers that still need the
// original flow afterwards decompose a clone.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph(g.vertices, WithEdgeCapacity(len(g.edges)))
	clone.forbidParallel = g.forbidParallel

	for _, e := range g.edges {
		clone.edges = append(clone.edges, &Edge{ID: e.ID, From: e.From, To: e.To, Flow: e.Flow})
	}
	for u, ids := range g.adjacency {
		clone.adjacency[u] = append([]int(nil), ids...)
	}
	for k, n := range g.pairs {
		clone.pairs[k] = n
	}

	return clone
}
