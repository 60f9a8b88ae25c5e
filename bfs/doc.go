// Package bfs provides breadth-first search over a core.Graph, following only
// edges that still carry residual flow.
//
// What
//
//   - Search(g, start, target) explores vertices in non-decreasing edge count
//     from start and stops as soon as target is dequeued.
//   - Returns a BFSResult containing:
//   - Order:      dequeue sequence
//   - Depth:      vertex → distance (edges) from start
//   - ParentEdge: vertex → ID of the edge it was first reached through
//   - Found:      whether target was dequeued
//   - BFSResult.WalkTo rebuilds a core.Walk (vertices, edge IDs, bottleneck).
//   - FindPath(g) is Search from g.Source() to g.Sink() packaged as a walk,
//     returning ErrNoPath when the sink is out of reach.
//
// Why edge IDs?
//
//	Parent links record the concrete edge, not just the predecessor vertex.
//	With parallel edges this tells the caller exactly which residual counter
//	the walk used, so the bottleneck and the later subtraction agree.
//
// Determinism
//
//	core.Graph.EdgesFrom returns edges in insertion order and BFS enqueues
//	heads in that order, so among equally short walks the one through
//	earlier-inserted edges is returned.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	walk, err := bfs.FindPath(g)
//	switch {
//	case errors.Is(err, bfs.ErrNoPath):
//	    // no more source→sink flow
//	case err != nil:
//	    // cancellation
//	default:
//	    // walk.Vertices, walk.EdgeIDs, walk.Bottleneck
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, PositiveFlow filter.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithFilterEdge(fn):    replace the edge admission rule.
//   - WithOnEnqueue(fn):     hook when a vertex is enqueued.
//   - WithOnDequeue(fn):     hook when a vertex is dequeued.
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrNoPath             FindPath only; normal termination signal.
//   - ErrTargetNotReached   WalkTo on a vertex the search never reached.
//   - wrapped context errors on cancellation.
package bfs
