// Package cycle implements the cycle search of a flow decomposition run.
//
// Once no source→sink walk carries flow, whatever flow remains circulates.
// Find locates one elementary cycle along positive-residual edges so the
// caller can peel its bottleneck off and repeat.
//
// Why BFS back-walks?
//
//	Every cycle through an edge u→v is that edge plus a walk v→…→u. A
//	breadth-first search from v with visited marking yields the shortest such
//	walk, which never repeats a vertex, so the cycle is elementary.
//
// Determinism:
//
//	Candidates are tried by ascending tail vertex (1..V) and insertion order
//	within a vertex; the back-walk inherits bfs's insertion-order tie-break.
//	Edges whose tail lies outside 1..V are never tried as candidates.
//
// Usage:
//
//	walk, err := cycle.Find(g)
//	if errors.Is(err, cycle.ErrNoCycle) {
//	    // residual flow is exhausted (or not circulating)
//	}
//	// walk.Vertices == [u, v, …, u]
package cycle
