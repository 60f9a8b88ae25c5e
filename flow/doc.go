// Package flow decomposes an integer flow on a *core.Graph into weighted
// source→sink paths and weighted elementary cycles whose superposition
// reproduces every edge's flow.
//
// The algorithm is a greedy, first-found extraction loop in two phases:
//
//   - Paths
//
//   - Method: breadth-first search for a fewest-edge source→sink walk over
//     edges with positive residual flow (bfs.FindPath).
//
//   - Weight: the walk's bottleneck; subtracted from every edge it used.
//
//   - Stops when the sink is unreachable.
//
//   - Cycles
//
//   - Method: scan closing edges u→v by ascending u, search v→…→u (cycle.Find).
//
//   - Weight: bottleneck over the closing edge and the back-walk.
//
//   - Stops when no positive edge closes into a cycle.
//
// The phases never interleave and the cycle phase never returns to paths.
// Every record has weight ≥ 1, every path runs from vertex 1 to vertex V,
// and every cycle is reported explicitly closed ([u, v, …, u]).
//
// The result is not minimal in the number of paths plus cycles: finding the
// minimum decomposition is NP-hard, and the order-dependent heuristic only
// guarantees determinism.
//
// # Termination
//
// Each extraction lowers the total residual flow by at least one unit, so a
// run performs at most TotalFlow() extractions. Options.MaxIterations caps
// it further; ctx cancellation is checked before every search.
//
// # Parallel edges
//
// Finders report the concrete edge IDs they traversed and the subtraction
// debits exactly those edges. Parallel (u, v) edges therefore keep separate
// residuals, and the per-pair sums of the output still equal the per-pair
// sums of the input.
//
// # API
//
//	func Decompose(
//	    ctx context.Context,
//	    g *core.Graph,
//	    opts *Options,
//	) (*Decomposition, error)
//
// Options (nil uses defaults):
//
//	type Options struct {
//	    Logger        *zap.Logger // nil ⇒ no logging
//	    Verbose       bool        // info-log each extraction
//	    MaxIterations int         // 0 ⇒ unlimited
//	    OnPath        func(Path)
//	    OnCycle       func(Cycle)
//	}
//
// # Errors
//
//	ErrGraphNil        - nil graph.
//	ErrIterationLimit  - MaxIterations extractions did not finish the run.
//	*ExtractionError   - a subtraction failed (never happens with the bundled finders).
//	context.Canceled / context.DeadlineExceeded, wrapped.
//
// Input that violates conservation is not rejected: the run ends with
// Decomposition.Residual > 0 and a warning on the logger.
package flow
