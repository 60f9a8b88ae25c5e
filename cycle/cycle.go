// Package cycle finds one elementary cycle made only of edges with positive
// residual flow. Find scans candidate closing edges u→v in a fixed order and,
// for each, searches breadth-first from v back to u; the first candidate that
// closes wins. It is a first-found heuristic: the cycle returned is neither
// the heaviest nor the shortest overall.
//
// Complexity:
//
//   - Time:   O(E · (V + E)) in the worst case (one BFS per candidate edge)
//   - Memory: O(V)
package cycle

import (
	"fmt"

	"github.com/katalvlaran/flowdecomp/bfs"
	"github.com/katalvlaran/flowdecomp/core"
)

// Find returns one elementary cycle over positive-flow edges as a closed walk.
//
// Candidate edges are scanned by ascending tail vertex u in 1..V, then in
// insertion order within u. For the first candidate u→v whose head can reach
// u again, the result is:
//
//	Vertices = [u, v, …, u]          (explicitly closed)
//	EdgeIDs  = [u→v, v→…, …→u]       (closing edge first)
//	Bottleneck = min residual over EdgeIDs
//
// A self-loop u→u yields Vertices [u, u] with a single edge.
//
// Returns ErrGraphNil, ErrNoCycle, or a wrapped context error.
func Find(g *core.Graph, opts ...Option) (*core.Walk, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, u := range g.Tails() {
		for _, e := range g.EdgesFrom(u) {
			if e.Flow <= 0 {
				continue
			}
			o.OnCandidate(e.From, e.To, e.ID)

			walk, err := closeFrom(g, e, o)
			if err != nil {
				return nil, err
			}
			if walk != nil && walk.Bottleneck > 0 {
				return walk, nil
			}
		}
	}

	return nil, ErrNoCycle
}

// closeFrom searches v→…→u for the candidate edge e = u→v and, on success,
// prepends e to form the closed walk. Returns (nil, nil) if u is unreachable.
func closeFrom(g *core.Graph, e *core.Edge, o Options) (*core.Walk, error) {
	res, err := bfs.Search(g, e.To, e.From, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("cycle: search back from %d: %w", e.To, err)
	}
	if !res.Found {
		return nil, nil
	}
	back, err := res.WalkTo(g, e.From)
	if err != nil {
		return nil, err
	}

	// back.Vertices is [v, …, u]; the cycle is u followed by it.
	vertices := make([]int, 0, len(back.Vertices)+1)
	vertices = append(vertices, e.From)
	vertices = append(vertices, back.Vertices...)

	edgeIDs := make([]int, 0, len(back.EdgeIDs)+1)
	edgeIDs = append(edgeIDs, e.ID)
	edgeIDs = append(edgeIDs, back.EdgeIDs...)

	return &core.Walk{
		Vertices:   vertices,
		EdgeIDs:    edgeIDs,
		Bottleneck: g.Bottleneck(edgeIDs),
	}, nil
}
