// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/flowdecomp/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by FindPath when the sink cannot be reached over
	// positive-flow edges. It is a normal termination signal, not a failure.
	ErrNoPath = errors.New("bfs: no path")

	// ErrTargetNotReached is returned by Result.WalkTo for an unreached vertex.
	ErrTargetNotReached = errors.New("bfs: target not reached")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, with its depth.
	OnEnqueue func(v int, depth int)

	// OnDequeue is called immediately before a vertex's edges are expanded.
	OnDequeue func(v int, depth int)

	// FilterEdge decides which edges may be traversed.
	// The default admits edges with strictly positive residual flow.
	FilterEdge func(e *core.Edge) bool
}

// PositiveFlow admits edges that still carry residual flow.
func PositiveFlow(e *core.Edge) bool { return e.Flow > 0 }

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - PositiveFlow edge filter
//   - no-op hooks (OnEnqueue, OnDequeue).
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(int, int) {},
		OnDequeue:  func(int, int) {},
		FilterEdge: PositiveFlow,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithFilterEdge replaces the edge filter.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// BFSResult holds the outcome of a search:
//   - Order: vertices dequeued, in sequence.
//   - Depth: distance (in edges) from the start for every reached vertex.
//   - ParentEdge: for every reached vertex except the start, the ID of the
//     edge it was first reached through.
//   - Found: whether the target was dequeued.
type BFSResult struct {
	Start      int
	Order      []int
	Depth      map[int]int
	ParentEdge map[int]int
	Found      bool
}

// WalkTo reconstructs the walk from the start vertex to dest by following
// parent edges, and computes its bottleneck on g.
// Returns ErrTargetNotReached if dest was not reached.
func (r *BFSResult) WalkTo(g *core.Graph, dest int) (*core.Walk, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrTargetNotReached, dest)
	}
	// build reversed vertex and edge sequences
	vertices := []int{dest}
	var edgeIDs []int
	for cur := dest; cur != r.Start; {
		id := r.ParentEdge[cur]
		e, err := g.Edge(id)
		if err != nil {
			return nil, err
		}
		edgeIDs = append(edgeIDs, id)
		vertices = append(vertices, e.From)
		cur = e.From
	}
	// reverse to get start → dest
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}
	for i, j := 0, len(edgeIDs)-1; i < j; i, j = i+1, j-1 {
		edgeIDs[i], edgeIDs[j] = edgeIDs[j], edgeIDs[i]
	}

	return &core.Walk{
		Vertices:   vertices,
		EdgeIDs:    edgeIDs,
		Bottleneck: g.Bottleneck(edgeIDs),
	}, nil
}
