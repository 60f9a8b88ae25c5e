// Package bfs provides breadth-first search over a core.Graph, restricted to
// edges admitted by a filter (positive residual flow by default).
//
// It is the PathFinder of a decomposition run: FindPath returns a fewest-edge
// source→sink walk, with ties broken by edge insertion order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/flowdecomp/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	target  int
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// Search runs breadth-first search on g from start, stopping as soon as
// target is dequeued. Edges are expanded in insertion order and only when
// FilterEdge admits them; each vertex is entered at most once, so every
// reconstructed walk is simple.
//
// The start vertex is marked visited before the loop: a search never walks
// back into it, and Search(g, v, v) finds v immediately with an empty walk.
//
// Returns ErrGraphNil for a nil graph or the context error on cancellation.
// An unreachable target is not an error: Result.Found is false.
func Search(g *core.Graph, start, target int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hint := g.SearchBound()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		target:  target,
		queue:   make([]queueItem, 0, hint),
		visited: make(map[int]bool, hint),
		res: &BFSResult{
			Start:      start,
			Order:      make([]int, 0, hint),
			Depth:      make(map[int]int, hint),
			ParentEdge: make(map[int]int, hint),
		},
	}

	// Seed queue with start vertex (no parent edge)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// FindPath searches for a source→sink walk over positive-flow edges.
//
// The walk has the fewest edges possible; among equally short walks the one
// using earlier-inserted edges wins. Its Bottleneck is the smallest residual
// flow along it and is at least 1.
//
// Returns ErrNoPath when the sink is unreachable, or when the source is the
// sink (a walk without edges carries no flow).
func FindPath(g *core.Graph, opts ...Option) (*core.Walk, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res, err := Search(g, g.Source(), g.Sink(), opts...)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrNoPath
	}
	walk, err := res.WalkTo(g, g.Sink())
	if err != nil {
		return nil, err
	}
	if walk.Len() == 0 || walk.Bottleneck <= 0 {
		return nil, ErrNoPath
	}

	return walk, nil
}

// enqueue marks v visited at depth d, records the edge that reached it,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(v, d, parentEdge int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parentEdge >= 0 {
		w.res.ParentEdge[v] = parentEdge
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until the target is dequeued, the queue drains,
// or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return fmt.Errorf("bfs: %w", w.ctx.Err())
		default:
		}

		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.v)
		if item.v == w.target {
			w.res.Found = true
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// enqueueNeighbors walks the outgoing edges of item in insertion order and
// enqueues each admitted, unseen head vertex.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, e := range w.graph.EdgesFrom(item.v) {
		if !w.opts.FilterEdge(e) {
			continue
		}
		// first time seen?
		if !w.visited[e.To] {
			w.enqueue(e.To, item.depth+1, e.ID)
		}
	}
}
