// Package core defines the FlowGraph used by every decomposition run: a
// directed multigraph over integer vertices where each edge carries a
// mutable residual flow counter.
//
// This file declares Edge, EdgeKey, Walk, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEdgeNotFound   - an edge ID outside the catalog was referenced.
//	ErrParallelEdge   - a second (u, v) edge was added to a graph built WithoutParallelEdges.
//	ErrFlowUnderflow  - a subtraction would drive a residual counter below zero.
//	EdgeError         - an edge was declared with negative flow.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEdgeNotFound indicates an operation referenced a non-existent edge ID.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrParallelEdge indicates a duplicate (u, v) edge on a graph that forbids them.
	ErrParallelEdge = errors.New("core: parallel edge not allowed")

	// ErrFlowUnderflow indicates a subtraction larger than the residual flow left on an edge.
	ErrFlowUnderflow = errors.New("core: residual flow underflow")
)

// EdgeError is returned when an edge is declared with a negative flow.
type EdgeError struct {
	From, To int
	Flow     int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("core: negative flow on edge %d→%d: %d", e.From, e.To, e.Flow)
}

// Edge is one directed edge of the network.
//
// ID is the edge's insertion index and never changes. Flow is the residual
// counter: it starts at the declared flow and only ever decreases.
type Edge struct {
	// ID is the dense, 0-based insertion index of this edge.
	ID int

	// From is the tail vertex.
	From int

	// To is the head vertex.
	To int

	// Flow is the residual (not yet decomposed) flow on this edge.
	Flow int64
}

// Key returns the endpoint pair of e.
func (e *Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To} }

// EdgeKey identifies an edge by endpoints only. Parallel edges share a key.
type EdgeKey struct {
	From, To int
}

func (k EdgeKey) String() string { return fmt.Sprintf("(%d, %d)", k.From, k.To) }

// Walk is a sequence of vertices joined by concrete edges.
//
// EdgeIDs[i] joins Vertices[i] and Vertices[i+1], so a walk with k edges has
// k+1 vertices. Bottleneck is the smallest residual flow among EdgeIDs at the
// time the walk was found, or 0 for a walk without edges.
type Walk struct {
	Vertices   []int
	EdgeIDs    []int
	Bottleneck int64
}

// Len returns the number of edges in w.
func (w *Walk) Len() int { return len(w.EdgeIDs) }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithoutParallelEdges rejects a second edge between the same ordered pair
// of vertices with ErrParallelEdge.
func WithoutParallelEdges() GraphOption {
	return func(g *Graph) { g.forbidParallel = true }
}

// WithEdgeCapacity preallocates room for n edges.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]*Edge, 0, n)
		}
	}
}

// Graph is the FlowGraph: a directed multigraph with residual flow per edge.
//
// Vertex 1 is the source and vertex V (the vertex count) is the sink.
// Edges are stored by ID; adjacency keeps, per tail vertex, the IDs of its
// outgoing edges in insertion order. A Graph is owned by a single run and is
// not safe for concurrent mutation.
type Graph struct {
	vertices       int
	forbidParallel bool

	edges     []*Edge       // edge ID → Edge
	adjacency map[int][]int // tail vertex → outgoing edge IDs, insertion order
	pairs     map[EdgeKey]int
}

// NewGraph creates an empty Graph over vertices 1..vertices.
// Parallel edges are allowed unless WithoutParallelEdges is given.
// Complexity: O(1)
func NewGraph(vertices int, opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  vertices,
		adjacency: make(map[int][]int),
		pairs:     make(map[EdgeKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
