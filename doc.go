// Package flowdecomp splits a flow on a directed network into weighted
// source→sink paths and weighted cycles, and scores such decompositions.
//
// 🚀 What is flowdecomp?
//
//	A small, deterministic toolkit around one greedy heuristic:
//		• Paths phase: repeatedly take a fewest-edge path from vertex 1 to
//		  vertex V over positive flow and subtract its bottleneck
//		• Cycles phase: repeatedly close a cycle through the first edge that
//		  still carries flow and subtract its bottleneck
//		• Verification: rebuild per-edge flow from a decomposition and
//		  compare it with the network; score against a reference
//
// Under the hood, everything is organized into small packages:
//
//	core/     flow graph: integer vertices, parallel edges, residual counters
//	bfs/      breadth-first search over positive-flow edges
//	cycle/    first-found cycle over positive-flow edges
//	flow/     the two-phase decomposer
//	verify/   reconstruction, checks, scoring, fixture bounds
//	format/   .graph and .out/.truth text formats
//	builder/  conserving networks from routes and loops, for fixtures and tests
//	cmd/      flowdecomp (decompose one file), flowscore (score a batch),
//	          flowgen (write a random fixture)
//
// Quick ASCII example:
//
//	    1 ──3──▶ 2 ──5──▶ 3 ──3──▶ 4
//	             ▲        │
//	             └───2────┘
//
//	decomposes into the path 1→2→3→4 (weight 3) and the cycle 2→3→2 (weight 2).
//
//	go install github.com/katalvlaran/flowdecomp/cmd/...
package flowdecomp
