// SPDX-License-Identifier: MIT
// Package: flowdecomp/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildNetwork(vertices, bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors only ever ADD whole records (a route or a loop) to the network,
//     so every internal vertex conserves flow by construction.
//   - The records themselves are kept as the network's Truth decomposition.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowdecomp/core"
	"github.com/katalvlaran/flowdecomp/flow"
)

// Constructor adds records to a network under construction using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(n *Network, cfg builderConfig) error

// BuildNetwork creates an empty network over vertices 1..vertices, resolves
// the builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildNetwork: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrTooFewVertices if vertices < 2.
//   - Wraps constructor errors via %w; branch with errors.Is against the
//     builder sentinels.
func BuildNetwork(vertices int, bopts []BuilderOption, cons ...Constructor) (*Network, error) {
	if vertices < minVertices {
		return nil, fmt.Errorf("BuildNetwork: vertices=%d < min=%d: %w", vertices, minVertices, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(bopts...)
	n := newNetwork(vertices)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildNetwork: shuffled edges: %w", ErrNeedRandSource)
		}
		cfg.rng.Shuffle(len(n.order), func(i, j int) { n.order[i], n.order[j] = n.order[j], n.order[i] })
	}

	return n, nil
}

// Network is a flow network assembled from known records.
// Flow per (u, v) pair is the sum of every record crossing it.
type Network struct {
	vertices int
	order    []core.EdgeKey         // first-use order (or shuffled)
	flows    map[core.EdgeKey]int64 // summed flow per pair
	truth    flow.Decomposition
}

func newNetwork(vertices int) *Network {
	return &Network{vertices: vertices, flows: make(map[core.EdgeKey]int64)}
}

// Vertices returns V; the source is 1 and the sink is V.
func (n *Network) Vertices() int { return n.vertices }

// EdgeCount returns the number of distinct (u, v) pairs.
func (n *Network) EdgeCount() int { return len(n.order) }

// Graph materializes the network as a core.Graph with one edge per pair,
// in the network's edge order.
func (n *Network) Graph(opts ...core.GraphOption) *core.Graph {
	opts = append([]core.GraphOption{core.WithEdgeCapacity(len(n.order))}, opts...)
	g := core.NewGraph(n.vertices, opts...)
	for _, k := range n.order {
		// Pairs are distinct and flows positive, so AddEdge cannot fail.
		_, _ = g.AddEdge(k.From, k.To, n.flows[k])
	}

	return g
}

// Truth returns a copy of the records the network was built from, in
// construction order. It is a valid decomposition of Graph().
func (n *Network) Truth() *flow.Decomposition {
	d := &flow.Decomposition{
		Paths:  make([]flow.Path, len(n.truth.Paths)),
		Cycles: make([]flow.Cycle, len(n.truth.Cycles)),
	}
	for i, p := range n.truth.Paths {
		d.Paths[i] = flow.Path{Weight: p.Weight, Vertices: append([]int(nil), p.Vertices...)}
	}
	for i, c := range n.truth.Cycles {
		d.Cycles[i] = flow.Cycle{Weight: c.Weight, Vertices: append([]int(nil), c.Vertices...)}
	}

	return d
}

// addWalk credits w to every consecutive pair of vs.
func (n *Network) addWalk(vs []int, w int64) {
	for i := 0; i+1 < len(vs); i++ {
		k := core.EdgeKey{From: vs[i], To: vs[i+1]}
		if _, ok := n.flows[k]; !ok {
			n.order = append(n.order, k)
		}
		n.flows[k] += w
	}
}

// checkVertices reports the first vertex outside 1..V.
func (n *Network) checkVertices(method string, vs []int) error {
	for _, v := range vs {
		if v < 1 || v > n.vertices {
			return fmt.Errorf("%s: vertex %d not in [1,%d]: %w", method, v, n.vertices, ErrVertexOutOfRange)
		}
	}

	return nil
}
