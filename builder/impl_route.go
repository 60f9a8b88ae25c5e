// SPDX-License-Identifier: MIT
// Package: flowdecomp/builder
//
// impl_route.go - Route and Chain constructors.
//
// Contract:
//   - weight > 0 (else ErrInvalidWeight).
//   - A route lists at least two vertices, starts at 1 and ends at V
//     (else ErrTooFewVertices / ErrBadEndpoints).
//   - Vertices lie in 1..V (else ErrVertexOutOfRange).
//   - The route is recorded as a path of the truth decomposition.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowdecomp/flow"
)

const (
	methodRoute = "Route"
	methodChain = "Chain"
	minRouteLen = 2
)

// Route adds weight units of flow along vs, a source→sink walk.
func Route(weight int64, vs ...int) Constructor {
	route := append([]int(nil), vs...)

	return func(n *Network, _ builderConfig) error {
		return n.addRoute(methodRoute, weight, route)
	}
}

// Chain adds weight units along 1 → 2 → … → V.
func Chain(weight int64) Constructor {
	return func(n *Network, _ builderConfig) error {
		vs := make([]int, n.vertices)
		for i := range vs {
			vs[i] = i + 1
		}

		return n.addRoute(methodChain, weight, vs)
	}
}

func (n *Network) addRoute(method string, weight int64, vs []int) error {
	if weight <= 0 {
		return fmt.Errorf("%s: weight=%d: %w", method, weight, ErrInvalidWeight)
	}
	if len(vs) < minRouteLen {
		return fmt.Errorf("%s: %d vertices < min=%d: %w", method, len(vs), minRouteLen, ErrTooFewVertices)
	}
	if err := n.checkVertices(method, vs); err != nil {
		return err
	}
	if vs[0] != 1 || vs[len(vs)-1] != n.vertices {
		return fmt.Errorf("%s: %v: %w", method, vs, ErrBadEndpoints)
	}

	n.addWalk(vs, weight)
	n.truth.Paths = append(n.truth.Paths, flow.Path{Weight: weight, Vertices: vs})

	return nil
}
