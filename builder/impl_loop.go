// SPDX-License-Identifier: MIT
// Package: flowdecomp/builder
//
// impl_loop.go - Loop constructor.
//
// Contract:
//   - weight > 0 (else ErrInvalidWeight).
//   - vs lists the loop's vertices once each, open or already closed
//     (first vertex repeated last); at least one vertex (a self-loop).
//   - Vertices lie in 1..V (else ErrVertexOutOfRange).
//   - The loop is recorded closed, as a cycle of the truth decomposition.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowdecomp/flow"
)

const (
	methodLoop = "Loop"
	minLoopLen = 1
)

// Loop adds weight units of circulating flow around vs.
func Loop(weight int64, vs ...int) Constructor {
	loop := append([]int(nil), vs...)

	return func(n *Network, _ builderConfig) error {
		return n.addLoop(methodLoop, weight, loop)
	}
}

func (n *Network) addLoop(method string, weight int64, vs []int) error {
	if weight <= 0 {
		return fmt.Errorf("%s: weight=%d: %w", method, weight, ErrInvalidWeight)
	}
	if len(vs) > 1 && vs[0] == vs[len(vs)-1] {
		vs = vs[:len(vs)-1]
	}
	if len(vs) < minLoopLen {
		return fmt.Errorf("%s: %d vertices < min=%d: %w", method, len(vs), minLoopLen, ErrTooFewVertices)
	}
	if err := n.checkVertices(method, vs); err != nil {
		return err
	}

	closed := append(append(make([]int, 0, len(vs)+1), vs...), vs[0])
	n.addWalk(closed, weight)
	n.truth.Cycles = append(n.truth.Cycles, flow.Cycle{Weight: weight, Vertices: closed})

	return nil
}
