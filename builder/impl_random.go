// SPDX-License-Identifier: MIT
// Package: flowdecomp/builder
//
// impl_random.go - RandomRoutes and RandomLoops constructors.
//
// Canonical model:
//   - A random route is 1, then a random ordered subset of the internal
//     vertices 2..V-1 (possibly empty), then V.
//   - A random loop is a random ordered subset of at least two internal
//     vertices, closed back to its first vertex.
//   - Weights come from cfg.weightFn.
//
// Contract:
//   - count ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil when count > 0 (else ErrNeedRandSource).
//   - RandomLoops needs V ≥ 4 (two internal vertices) when count > 0.
//
// Determinism:
//   - Draw order is fixed: for each record, subset then weight.

package builder

import "fmt"

const (
	methodRandomRoutes = "RandomRoutes"
	methodRandomLoops  = "RandomLoops"
	minLoopInner       = 2
)

// RandomRoutes adds count random source→sink routes.
func RandomRoutes(count int) Constructor {
	return func(n *Network, cfg builderConfig) error {
		if err := checkRandom(methodRandomRoutes, count, cfg); err != nil || count == 0 {
			return err
		}
		inner := n.vertices - 2
		for i := 0; i < count; i++ {
			k := 0
			if inner > 0 {
				k = cfg.rng.Intn(inner + 1)
			}
			vs := append([]int{1}, n.innerSubset(cfg, k)...)
			vs = append(vs, n.vertices)
			if err := n.addRoute(methodRandomRoutes, cfg.weightFn(cfg.rng), vs); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomLoops adds count random loops over internal vertices.
func RandomLoops(count int) Constructor {
	return func(n *Network, cfg builderConfig) error {
		if err := checkRandom(methodRandomLoops, count, cfg); err != nil || count == 0 {
			return err
		}
		inner := n.vertices - 2
		if inner < minLoopInner {
			return fmt.Errorf("%s: %d internal vertices < min=%d: %w",
				methodRandomLoops, inner, minLoopInner, ErrTooFewVertices)
		}
		for i := 0; i < count; i++ {
			k := minLoopInner + cfg.rng.Intn(inner-minLoopInner+1)
			if err := n.addLoop(methodRandomLoops, cfg.weightFn(cfg.rng), n.innerSubset(cfg, k)); err != nil {
				return err
			}
		}

		return nil
	}
}

func checkRandom(method string, count int, cfg builderConfig) error {
	if count < 0 {
		return fmt.Errorf("%s: count=%d < 0: %w", method, count, ErrTooFewVertices)
	}
	if count > 0 && cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// innerSubset returns k distinct vertices from 2..V-1 in random order.
func (n *Network) innerSubset(cfg builderConfig, k int) []int {
	perm := cfg.rng.Perm(n.vertices - 2)
	out := make([]int, k)
	for i := range out {
		out[i] = perm[i] + 2
	}

	return out
}
