// SPDX-License-Identifier: MIT
// Package: flowdecomp/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (vertices, route or
// loop length) is smaller than the constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor or option
// requires a *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates a record weight ≤ 0.
var ErrInvalidWeight = errors.New("builder: weight must be positive")

// ErrVertexOutOfRange indicates a vertex outside 1..V.
var ErrVertexOutOfRange = errors.New("builder: vertex out of range")

// ErrBadEndpoints indicates a route that does not run from 1 to V.
var ErrBadEndpoints = errors.New("builder: route must run from source to sink")

// ErrConstructFailed indicates a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
