// SPDX-License-Identifier: MIT
// Package: flowdecomp/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = ConstantWeightFn(1)
//   • shuffle  = false               (edges in first-use order)

package builder

import "math/rand"

const (
	minVertices        = 2        // source and sink must differ
	defaultConstWeight = int64(1) // record weight when no WeightFn is set
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for random records.
	weightFn WeightFn
	// Shuffle the final edge order with rng.
	shuffle bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
