// SPDX-License-Identifier: MIT
// Package: flowdecomp/builder
//
// weight_fn.go: record weight generators.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn draws a positive record weight.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns value. Panics if value ≤ 0.
func ConstantWeightFn(value int64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [min, max]. Panics unless
// 0 < min ≤ max. A nil rng yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
