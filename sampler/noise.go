// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math"

// GumbelNoise returns [size] independent Gumbel-distributed samples scaled by
// [temperature], drawn from the process-global source. The i-th sample is
// intended to perturb the i-th item of whatever sequence the caller is
// ranking, but the slice can be used standalone wherever Gumbel noise is
// needed.
//
// A non-positive or non-finite temperature is not rejected; it yields zero,
// infinite, or NaN samples accordingly.
func GumbelNoise(size int, temperature float64) []float64 {
	return gumbelNoise(globalRNG, size, temperature)
}

// DeterministicGumbelNoise is GumbelNoise drawing from the provided source.
func DeterministicGumbelNoise(source Source, size int, temperature float64) []float64 {
	return gumbelNoise(&rng{rng: source}, size, temperature)
}

func gumbelNoise(r *rng, size int, temperature float64) []float64 {
	noise := make([]float64, size)
	for i := range noise {
		// Standard inverse-CDF construction. u is clamped away from 0 and 1,
		// so both logarithms are finite.
		u := r.float64Open()
		noise[i] = -math.Log(-math.Log(u)) * temperature
	}
	return noise
}
