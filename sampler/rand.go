// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// boundaryEpsilon keeps uniform draws strictly inside (0, 1) so that the
// double logarithm in the Gumbel transform always stays finite.
const boundaryEpsilon = 1e-10

var globalRNG = newRNG()

func newRNG() *rng {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need for the sampling order to be unpredictable.
	source := prng.NewMT19937()
	source.Seed(uint64(time.Now().UnixNano()))
	return &rng{rng: source}
}

type rng struct {
	lock sync.Mutex
	rng  Source
}

// Source produces the uniform variates consumed by the noise generator. The
// package-level functions draw from a process-global locked source; callers
// that need reproducible output or an unshared generator supply their own
// Source through the Deterministic constructors.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// float64Open returns a pseudo-random number in the open interval
// (boundaryEpsilon, 1-boundaryEpsilon).
func (r *rng) float64Open() float64 {
	// Use the top 53 bits so every value is an exact multiple of 2^-53, the
	// same construction math/rand uses for Float64.
	f := float64(r.uint64()>>11) / (1 << 53)
	switch {
	case f < boundaryEpsilon:
		return boundaryEpsilon
	case f > 1-boundaryEpsilon:
		return 1 - boundaryEpsilon
	default:
		return f
	}
}

// uint64 returns a random number in [0, MaxUint64]
func (r *rng) uint64() uint64 {
	// Note: We must grab a write lock here because rng.Uint64 internally
	// modifies state.
	r.lock.Lock()
	n := r.rng.Uint64()
	r.lock.Unlock()
	return n
}
