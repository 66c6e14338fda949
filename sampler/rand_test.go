// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat64OpenRange(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 10000; i++ {
		v := globalRNG.float64Open()
		require.GreaterOrEqual(v, boundaryEpsilon)
		require.LessOrEqual(v, 1-boundaryEpsilon)
	}
}

func TestFloat64OpenClampsExtremeSources(t *testing.T) {
	require := require.New(t)

	low := &rng{rng: &cycleSource{values: []uint64{0}}}
	require.Equal(boundaryEpsilon, low.float64Open())

	high := &rng{rng: &cycleSource{values: []uint64{math.MaxUint64}}}
	require.Equal(1-boundaryEpsilon, high.float64Open())
}
