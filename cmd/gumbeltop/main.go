// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// gumbeltop is a demo driver for the sampler package. It builds a random
// weighted distribution, tallies which index wins the first draw across many
// buckets, and then drains a small fixed bucket to show the
// without-replacement walk.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/gumbeltop/sampler"
)

func main() {
	size := pflag.Int("size", 10, "number of items in the random distribution")
	iterations := pflag.Int("iterations", 1000000, "number of buckets to build for the first-draw tally")
	temperature := pflag.Float64("temperature", 1, "scale applied to the Gumbel noise")
	pflag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	rawWeights := make([]uint32, *size)
	total := uint64(0)
	for i := range rawWeights {
		rawWeights[i] = rand.Uint32() //#nosec G404
		total += uint64(rawWeights[i])
	}

	weights := make([]float64, *size)
	for i, w := range rawWeights {
		weights[i] = float64(w) / float64(total)
	}
	log.Info("built random distribution",
		zap.Int("size", *size),
		zap.Uint64("totalWeight", total),
	)

	counts := make([]int, *size)
	for i := 0; i < *iterations; i++ {
		g := sampler.NewGumbelTop(weights, *temperature)
		if index, ok := g.Draw(); ok {
			counts[index]++
		}
	}

	order := make([]int, *size)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	for _, index := range order {
		log.Info("first-draw frequency",
			zap.Int("index", index),
			zap.Float64("weight", weights[index]),
			zap.Float64("frequency", float64(counts[index])/float64(*iterations)),
		)
	}

	// Drain a fixed bucket to show that every index comes out exactly once.
	fixed := []float64{0.7, 0.2, 0.3, 0.2, 0.2}
	log.Info("sampling until empty", zap.Float64s("scores", fixed))
	g := sampler.NewGumbelTop(fixed, *temperature)
	for {
		index, score, ok := g.DrawWithScore()
		if !ok {
			break
		}
		log.Info("drew index",
			zap.Int("index", index),
			zap.Float64("weight", fixed[index]),
			zap.Float64("noisyScore", score),
		)
	}
}
