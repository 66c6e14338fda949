// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/gumbeltop/utils"
)

var _ utils.Sortable[noisyScore] = noisyScore{}

type noisyScore struct {
	index int
	score float64
}

// Note that this sorts in order of decreasing noisy score. A NaN score
// compares as equal to everything, which keeps the ordering total; where NaN
// entries land is unspecified.
func (s noisyScore) Less(other noisyScore) bool {
	return s.score > other.score
}

// GumbelTop samples indices from a weighted distribution without replacement,
// similar to repeatedly sampling a softmax. Independent Gumbel noise is added
// to every score up front and the noisy scores are sorted once; each draw then
// takes the arg-max over the items not yet drawn without re-normalizing the
// remaining weights. The same index is never drawn twice, even when scores
// are equal. This comes at a memory cost, as the full vector of noisy scores
// is stored alongside the caller's scores.
//
// A GumbelTop is not safe for concurrent use.
type GumbelTop struct {
	ranked []noisyScore
	drawn  int
}

// NewGumbelTop returns a bucket over [scores] with noise drawn from the
// process-global source. Scores are typically weights or log-weights and
// [temperature] should be scaled to their range; a temperature of 1 is
// recommended for most use cases. A non-positive or non-finite temperature is
// not rejected: the draw order degrades accordingly, but construction and
// draws never fail.
//
// The caller's slice is only read during construction and never retained.
func NewGumbelTop[T constraints.Float](scores []T, temperature float64) *GumbelTop {
	return newGumbelTop(globalRNG, scores, temperature)
}

// NewDeterministicGumbelTop is NewGumbelTop with noise drawn from the
// provided source.
func NewDeterministicGumbelTop[T constraints.Float](source Source, scores []T, temperature float64) *GumbelTop {
	return newGumbelTop(&rng{rng: source}, scores, temperature)
}

func newGumbelTop[T constraints.Float](r *rng, scores []T, temperature float64) *GumbelTop {
	noise := gumbelNoise(r, len(scores), temperature)
	ranked := make([]noisyScore, len(scores))
	for i, score := range scores {
		ranked[i] = noisyScore{
			index: i,
			score: float64(score) + noise[i],
		}
	}

	// Sort once; draws never re-rank the remainder.
	utils.Sort(ranked)
	return &GumbelTop{ranked: ranked}
}

// Len returns the number of indices that have not been drawn yet.
func (g *GumbelTop) Len() int {
	return len(g.ranked) - g.drawn
}

// DrawWithScore removes the highest-ranked remaining item and returns its
// index in the original score slice along with its noisy score. It reports
// false once the bucket is exhausted; an exhausted bucket never yields again.
func (g *GumbelTop) DrawWithScore() (int, float64, bool) {
	if g.drawn >= len(g.ranked) {
		return 0, 0, false
	}
	pair := g.ranked[g.drawn]
	g.drawn++
	return pair.index, pair.score, true
}

// Draw is DrawWithScore with the noisy score discarded.
func (g *GumbelTop) Draw() (int, bool) {
	index, _, ok := g.DrawWithScore()
	return index, ok
}
