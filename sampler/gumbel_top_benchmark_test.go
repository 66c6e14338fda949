// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"
)

func BenchmarkNewGumbelTop(b *testing.B) {
	for _, size := range []int{10, 1000, 100000} {
		scores := benchmarkScores(size)
		b.Run(fmt.Sprintf("%d items", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = NewGumbelTop(scores, 1)
			}
		})
	}
}

func BenchmarkGumbelTopDraw(b *testing.B) {
	scores := benchmarkScores(100000)
	g := NewGumbelTop(scores, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := g.Draw(); !ok {
			b.StopTimer()
			g = NewGumbelTop(scores, 1)
			b.StartTimer()
		}
	}
}

func BenchmarkGumbelNoise(b *testing.B) {
	for _, size := range []int{10, 1000, 100000} {
		b.Run(fmt.Sprintf("%d samples", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = GumbelNoise(size, 1)
			}
		})
	}
}

func benchmarkScores(size int) []float64 {
	scores := make([]float64, size)
	for i := range scores {
		scores[i] = float64(i) / float64(size)
	}
	return scores
}
