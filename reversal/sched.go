// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import (
	"math"
	"math/rand"

	"github.com/goki/ki/ints"
)

// geomDraw returns one draw from the geometric distribution with success
// probability p, on support {1, 2, ...}, by inverse transform sampling.
func geomDraw(rnd *rand.Rand, p float64) int {
	if p >= 1 {
		return 1
	}
	u := rnd.Float64()
	return 1 + int(math.Log(1-u)/math.Log(1-p))
}

// clampTrials clamps a sampled block length into
// [MinBlockTrials, MaxBlockTrials]; boundary values pass unchanged.
func clampTrials(n int) int {
	return ints.MinInt(ints.MaxInt(n, MinBlockTrials), MaxBlockTrials)
}

// sampleBlockLengths draws n independent geometric block lengths with
// success parameter p, each clamped into the valid trial-count range.
func sampleBlockLengths(rnd *rand.Rand, n int, p float64) []int {
	lens := make([]int, n)
	for i := range lens {
		lens[i] = clampTrials(geomDraw(rnd, p))
	}
	return lens
}

// sampleBlockSides picks the first block's preferred side uniformly at
// random and strictly alternates it for every subsequent block.
func sampleBlockSides(rnd *rand.Rand, n int) []Side {
	sides := make([]Side, n)
	cur := Left
	if rnd.Intn(2) == 1 {
		cur = Right
	}
	for i := range sides {
		sides[i] = cur
		cur = cur.Other()
	}
	return sides
}
