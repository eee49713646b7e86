// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestClampTrials(t *testing.T) {
	tests := []struct {
		in, out int
	}{
		{1, 20},
		{19, 20},
		{20, 20}, // boundary identity
		{21, 21},
		{60, 60},
		{100, 100}, // boundary identity
		{101, 100},
		{500, 100},
	}
	for _, tc := range tests {
		if got := clampTrials(tc.in); got != tc.out {
			t.Errorf("clampTrials(%d) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestGeomDraw(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		if got := geomDraw(rnd, 1); got != 1 {
			t.Errorf("geomDraw with p=1 = %d, want 1", got)
		}
	}
	n := 20000
	sum := 0
	for i := 0; i < n; i++ {
		d := geomDraw(rnd, 0.5)
		if d < 1 {
			t.Fatalf("geomDraw returned %d, support is {1, 2, ...}", d)
		}
		sum += d
	}
	mean := float64(sum) / float64(n)
	if mean < 1.9 || mean > 2.1 { // E[X] = 1/p = 2
		t.Errorf("geomDraw p=0.5 sample mean = %g, want ~2", mean)
	}
}

func TestBlockLengthsInRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	lens := sampleBlockLengths(rnd, 1000, 1.0/60)
	for i, nt := range lens {
		if nt < MinBlockTrials || nt > MaxBlockTrials {
			t.Errorf("block %d length %d outside [%d, %d]", i, nt, MinBlockTrials, MaxBlockTrials)
		}
	}
}

func TestBlockSidesAlternate(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	sides := sampleBlockSides(rnd, 100)
	for i := 1; i < len(sides); i++ {
		if sides[i] != sides[i-1].Other() {
			t.Fatalf("block %d side %v does not alternate from %v", i, sides[i], sides[i-1])
		}
	}
}

func TestFirstSideUniform(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	n := 4000
	firsts := make([]float64, n)
	for i := 0; i < n; i++ {
		sides := sampleBlockSides(rnd, 3)
		if sides[0] == Right {
			firsts[i] = 1
		}
	}
	frac := stat.Mean(firsts, nil)
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("first side Right fraction = %g over %d episodes, want ~0.5", frac, n)
	}
}
