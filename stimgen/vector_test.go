// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimgen

import (
	"math/rand"
	"testing"
)

func TestVectorCreatorShapes(t *testing.T) {
	vc := &VectorCreator{}
	rnd := rand.New(rand.NewSource(3))
	n := 50
	bs, err := vc.CreateBlockStimuli(n, []float64{0.8, 0.2}, rnd)
	if err != nil {
		t.Fatal(err)
	}
	if err := bs.Validate(n); err != nil {
		t.Fatal(err)
	}
	if bs.Stimuli.Dim(1) != 2 {
		t.Fatalf("stimulus channels = %d, want 2", bs.Stimuli.Dim(1))
	}
	contrasts := make(map[float64]bool)
	for _, c := range StdContrasts {
		contrasts[c] = true
	}
	for i := 0; i < n; i++ {
		side := bs.Sides[i]
		if side != -1 && side != 1 {
			t.Fatalf("side[%d] = %g, want -1 or +1", i, side)
		}
		if !contrasts[bs.Strengths[i]] {
			t.Fatalf("strength[%d] = %g, not in contrast set", i, bs.Strengths[i])
		}
		chn := 1
		off := 0
		if side < 0 {
			chn = 0
			off = 1
		}
		if bs.Stimuli.Values[i*2+chn] != bs.Strengths[i] {
			t.Errorf("trial %d: stimulus channel %d = %g, want strength %g", i, chn, bs.Stimuli.Values[i*2+chn], bs.Strengths[i])
		}
		if bs.Stimuli.Values[i*2+off] != 0 {
			t.Errorf("trial %d: off channel = %g, want 0", i, bs.Stimuli.Values[i*2+off])
		}
	}
}

func TestVectorCreatorBiasExtremes(t *testing.T) {
	vc := &VectorCreator{}
	rnd := rand.New(rand.NewSource(9))
	bs, err := vc.CreateBlockStimuli(100, []float64{1, 0}, rnd)
	if err != nil {
		t.Fatal(err)
	}
	for i, side := range bs.Sides {
		if side != -1 {
			t.Fatalf("P(left)=1 produced side %g at trial %d", side, i)
		}
	}
	bs, err = vc.CreateBlockStimuli(100, []float64{0, 1}, rnd)
	if err != nil {
		t.Fatal(err)
	}
	for i, side := range bs.Sides {
		if side != 1 {
			t.Fatalf("P(right)=1 produced side %g at trial %d", side, i)
		}
	}
}

func TestVectorCreatorErrors(t *testing.T) {
	vc := &VectorCreator{}
	rnd := rand.New(rand.NewSource(1))
	if _, err := vc.CreateBlockStimuli(0, []float64{0.5, 0.5}, rnd); err == nil {
		t.Error("accepted zero trials")
	}
	if _, err := vc.CreateBlockStimuli(10, []float64{0.5}, rnd); err == nil {
		t.Error("accepted 1-element bias vector")
	}
	if _, err := vc.CreateBlockStimuli(10, []float64{-1, 0.5}, rnd); err == nil {
		t.Error("accepted negative bias probability")
	}
	if _, err := vc.CreateBlockStimuli(10, []float64{0.5, 0.5}, nil); err == nil {
		t.Error("accepted nil random source")
	}
}
