// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import (
	"math"
	"testing"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
)

func TestEnvInterface(t *testing.T) {
	ev := NewReversalEnv(&constCreator{side: 1, strength: 1}, TaskParams{NumBlocks: 2, BlockDurationP: 1})
	ev.Seed(4)
	if err := ev.Validate(); err != nil {
		t.Fatal(err)
	}
	ev.Init(0)
	if ev.Ep == nil {
		t.Fatal("Init did not build an episode")
	}
	st := ev.State("Stimulus")
	if st == nil || st.Len() != 2 {
		t.Fatalf("State(Stimulus) = %v, want 2-channel tensor", st)
	}
	if ev.State("Reward") == nil {
		t.Fatal("State(Reward) = nil")
	}
	if ev.State("Bogus") != nil {
		t.Error("State(Bogus) returned a tensor")
	}

	out := &etensor.Float64{}
	out.SetShape([]int{NActions}, nil, nil)
	out.Set1D(0, math.Log(0.2))
	out.Set1D(1, math.Log(0.8))
	for i := 0; i < 10; i++ {
		ev.Action("Output", out)
		if !ev.Step() {
			t.Fatalf("Step failed at trial %d", i)
		}
	}
	cur, _, _ := ev.Counter(env.Trial)
	if cur != 10 {
		t.Errorf("Trial counter = %d after 10 steps, want 10", cur)
	}
	if math.Abs(ev.CurReward.Values[0]-math.Log(0.8)) > difTol {
		t.Errorf("CurReward = %g, want %g", ev.CurReward.Values[0], math.Log(0.8))
	}
	if ev.String() == "" {
		t.Error("String() is empty")
	}
}

// Without a staged action, Step falls back to a uniform distribution.
func TestStepUniformDefault(t *testing.T) {
	ev := NewReversalEnv(&constCreator{side: -1, strength: 1}, TaskParams{NumBlocks: 1, BlockDurationP: 1})
	ev.Seed(4)
	ev.Init(0)
	if !ev.Step() {
		t.Fatal("Step failed")
	}
	if math.Abs(ev.CurReward.Values[0]-math.Log(0.5)) > difTol {
		t.Errorf("uniform default reward = %g, want %g", ev.CurReward.Values[0], math.Log(0.5))
	}
}

func TestCounterBlockChange(t *testing.T) {
	ev := NewReversalEnv(&constCreator{side: 1, strength: 1}, TaskParams{NumBlocks: 2, BlockDurationP: 1})
	ev.Seed(4)
	ev.Init(0)
	// 20 trials per block: block counter flips when the cursor crosses
	// into block 2 on the 20th step
	for i := 0; i < 19; i++ {
		if !ev.Step() {
			t.Fatalf("Step failed at trial %d", i)
		}
		if _, _, chg := ev.Counter(env.Block); chg {
			t.Fatalf("block changed early, at step %d", i+1)
		}
	}
	if !ev.Step() {
		t.Fatal("Step into second block failed")
	}
	cur, prv, chg := ev.Counter(env.Block)
	if cur != 1 || prv != 0 || !chg {
		t.Errorf("Block counter after crossing = (%d, %d, %v), want (1, 0, true)", cur, prv, chg)
	}
}
