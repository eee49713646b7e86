// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import (
	"fmt"
	"log"
	"math"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
)

// This file adapts ReversalEnv to the emergent env.Env interface, so the
// task can drive emergent models directly: the model stages its output
// distribution via Action("Output", ...) and reads the stimulus back via
// State("Stimulus") after each Step.

func (ev *ReversalEnv) Name() string { return ev.Nm }
func (ev *ReversalEnv) Desc() string { return ev.Dsc }

func (ev *ReversalEnv) Validate() error {
	if ev.Creator == nil {
		return fmt.Errorf("reversal: %v has no stimulus creator set", ev.Nm)
	}
	return ev.Params.Validate()
}

func (ev *ReversalEnv) Counters() []env.TimeScales {
	return []env.TimeScales{env.Run, env.Block, env.Trial}
}

func (ev *ReversalEnv) States() env.Elements {
	els := env.Elements{
		{"Stimulus", ev.Creator.ObsShape(), nil},
		{"Reward", []int{1}, nil},
	}
	return els
}

func (ev *ReversalEnv) State(element string) etensor.Tensor {
	switch element {
	case "Stimulus":
		return &ev.CurStim
	case "Reward":
		return &ev.CurReward
	}
	return nil
}

func (ev *ReversalEnv) Actions() env.Elements {
	return env.Elements{
		{"Output", []int{NActions}, nil},
	}
}

// Action stages the model's output distribution for the next Step.
func (ev *ReversalEnv) Action(element string, input etensor.Tensor) {
	if element != "Output" || input == nil || input.Len() < NActions {
		return
	}
	if ev.pendAct == nil {
		ev.pendAct = make([]float64, NActions)
	}
	for i := 0; i < NActions; i++ {
		ev.pendAct[i] = input.FloatVal1D(i)
	}
}

// Init resets counters for the given run and builds a fresh episode.
// Configuration errors are logged and leave the environment un-started.
func (ev *ReversalEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Run.Init()
	ev.Run.Cur = run
	if _, err := ev.Reset(); err != nil {
		log.Println(err)
		ev.Ep = nil
	}
}

// Step consumes the action staged by Action -- uniform over the two sides
// if none was staged -- and advances one trial.  Returns false once the
// episode cannot advance further.
func (ev *ReversalEnv) Step() bool {
	act := ev.pendAct
	if act == nil {
		u := math.Log(0.5)
		act = []float64{u, u}
	}
	_, err := ev.StepTrial(act, nil)
	ev.pendAct = nil
	return err == nil
}

func (ev *ReversalEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Block:
		return ev.Block.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// String returns the current trial state as a string
func (ev *ReversalEnv) String() string {
	ep := ev.Ep
	if ep == nil || ep.TotalTrials == 0 {
		return "T_none"
	}
	idx := ep.CurTrial
	if idx >= ep.TotalTrials {
		idx = ep.TotalTrials - 1
	}
	return fmt.Sprintf("B_%d_T_%d_S_%+g", ep.StimBlockNumber.Values[idx], ep.TrialWithinBlock.Values[idx], ep.StimSides.Values[idx])
}

// Compile-time check that implements Env interface
var _ env.Env = (*ReversalEnv)(nil)
