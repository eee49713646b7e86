// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/RylanSchaeffer/NeurIPS-2020-Reverse-Engineering-RNNs/stimgen"
	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
)

var (
	// ErrNotStarted is returned by StepTrial before the first Reset.
	ErrNotStarted = errors.New("reversal: episode not started -- call Reset first")

	// ErrOutOfTrials is returned by StepTrial once the episode is
	// exhausted and no further trial can be stepped.
	ErrOutOfTrials = errors.New("reversal: episode exhausted -- no trials left to step")

	// ErrShapeMismatch is returned by StepTrial when the agent's action
	// distribution does not have the 2-action shape.
	ErrShapeMismatch = errors.New("reversal: action distribution has wrong shape")
)

// Observation is one trial's feedback to the agent, with named typed
// fields rather than an open-ended map.
type Observation struct {

	// current trial's stimulus -- nil only for a zero-trial episode
	Stimulus *etensor.Float64 `desc:"current trial's stimulus -- nil only for a zero-trial episode"`

	// reward for the decision just consumed -- 0 on the first observation
	Reward float64 `desc:"reward for the decision just consumed -- 0 on the first observation"`

	// side / strength details of the now-current trial -- nil on the first observation
	Info *Info `desc:"side / strength details of the now-current trial -- nil on the first observation"`

	// true when the episode reports completion
	Done bool `desc:"true when the episode reports completion"`
}

// Info exposes details of the now-current trial alongside an observation.
type Info struct {

	// stimulus side of the now-current trial: -1 = left, +1 = right
	StimulusSide float64 `desc:"stimulus side of the now-current trial: -1 = left, +1 = right"`

	// stimulus strength of the now-current trial
	StimulusStrength float64 `desc:"stimulus strength of the now-current trial"`
}

// ReversalEnv simulates the reversal learning task: variable-length blocks
// with alternating hidden preferred sides drive stimulus placement, and
// each trial rewards the agent with the log probability it assigned to
// the correct side.  One instance serves one logical caller: Reset and
// StepTrial must be called strictly sequentially.
type ReversalEnv struct {

	// name of this environment
	Nm string `desc:"name of this environment"`

	// description of this environment
	Dsc string `desc:"description of this environment"`

	// [view: inline] construction-time task parameters
	Params TaskParams `view:"inline" desc:"construction-time task parameters"`

	// stimulus creator collaborator -- must be set before Reset
	Creator stimgen.Creator `view:"-" desc:"stimulus creator collaborator -- must be set before Reset"`

	// random source owned by this instance -- use Seed for determinism
	Rnd *rand.Rand `view:"-" desc:"random source owned by this instance -- use Seed for determinism"`

	// current episode state -- nil until Reset
	Ep *Episode `view:"no-inline" desc:"current episode state -- nil until Reset"`

	// current trial's stimulus, exposed via State
	CurStim etensor.Float64 `desc:"current trial's stimulus, exposed via State"`

	// most recent reward, exposed via State
	CurReward etensor.Float64 `desc:"most recent reward, exposed via State"`

	// [view: inline] run counter as provided during Init
	Run env.Ctr `view:"inline" desc:"run counter as provided during Init"`

	// [view: inline] block of the current trial
	Block env.Ctr `view:"inline" desc:"block of the current trial"`

	// [view: inline] trial cursor within the episode
	Trial env.Ctr `view:"inline" desc:"trial cursor within the episode"`

	// action distribution staged by Action for the next Step
	pendAct []float64
}

// NewReversalEnv returns an environment over the given stimulus creator.
// Zero-valued parameter fields are filled with the biased choice world
// defaults.
func NewReversalEnv(sc stimgen.Creator, tp TaskParams) *ReversalEnv {
	tp.Defaults()
	ev := &ReversalEnv{Nm: "ReversalLearningTask", Creator: sc, Params: tp}
	if sc != nil {
		ev.CurStim.SetShape(sc.ObsShape(), nil, nil)
	}
	ev.CurReward.SetShape([]int{1}, nil, nil)
	return ev
}

// Seed seeds this instance's private random source.
func (ev *ReversalEnv) Seed(seed int64) {
	ev.Rnd = rand.New(rand.NewSource(seed))
}

// Reset (re)creates the entire episode: samples the block schedule,
// expands the trial timeline through the stimulus creator, zero-fills the
// rollout history, and returns the first observation -- the stimulus at
// trial 0 with a zero reward and no info.  Done on the first observation
// is true only for a degenerate zero-trial episode.
func (ev *ReversalEnv) Reset() (*Observation, error) {
	if ev.Creator == nil {
		return nil, fmt.Errorf("reversal: %v has no stimulus creator set", ev.Nm)
	}
	if err := ev.Params.Validate(); err != nil {
		return nil, err
	}
	if ev.Rnd == nil {
		ev.Seed(time.Now().UnixNano())
	}
	ep, err := buildEpisode(ev.Rnd, ev.Creator, &ev.Params)
	if err != nil {
		return nil, err
	}
	ev.Ep = ep
	ev.Block.Scale = env.Block
	ev.Trial.Scale = env.Trial
	ev.Block.Init()
	ev.Trial.Init()
	ev.Block.Max = len(ep.NumTrialsPerBlock)
	ev.Trial.Max = ep.TotalTrials
	ev.pendAct = nil
	ev.CurStim.SetShape(ep.ObsShape, nil, nil)
	ev.CurReward.SetShape([]int{1}, nil, nil)
	obs := &Observation{Done: ep.CurTrial == ep.TotalTrials}
	if !obs.Done {
		obs.Stimulus = ep.StimRow(0)
		ev.CurStim.CopyFrom(obs.Stimulus)
	}
	ev.CurReward.SetZeros()
	return obs, nil
}

// StepTrial consumes the agent's decision for the current trial and
// advances the cursor by one.  actLogProbs is the length-2 vector of log
// probabilities over (left, right); hidden is an opaque internal-state
// snapshot that is copied and recorded, never interpreted (nil is fine).
//
// The reward is the negative of the per-sample negative log likelihood:
// the entry of actLogProbs at the current trial's correct side, remapped
// from {-1,+1} to {0,1}.
//
// Done is computed as (idx+1) == total after the increment, so the
// episode reports completion one trial before the cursor reaches the last
// index and the final trial itself is never stepped; downstream training
// code depends on this early boundary, so it is part of the contract.
// Stepping at or past the boundary returns ErrOutOfTrials before any
// state is recorded.
func (ev *ReversalEnv) StepTrial(actLogProbs, hidden []float64) (*Observation, error) {
	ep := ev.Ep
	if ep == nil {
		return nil, ErrNotStarted
	}
	if ep.CurTrial >= ep.TotalTrials-1 {
		return nil, ErrOutOfTrials
	}
	if len(actLogProbs) != NActions {
		return nil, fmt.Errorf("%w: got length %d, want %d", ErrShapeMismatch, len(actLogProbs), NActions)
	}
	idx := ep.CurTrial
	tgt := int((ep.StimSides.Values[idx] + 1) / 2)
	reward := actLogProbs[tgt]

	ep.Rewards.Values[idx] = reward
	copy(ep.Actions.Values[idx*NActions:(idx+1)*NActions], actLogProbs)
	ep.HiddenStates = append(ep.HiddenStates, copyHidden(hidden))

	ep.CurTrial++
	idx = ep.CurTrial
	obs := &Observation{
		Stimulus: ep.StimRow(idx),
		Reward:   reward,
		Info: &Info{
			StimulusSide:     ep.StimSides.Values[idx],
			StimulusStrength: ep.StimStrengths.Values[idx],
		},
		Done: (ep.CurTrial + 1) == ep.TotalTrials,
	}

	ev.Trial.Incr()
	bl := ep.StimBlockNumber.Values[idx] - 1
	if bl != ev.Block.Cur {
		ev.Block.Prv = ev.Block.Cur
		ev.Block.Cur = bl
		ev.Block.Chg = true
	} else {
		ev.Block.Chg = false
	}
	ev.CurStim.CopyFrom(obs.Stimulus)
	ev.CurReward.Values[0] = reward
	return obs, nil
}

// Close is a no-op release hook: the per-episode arrays are exclusively
// owned by the instance and reclaimed when it is discarded.
func (ev *ReversalEnv) Close() {
}

// copyHidden detaches a hidden-state snapshot from the caller's storage,
// so later mutation by the agent cannot alias into the recorded history.
func copyHidden(h []float64) []float64 {
	if h == nil {
		return nil
	}
	ch := make([]float64, len(h))
	copy(ch, h)
	return ch
}
