// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import (
	"fmt"
	"math/rand"

	"github.com/RylanSchaeffer/NeurIPS-2020-Reverse-Engineering-RNNs/stimgen"
	"github.com/emer/etable/etensor"
)

// Episode is the full per-episode state: the trial timeline built at Reset
// and the rollout history filled in as steps occur.  It is discarded and
// rebuilt by every Reset; nothing persists across episodes.
type Episode struct {

	// number of trials in each block, clamped into [MinBlockTrials, MaxBlockTrials]
	NumTrialsPerBlock []int `desc:"number of trials in each block, clamped into [MinBlockTrials, MaxBlockTrials]"`

	// hidden preferred side of each block, strictly alternating
	BlockSides []Side `desc:"hidden preferred side of each block, strictly alternating"`

	// total number of trials in the episode == sum of NumTrialsPerBlock
	TotalTrials int `desc:"total number of trials in the episode == sum of NumTrialsPerBlock"`

	// shape of a single trial's stimulus, from the creator
	ObsShape []int `desc:"shape of a single trial's stimulus, from the creator"`

	// per-trial 1-based block index
	StimBlockNumber etensor.Int `desc:"per-trial 1-based block index"`

	// per-trial 1-based position within its block
	TrialWithinBlock etensor.Int `desc:"per-trial 1-based position within its block"`

	// per-trial stimuli, one row per trial
	Stimuli etensor.Float64 `view:"no-inline" desc:"per-trial stimuli, one row per trial"`

	// per-trial stimulus side: -1 = left, +1 = right
	StimSides etensor.Float64 `desc:"per-trial stimulus side: -1 = left, +1 = right"`

	// per-trial stimulus strength
	StimStrengths etensor.Float64 `desc:"per-trial stimulus strength"`

	// per-trial preferred side of the enclosing block: -1 = left, +1 = right
	StimPrefSides etensor.Float64 `desc:"per-trial preferred side of the enclosing block: -1 = left, +1 = right"`

	// per-trial rewards, filled in as steps occur
	Rewards etensor.Float64 `desc:"per-trial rewards, filled in as steps occur"`

	// per-trial raw action distributions, filled in as steps occur
	Actions etensor.Float64 `view:"no-inline" desc:"per-trial raw action distributions, filled in as steps occur"`

	// detached per-step snapshots of the agent's internal state, diagnostic only
	HiddenStates [][]float64 `view:"-" desc:"detached per-step snapshots of the agent's internal state, diagnostic only"`

	// cursor over trials, 0-based
	CurTrial int `desc:"cursor over trials, 0-based"`
}

// buildEpisode samples the block schedule, expands it into the flat
// per-trial timeline via the stimulus creator, and zero-fills the rollout
// history arrays.
func buildEpisode(rnd *rand.Rand, sc stimgen.Creator, tp *TaskParams) (*Episode, error) {
	ep := &Episode{
		NumTrialsPerBlock: sampleBlockLengths(rnd, tp.NumBlocks, tp.BlockDurationP),
		BlockSides:        sampleBlockSides(rnd, tp.NumBlocks),
		ObsShape:          sc.ObsShape(),
	}
	for _, nt := range ep.NumTrialsPerBlock {
		ep.TotalTrials += nt
	}
	total := ep.TotalTrials
	dim := 1
	for _, d := range ep.ObsShape {
		dim *= d
	}
	ep.StimBlockNumber.SetShape([]int{total}, nil, []string{"Trial"})
	ep.TrialWithinBlock.SetShape([]int{total}, nil, []string{"Trial"})
	ep.Stimuli.SetShape(append([]int{total}, ep.ObsShape...), nil, nil)
	ep.StimSides.SetShape([]int{total}, nil, []string{"Trial"})
	ep.StimStrengths.SetShape([]int{total}, nil, []string{"Trial"})
	ep.StimPrefSides.SetShape([]int{total}, nil, []string{"Trial"})
	ep.Rewards.SetShape([]int{total}, nil, []string{"Trial"})
	ep.Actions.SetShape([]int{total, NActions}, nil, []string{"Trial", "Act"})
	ep.HiddenStates = make([][]float64, 0, total)

	ti := 0
	for bi, nt := range ep.NumTrialsPerBlock {
		bs, err := sc.CreateBlockStimuli(nt, tp.BiasProbs(ep.BlockSides[bi]), rnd)
		if err != nil {
			return nil, err
		}
		if err := bs.Validate(nt); err != nil {
			return nil, err
		}
		if bs.Stimuli.Len() != nt*dim {
			return nil, fmt.Errorf("reversal: block %d stimuli have %d values, want %d", bi, bs.Stimuli.Len(), nt*dim)
		}
		copy(ep.Stimuli.Values[ti*dim:(ti+nt)*dim], bs.Stimuli.Values)
		psd := ep.BlockSides[bi].Sign()
		for j := 0; j < nt; j++ {
			ep.StimBlockNumber.Values[ti+j] = bi + 1
			ep.TrialWithinBlock.Values[ti+j] = j + 1
			ep.StimSides.Values[ti+j] = bs.Sides[j]
			ep.StimStrengths.Values[ti+j] = bs.Strengths[j]
			ep.StimPrefSides.Values[ti+j] = psd
		}
		ti += nt
	}
	return ep, nil
}

// StimRow returns a copy of the stimulus for the given trial, shaped per
// the creator's observation shape.
func (ep *Episode) StimRow(idx int) *etensor.Float64 {
	st := &etensor.Float64{}
	st.SetShape(ep.ObsShape, nil, nil)
	dim := st.Len()
	copy(st.Values, ep.Stimuli.Values[idx*dim:(idx+1)*dim])
	return st
}
