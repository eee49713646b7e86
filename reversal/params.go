// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import (
	"fmt"

	"github.com/emer/etable/minmax"
)

const (
	// NActions is the number of discrete actions: choose left, choose right.
	NActions = 2

	// MinBlockTrials and MaxBlockTrials are the clamp bounds for sampled
	// block lengths -- samples outside are clamped, not resampled.
	MinBlockTrials = 20
	MaxBlockTrials = 100
)

// TaskParams are the construction-time parameters of one environment
// instance, immutable for the lifetime of each episode.
type TaskParams struct {

	// number of blocks per episode
	NumBlocks int `desc:"number of blocks per episode"`

	// success parameter of the geometric distribution block lengths are drawn from
	BlockDurationP float64 `desc:"success parameter of the geometric distribution block lengths are drawn from"`

	// bias probabilities for a block whose preferred side is left: index 0 = P(stimulus on left)
	LeftBiasProbs []float64 `desc:"bias probabilities for a block whose preferred side is left: index 0 = P(stimulus on left)"`

	// bias probabilities for a block whose preferred side is right
	RightBiasProbs []float64 `desc:"bias probabilities for a block whose preferred side is right"`

	// [view: inline] nominal reward bounds -- actual reward is a log probability
	RewardRange minmax.F64 `view:"inline" desc:"nominal reward bounds -- actual reward is a log probability"`
}

// Defaults fills zero-valued fields with the standard biased choice world
// parameters.
func (tp *TaskParams) Defaults() {
	if tp.NumBlocks == 0 {
		tp.NumBlocks = 10
	}
	if tp.BlockDurationP == 0 {
		tp.BlockDurationP = 1.0 / 60
	}
	if tp.LeftBiasProbs == nil {
		tp.LeftBiasProbs = []float64{0.2, 0.8}
	}
	if tp.RightBiasProbs == nil {
		tp.RightBiasProbs = []float64{0.8, 0.2}
	}
	tp.RewardRange = minmax.F64{Min: 0, Max: 1}
}

// BiasProbs returns the side-bias probability vector governing stimulus
// placement in a block with the given preferred side.
func (tp *TaskParams) BiasProbs(sd Side) []float64 {
	if sd == Left {
		return tp.LeftBiasProbs
	}
	return tp.RightBiasProbs
}

// Validate rejects invalid construction parameters, so they surface here
// rather than as downstream corruption.
func (tp *TaskParams) Validate() error {
	if tp.NumBlocks < 0 {
		return fmt.Errorf("reversal: NumBlocks = %d, must not be negative", tp.NumBlocks)
	}
	if tp.BlockDurationP <= 0 || tp.BlockDurationP > 1 {
		return fmt.Errorf("reversal: BlockDurationP = %g, must be in (0, 1]", tp.BlockDurationP)
	}
	for sd := Left; sd < SideN; sd++ {
		probs := tp.BiasProbs(sd)
		if len(probs) != 2 {
			return fmt.Errorf("reversal: %v bias probabilities have length %d, want 2", sd, len(probs))
		}
		if probs[0] < 0 || probs[1] < 0 || probs[0]+probs[1] <= 0 {
			return fmt.Errorf("reversal: %v bias probabilities %v are not a valid 2-vector", sd, probs)
		}
	}
	return nil
}
