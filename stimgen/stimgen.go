// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimgen

import (
	"fmt"
	"math/rand"

	"github.com/emer/etable/etensor"
)

// Creator generates the per-trial stimuli for one block of trials.
// Implementations must be deterministic given the supplied random source,
// so that parallel environment instances do not contend on shared state.
type Creator interface {
	// CreateBlockStimuli samples nTrials trials for a block governed by the
	// given side-bias probabilities (index 0 = probability of a left-side
	// stimulus, index 1 = right).  All randomness is drawn from rnd.
	CreateBlockStimuli(nTrials int, biasProbs []float64, rnd *rand.Rand) (*BlockStimuli, error)

	// ObsShape returns the shape of a single trial's stimulus, which the
	// environment advertises as its observation contract.
	ObsShape() []int
}

// BlockStimuli holds the sampled trials for one block.
type BlockStimuli struct {

	// sampled stimuli, one row per trial
	Stimuli etensor.Float64 `desc:"sampled stimuli, one row per trial"`

	// sampled stimulus sides: -1 = left, +1 = right
	Sides []float64 `desc:"sampled stimulus sides: -1 = left, +1 = right"`

	// sampled stimulus strengths (contrast / difficulty per trial)
	Strengths []float64 `desc:"sampled stimulus strengths (contrast / difficulty per trial)"`
}

// Validate checks that all three sequences have the requested length.
func (bs *BlockStimuli) Validate(nTrials int) error {
	if bs.Stimuli.Dim(0) != nTrials {
		return fmt.Errorf("stimgen: BlockStimuli has %d stimulus rows, want %d", bs.Stimuli.Dim(0), nTrials)
	}
	if len(bs.Sides) != nTrials {
		return fmt.Errorf("stimgen: BlockStimuli has %d sides, want %d", len(bs.Sides), nTrials)
	}
	if len(bs.Strengths) != nTrials {
		return fmt.Errorf("stimgen: BlockStimuli has %d strengths, want %d", len(bs.Strengths), nTrials)
	}
	return nil
}
