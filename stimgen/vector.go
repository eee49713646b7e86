// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimgen

import (
	"fmt"
	"math/rand"
)

// StdContrasts is the default set of stimulus strengths (visual contrasts)
// the vector creator samples from, uniformly per trial.
var StdContrasts = []float64{0.06, 0.12, 0.25, 0.5, 1}

// VectorCreator samples stimuli as 2-channel contrast vectors: the channel
// for the sampled side carries the sampled strength, the other is zero.
type VectorCreator struct {

	// set of contrast values sampled uniformly per trial -- StdContrasts if empty
	Contrasts []float64 `desc:"set of contrast values sampled uniformly per trial -- StdContrasts if empty"`
}

func (vc *VectorCreator) Defaults() {
	if len(vc.Contrasts) == 0 {
		vc.Contrasts = StdContrasts
	}
}

// ObsShape is [2]: left contrast channel, right contrast channel.
func (vc *VectorCreator) ObsShape() []int {
	return []int{2}
}

func (vc *VectorCreator) CreateBlockStimuli(nTrials int, biasProbs []float64, rnd *rand.Rand) (*BlockStimuli, error) {
	if nTrials <= 0 {
		return nil, fmt.Errorf("stimgen: VectorCreator got nTrials = %d, must be positive", nTrials)
	}
	if len(biasProbs) != 2 {
		return nil, fmt.Errorf("stimgen: VectorCreator got %d bias probabilities, want 2", len(biasProbs))
	}
	psum := biasProbs[0] + biasProbs[1]
	if biasProbs[0] < 0 || biasProbs[1] < 0 || psum <= 0 {
		return nil, fmt.Errorf("stimgen: VectorCreator got invalid bias probabilities %v", biasProbs)
	}
	if rnd == nil {
		return nil, fmt.Errorf("stimgen: VectorCreator requires a random source")
	}
	vc.Defaults()
	pLeft := biasProbs[0] / psum
	bs := &BlockStimuli{}
	bs.Stimuli.SetShape([]int{nTrials, 2}, nil, []string{"Trial", "Chan"})
	bs.Sides = make([]float64, nTrials)
	bs.Strengths = make([]float64, nTrials)
	for i := 0; i < nTrials; i++ {
		side := 1.0
		chn := 1
		if rnd.Float64() < pLeft {
			side = -1
			chn = 0
		}
		str := vc.Contrasts[rnd.Intn(len(vc.Contrasts))]
		bs.Sides[i] = side
		bs.Strengths[i] = str
		bs.Stimuli.Set([]int{i, chn}, str)
	}
	return bs, nil
}

// Compile-time check that implements Creator interface
var _ Creator = (*VectorCreator)(nil)
