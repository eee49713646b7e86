// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecenv

import (
	"github.com/RylanSchaeffer/NeurIPS-2020-Reverse-Engineering-RNNs/reversal"
	"github.com/RylanSchaeffer/NeurIPS-2020-Reverse-Engineering-RNNs/stimgen"
)

// TrainingChoiceWorlds returns batchSize independent environments for the
// training choice world, in which left and right stimuli are presented
// with equal probability in every block.
func TrainingChoiceWorlds(batchSize int) []*reversal.ReversalEnv {
	envs := make([]*reversal.ReversalEnv, batchSize)
	for i := range envs {
		envs[i] = reversal.NewReversalEnv(&stimgen.VectorCreator{}, reversal.TaskParams{
			NumBlocks:      10,
			LeftBiasProbs:  []float64{0.5, 0.5},
			RightBiasProbs: []float64{0.5, 0.5},
		})
	}
	return envs
}

// BiasedChoiceWorlds returns a batch of environments for the biased
// choice world, in which left and right stimuli are presented with
// different probability in blocks of trials.  numEnv <= 0 uses the
// standard batch of 7.
func BiasedChoiceWorlds(numEnv int) *VecEnv {
	if numEnv <= 0 {
		numEnv = 7
	}
	return New(func() *reversal.ReversalEnv {
		return reversal.NewReversalEnv(&stimgen.VectorCreator{}, reversal.TaskParams{
			NumBlocks:      100,
			LeftBiasProbs:  []float64{0.8, 0.2},
			RightBiasProbs: []float64{0.2, 0.8},
		})
	}, numEnv)
}
