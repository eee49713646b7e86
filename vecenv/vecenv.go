// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package vecenv steps a batch of fully independent reversal learning
environments in parallel: decisions fan out to one goroutine per
instance, observations fan back in index-aligned.  The instances share
no mutable state, so no coordination beyond the fan-out/fan-in barrier
is needed.
*/
package vecenv

import (
	"fmt"
	"sync"

	"github.com/RylanSchaeffer/NeurIPS-2020-Reverse-Engineering-RNNs/reversal"
)

// VecEnv owns a batch of independent environment instances.  Each slot's
// decision / feedback pair travels under its own index; per-instance
// failures are reported per-slot so one exhausted episode does not take
// down the batch.
type VecEnv struct {

	// the independent environment instances
	Envs []*reversal.ReversalEnv `desc:"the independent environment instances"`
}

// New returns a VecEnv over numEnv instances produced by mk.
func New(mk func() *reversal.ReversalEnv, numEnv int) *VecEnv {
	ve := &VecEnv{Envs: make([]*reversal.ReversalEnv, numEnv)}
	for i := range ve.Envs {
		ve.Envs[i] = mk()
	}
	return ve
}

// N returns the number of instances in the batch.
func (ve *VecEnv) N() int {
	return len(ve.Envs)
}

// Seed seeds every instance deterministically from the given base seed.
func (ve *VecEnv) Seed(base int64) {
	for i, ev := range ve.Envs {
		ev.Seed(base + int64(i))
	}
}

// Reset resets every instance concurrently.  Both slices are index
// aligned with Envs; errs[i] is nil on success.
func (ve *VecEnv) Reset() ([]*reversal.Observation, []error) {
	obs := make([]*reversal.Observation, len(ve.Envs))
	errs := make([]error, len(ve.Envs))
	var wg sync.WaitGroup
	for i, ev := range ve.Envs {
		wg.Add(1)
		go func(i int, ev *reversal.ReversalEnv) {
			defer wg.Done()
			obs[i], errs[i] = ev.Reset()
		}(i, ev)
	}
	wg.Wait()
	return obs, errs
}

// Step fans the per-instance action distributions out and the
// observations back in.  acts must have one length-2 distribution per
// instance; hiddens may be nil, or index aligned with acts.  The top
// error reports a batch shape problem; per-instance step errors come
// back in the aligned errs slice.
func (ve *VecEnv) Step(acts, hiddens [][]float64) ([]*reversal.Observation, []error, error) {
	if len(acts) != len(ve.Envs) {
		return nil, nil, fmt.Errorf("vecenv: got %d action distributions, want %d", len(acts), len(ve.Envs))
	}
	if hiddens != nil && len(hiddens) != len(ve.Envs) {
		return nil, nil, fmt.Errorf("vecenv: got %d hidden states, want %d", len(hiddens), len(ve.Envs))
	}
	obs := make([]*reversal.Observation, len(ve.Envs))
	errs := make([]error, len(ve.Envs))
	var wg sync.WaitGroup
	for i, ev := range ve.Envs {
		var hid []float64
		if hiddens != nil {
			hid = hiddens[i]
		}
		wg.Add(1)
		go func(i int, ev *reversal.ReversalEnv, act, hid []float64) {
			defer wg.Done()
			obs[i], errs[i] = ev.StepTrial(act, hid)
		}(i, ev, acts[i], hid)
	}
	wg.Wait()
	return obs, errs, nil
}

// Close closes every instance.
func (ve *VecEnv) Close() {
	for _, ev := range ve.Envs {
		ev.Close()
	}
}
