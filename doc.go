// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rnns is the overall repository for the reversal learning task
environment used to train and reverse-engineer recurrent networks on the
IBL-style biased choice world.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* reversal: the core task environment, driving a block-structured trial
timeline with alternating hidden preferred sides and computing a
log-likelihood reward from the agent's choice distribution on each trial.

* stimgen: the stimulus creator contract and the default vector creator
that samples per-trial sides, strengths, and contrast vectors for one
block at a time.

* vecenv: a batch of fully independent environment instances stepped in
parallel, plus the standard training / biased choice world constructors.

* examples: these compile into runnable programs; examples/reversal runs
episodes against a fixed stub policy and logs per-episode statistics.
*/
package rnns
