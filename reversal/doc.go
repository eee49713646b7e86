// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package reversal implements the reversal learning decision task: a session
is partitioned into blocks of variable length, each block has a hidden
preferred side that strictly alternates from block to block, and on every
trial the agent observes a stimulus, emits a distribution over the two
choices (left / right), and is rewarded with the log probability it
assigned to the side the stimulus actually appeared on.

The environment exposes two equivalent surfaces: a gym-style contract
(Reset / StepTrial / Close returning typed Observations), and the
emergent env.Env interface, so it can drive emergent models directly
through State / Action / Step with Run, Block, and Trial counters.

All randomness is drawn from a per-instance random source, so parallel
instances never contend on shared state and tests can seed each one
deterministically.
*/
package reversal
