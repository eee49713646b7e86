// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import (
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// Table assembles the per-trial arrays into an etable.Table, one row per
// trial, for logging and offline analysis of an episode's rollout.
func (ep *Episode) Table() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "ReversalTrials")
	dt.SetMetaData("desc", "per-trial record of one reversal learning episode")
	dt.SetMetaData("precision", "6")
	sch := etable.Schema{
		{"Block", etensor.INT64, nil, nil},
		{"TrialInBlock", etensor.INT64, nil, nil},
		{"Side", etensor.FLOAT64, nil, nil},
		{"Strength", etensor.FLOAT64, nil, nil},
		{"PrefSide", etensor.FLOAT64, nil, nil},
		{"Stimulus", etensor.FLOAT64, ep.ObsShape, nil},
		{"Action", etensor.FLOAT64, []int{NActions}, nil},
		{"Reward", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, ep.TotalTrials)
	act := &etensor.Float64{}
	act.SetShape([]int{NActions}, nil, nil)
	for i := 0; i < ep.TotalTrials; i++ {
		dt.SetCellFloat("Block", i, float64(ep.StimBlockNumber.Values[i]))
		dt.SetCellFloat("TrialInBlock", i, float64(ep.TrialWithinBlock.Values[i]))
		dt.SetCellFloat("Side", i, ep.StimSides.Values[i])
		dt.SetCellFloat("Strength", i, ep.StimStrengths.Values[i])
		dt.SetCellFloat("PrefSide", i, ep.StimPrefSides.Values[i])
		dt.SetCellTensor("Stimulus", i, ep.StimRow(i))
		copy(act.Values, ep.Actions.Values[i*NActions:(i+1)*NActions])
		dt.SetCellTensor("Action", i, act)
		dt.SetCellFloat("Reward", i, ep.Rewards.Values[i])
	}
	return dt
}
