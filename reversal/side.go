// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reversal

import "github.com/goki/ki/kit"

// Side is a stimulus side or a block's hidden preferred side.
type Side int

//go:generate stringer -type=Side

var KiT_Side = kit.Enums.AddEnum(SideN, kit.NotBitFlag, nil)

func (sd Side) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(sd) }
func (sd *Side) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(sd, b) }

const (
	Left Side = iota
	Right
	SideN
)

// Sign returns the signed encoding used in the per-trial arrays:
// -1 for Left, +1 for Right.
func (sd Side) Sign() float64 {
	if sd == Left {
		return -1
	}
	return 1
}

// Other returns the opposite side.
func (sd Side) Other() Side {
	if sd == Left {
		return Right
	}
	return Left
}
