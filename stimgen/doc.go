// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stimgen defines the stimulus creator contract used by the reversal
learning environment, and provides the default vector creator.

A creator maps one block's trial count and side-bias probabilities into
equal-length sequences of sampled stimuli, sides, and strengths.  The
environment treats the creator as a black box: it only relies on the
advertised observation shape and on the three sequences coming back with
the requested length.
*/
package stimgen
