// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// Tuple type determines the EVEX compressed displacement scale.
type Tuple uint8

const (
	NoTuple = Tuple(iota)
	Full128
	Full256
	Full512
	Half128
	Half256
	Half512
	FullMem128
	FullMem256
	FullMem512
)

// Disp8N is the factor by which a one-byte displacement is scaled.
func (t Tuple) Disp8N(bcst, w bool) uint32 {
	switch t {
	case Full128, Full256, Full512:
		if bcst {
			if w {
				return 8
			}
			return 4
		}
		return 16 << (t - Full128)

	case Half128, Half256, Half512:
		if bcst {
			return 4
		}
		return 8 << (t - Half128)

	case FullMem128, FullMem256, FullMem512:
		return 16 << (t - FullMem128)
	}

	return 1
}
