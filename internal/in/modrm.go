// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

type Mod byte
type ModRM byte

const (
	ModMem       = Mod(0)
	ModMemDisp8  = Mod(64)
	ModMemDisp32 = Mod(128) // disp16 with 16-bit addressing
	ModReg       = Mod(192)
)

const (
	RMSIB    = 4
	RMDisp32 = 5
	RMDisp16 = 6
)

func (m ModRM) Mod() Mod    { return Mod(m & 0xc0) }
func (m ModRM) Reg() uint8  { return uint8(m>>3) & 7 }
func (m ModRM) RM() uint8   { return uint8(m) & 7 }
func (m ModRM) IsReg() bool { return m >= 0xc0 }

type (
	Scale byte
	SIB   byte
)

const (
	NoIndex = 4
	NoBase  = 5 // with ModMem
)

// Factor is 1, 2, 4 or 8.
func (s Scale) Factor() int { return 1 << (s >> 6) }

func (s SIB) Scale() Scale  { return Scale(s & 0xc0) }
func (s SIB) Index() uint8  { return uint8(s>>3) & 7 }
func (s SIB) Base() uint8   { return uint8(s) & 7 }
