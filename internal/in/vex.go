// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

// PP is the compressed mandatory prefix.
type PP uint8

const (
	PPNone = PP(iota)
	PP66
	PPF3
	PPF2
)

var ppStrings = [4]string{"", "66", "F3", "F2"}

func (pp PP) String() string { return ppStrings[pp&3] }

// Map selects an opcode table.
type Map uint8

const (
	MapNone = Map(iota) // one-byte opcodes
	Map0F
	Map0F38
	Map0F3A
)

const (
	VEX2 = byte(0xc5)
	VEX3 = byte(0xc4)
	EVEX = byte(0x62)
)

// IsVexPayload tells if the byte after C4, C5 or 62 begins a VEX or EVEX
// payload in 16-bit or 32-bit mode.  Otherwise the escape byte is LES, LDS or
// BOUND.
func IsVexPayload(b byte) bool { return b&0xc0 == 0xc0 }

// Vex2 is the payload byte of a two-byte VEX prefix: R̄ vvvv̄ L pp.
type Vex2 byte

func (v Vex2) R() uint8    { return bit8(v&0x80 == 0) }
func (v Vex2) VVVV() uint8 { return uint8(^v>>3) & 0xf }
func (v Vex2) L() uint8    { return uint8(v>>2) & 1 }
func (v Vex2) PP() PP      { return PP(v & 3) }

// Vex3 is the payload of a three-byte VEX prefix: R̄X̄B̄ mmmmm, W vvvv̄ L pp.
type Vex3 [2]byte

func (v Vex3) R() uint8    { return bit8(v[0]&0x80 == 0) }
func (v Vex3) X() uint8    { return bit8(v[0]&0x40 == 0) }
func (v Vex3) B() uint8    { return bit8(v[0]&0x20 == 0) }
func (v Vex3) Map() Map    { return Map(v[0] & 0x1f) }
func (v Vex3) W() bool     { return v[1]&0x80 != 0 }
func (v Vex3) VVVV() uint8 { return uint8(^v[1]>>3) & 0xf }
func (v Vex3) L() uint8    { return uint8(v[1]>>2) & 1 }
func (v Vex3) PP() PP      { return PP(v[1] & 3) }

// ValidMap tells if the mmmmm field selects 0F, 0F38 or 0F3A.
func (v Vex3) ValidMap() bool { m := v.Map(); return m >= Map0F && m <= Map0F3A }
