// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

// Evex is the payload of an EVEX prefix:
//
//	P0: R̄ X̄ B̄ R̄' 0 0 m m
//	P1: W vvvv̄ 1 p p
//	P2: z L'L b V̄' aaa
type Evex [3]byte

func (e Evex) R() uint8  { return bit8(e[0]&0x80 == 0) }
func (e Evex) X() uint8  { return bit8(e[0]&0x40 == 0) }
func (e Evex) B() uint8  { return bit8(e[0]&0x20 == 0) }
func (e Evex) R2() uint8 { return bit(e[0]&0x10 == 0) << 4 }
func (e Evex) Map() Map  { return Map(e[0] & 3) }

func (e Evex) W() bool     { return e[1]&0x80 != 0 }
func (e Evex) VVVV() uint8 { return uint8(^e[1]>>3) & 0xf }
func (e Evex) PP() PP      { return PP(e[1] & 3) }

func (e Evex) Z() bool    { return e[2]&0x80 != 0 }
func (e Evex) LL() uint8  { return uint8(e[2]>>5) & 3 }
func (e Evex) Bcst() bool { return e[2]&0x10 != 0 }
func (e Evex) V2() uint8  { return bit(e[2]&0x08 == 0) << 4 }
func (e Evex) AAA() uint8 { return uint8(e[2]) & 7 }

// X2 is the high bit of a register operand encoded in ModRM.rm.
func (e Evex) X2() uint8 { return bit(e[0]&0x40 == 0) << 4 }

// Reserved tells if P0 bits 3:2 are nonzero.
func (e Evex) Reserved() bool { return e[0]&0x0c != 0 }

// Fixed tells if P1 bit 2 is set.  It is clear for MVEX.
func (e Evex) Fixed() bool { return e[1]&0x04 != 0 }

func (e Evex) ValidMap() bool { return e.Map() != MapNone }
