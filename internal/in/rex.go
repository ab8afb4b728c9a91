// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

type rexWRXB byte

const (
	Rex  = byte(64)
	RexW = rexWRXB(8) // 64-bit operand size
	RexR = rexWRXB(4) // extension of the ModR/M reg field
	RexX = rexWRXB(2) // extension of the SIB index field
	RexB = rexWRXB(1) // extension of the ModR/M r/m field or SIB base field
)

func IsRex(b byte) bool { return b&0xf0 == Rex }

// RexBits extracts the WRXB bits of a REX byte.
func RexBits(b byte) rexWRXB { return rexWRXB(b & 0xf) }

func (x rexWRXB) W() bool { return x&RexW != 0 }

// Ext returns 8 if bit is set, otherwise 0.
func (x rexWRXB) Ext(bit rexWRXB) uint8 { return bit8(x&bit != 0) }

func bit(b bool) (i uint8) {
	if b {
		i = 1
	}
	return
}

func bit8(b bool) uint8 { return bit(b) << 3 }
