// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"fmt"
	"strings"

	"github.com/tsavola/x86dec/code"
	"github.com/tsavola/x86dec/memsize"
	"github.com/tsavola/x86dec/register"
)

// MaxOperands is the maximum number of explicit operands.
const MaxOperands = 4

type OpKind uint8

const (
	OpKindNone = OpKind(iota)
	OpKindRegister
	OpKindMemory
	OpKindImmediate8
	OpKindNearBranch16
	OpKindNearBranch32
	OpKindNearBranch64
)

var opKindStrings = [...]string{
	OpKindNone:         "None",
	OpKindRegister:     "Register",
	OpKindMemory:       "Memory",
	OpKindImmediate8:   "Immediate8",
	OpKindNearBranch16: "NearBranch16",
	OpKindNearBranch32: "NearBranch32",
	OpKindNearBranch64: "NearBranch64",
}

func (k OpKind) String() string {
	if int(k) < len(opKindStrings) {
		return opKindStrings[k]
	}
	return fmt.Sprintf("<opkind %d>", uint8(k))
}

type RoundingControl uint8

const (
	RoundNone = RoundingControl(iota)
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)

var roundingStrings = [...]string{
	RoundNone:       "",
	RoundToNearest:  "rn-sae",
	RoundDown:       "rd-sae",
	RoundUp:         "ru-sae",
	RoundTowardZero: "rz-sae",
}

func (rc RoundingControl) String() string {
	if int(rc) < len(roundingStrings) {
		return roundingStrings[rc]
	}
	return fmt.Sprintf("<rounding %d>", uint8(rc))
}

type EncodingKind uint8

const (
	EncodingLegacy = EncodingKind(iota)
	EncodingVEX
	EncodingEVEX
)

var encodingStrings = [...]string{"Legacy", "VEX", "EVEX"}

func (e EncodingKind) String() string {
	if int(e) < len(encodingStrings) {
		return encodingStrings[e]
	}
	return fmt.Sprintf("<encoding %d>", uint8(e))
}

type instFlags uint8

const (
	flagRepe = instFlags(1 << iota)
	flagRepne
	flagLock
	flagZeroing
	flagSAE
	flagBroadcast
)

// Instruction is a decoded instruction.  It is a value; decoding never
// modifies a previously returned instruction.
type Instruction struct {
	ip       uint64
	target   uint64
	memDispl uint32
	code     code.Code
	length   uint8
	opCount  uint8
	opKinds  [MaxOperands]OpKind
	opRegs   [MaxOperands]register.Register
	imm8     uint8
	flags    instFlags

	segPrefix    register.Register
	memBase      register.Register
	memIndex     register.Register
	memScale     uint8
	memDisplSize uint8
	memSize      memsize.MemorySize

	opMask    register.Register
	rounding  RoundingControl
	encoding  EncodingKind
	vectorLen uint16
}

func (x Instruction) Code() code.Code { return x.code }

// Len is the number of bytes the instruction occupies (1-15).
func (x Instruction) Len() int { return int(x.length) }

func (x Instruction) OpCount() int { return int(x.opCount) }

// OpKind of operand n.  OpKindNone is returned for nonexistent operands.
func (x Instruction) OpKind(n int) OpKind {
	if n < 0 || n >= int(x.opCount) {
		return OpKindNone
	}
	return x.opKinds[n]
}

// OpRegister of operand n, or register.None if it isn't a register operand.
func (x Instruction) OpRegister(n int) register.Register {
	if x.OpKind(n) != OpKindRegister {
		return register.None
	}
	return x.opRegs[n]
}

func (x Instruction) Immediate8() uint8 { return x.imm8 }

// NearBranchTarget is the absolute target address of a relative branch.
func (x Instruction) NearBranchTarget() uint64 { return x.target }

// SegmentPrefix is the segment override prefix, or register.None.
func (x Instruction) SegmentPrefix() register.Register { return x.segPrefix }

// MemorySegment is the effective segment of the memory operand.
func (x Instruction) MemorySegment() register.Register {
	if x.segPrefix != register.None {
		return x.segPrefix
	}

	switch x.memBase {
	case register.BP, register.SP, register.EBP, register.ESP, register.RBP, register.RSP:
		return register.SS
	}

	return register.DS
}

func (x Instruction) MemoryBase() register.Register  { return x.memBase }
func (x Instruction) MemoryIndex() register.Register { return x.memIndex }

// MemoryIndexScale is 1, 2, 4 or 8.
func (x Instruction) MemoryIndexScale() int {
	if x.memScale == 0 {
		return 1
	}
	return int(x.memScale)
}

// MemoryDisplacement is truncated to the address size.  With 16-bit
// addressing only the low 16 bits are used.
func (x Instruction) MemoryDisplacement() uint32 { return x.memDispl }

// MemoryDisplSize is the size of the encoded displacement in bytes: 0, 1, 2
// or 4.
func (x Instruction) MemoryDisplSize() int { return int(x.memDisplSize) }

func (x Instruction) MemorySize() memsize.MemorySize { return x.memSize }

// IsBroadcast tells if the memory operand is an EVEX embedded broadcast.
func (x Instruction) IsBroadcast() bool { return x.flags&flagBroadcast != 0 }

func (x Instruction) HasRepePrefix() bool  { return x.flags&flagRepe != 0 }
func (x Instruction) HasRepnePrefix() bool { return x.flags&flagRepne != 0 }
func (x Instruction) HasLockPrefix() bool  { return x.flags&flagLock != 0 }

// OpMask is K1-K7, or register.None if the instruction isn't masked.
func (x Instruction) OpMask() register.Register { return x.opMask }

func (x Instruction) ZeroingMasking() bool             { return x.flags&flagZeroing != 0 }
func (x Instruction) RoundingControl() RoundingControl { return x.rounding }
func (x Instruction) SuppressAllExceptions() bool      { return x.flags&flagSAE != 0 }
func (x Instruction) Encoding() EncodingKind           { return x.encoding }
func (x Instruction) IP() uint64                       { return x.ip }
func (x Instruction) NextIP() uint64                   { return x.ip + uint64(x.length) }

// VectorLength is 128, 256 or 512 for VEX and EVEX instructions, and 0 for
// legacy instructions.
func (x Instruction) VectorLength() int { return int(x.vectorLen) }

// String formats the instruction in Intel syntax with hexadecimal numbers.
func (x Instruction) String() string {
	if x.code == code.INVALID {
		return "(bad)"
	}

	b := new(strings.Builder)
	b.WriteString(x.code.Mnemonic())

	for i := 0; i < int(x.opCount); i++ {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}

		switch x.opKinds[i] {
		case OpKindRegister:
			b.WriteString(x.opRegs[i].String())

		case OpKindMemory:
			x.formatMemory(b)

		case OpKindImmediate8:
			fmt.Fprintf(b, "0x%x", x.imm8)

		case OpKindNearBranch16, OpKindNearBranch32, OpKindNearBranch64:
			fmt.Fprintf(b, "0x%x", x.target)
		}

		if i == 0 && x.opMask != register.None {
			fmt.Fprintf(b, "{%s}", x.opMask)
			if x.ZeroingMasking() {
				b.WriteString("{z}")
			}
		}
	}

	switch {
	case x.rounding != RoundNone:
		fmt.Fprintf(b, ", {%s}", x.rounding)

	case x.SuppressAllExceptions():
		b.WriteString(", {sae}")
	}

	return b.String()
}

func (x Instruction) formatMemory(b *strings.Builder) {
	if x.segPrefix != register.None {
		fmt.Fprintf(b, "%s:", x.segPrefix)
	}

	b.WriteString("[")
	sep := ""

	if x.memBase != register.None {
		b.WriteString(x.memBase.String())
		sep = "+"
	}
	if x.memIndex != register.None {
		fmt.Fprintf(b, "%s%s", sep, x.memIndex)
		if scale := x.MemoryIndexScale(); scale > 1 {
			fmt.Fprintf(b, "*%d", scale)
		}
		sep = "+"
	}
	if x.memDisplSize != 0 || sep == "" {
		fmt.Fprintf(b, "%s0x%x", sep, x.memDispl)
	}

	b.WriteString("]")

	if x.IsBroadcast() {
		fmt.Fprintf(b, "{1to%d}", x.memSize.BroadcastCount())
	}
}
