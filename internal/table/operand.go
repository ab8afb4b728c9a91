// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// Operand encoding and register class.
type Operand uint8

const (
	NoOperand = Operand(iota)

	RegGPR16 // ModRM.reg
	RegGPR32
	RegGPR64
	RegMM
	RegXMM
	RegYMM
	RegZMM
	RegK

	RmGPR16 // ModRM.rm register or memory
	RmGPR32
	RmGPR64
	RmMM
	RmXMM
	RmYMM
	RmZMM
	Mem // ModRM.rm memory only

	VvvvXMM // VEX.vvvv or EVEX.V'vvvv
	VvvvYMM
	VvvvZMM

	Imm8

	Br16 // rel8 branch target
	Br32
	Br64
)

func (op Operand) IsReg() bool  { return op >= RegGPR16 && op <= RegK }
func (op Operand) IsRm() bool   { return op >= RmGPR16 && op <= Mem }
func (op Operand) IsVvvv() bool { return op >= VvvvXMM && op <= VvvvZMM }

var operandStrings = [...]string{
	NoOperand: "none",
	RegGPR16:  "r16",
	RegGPR32:  "r32",
	RegGPR64:  "r64",
	RegMM:     "mm",
	RegXMM:    "xmm",
	RegYMM:    "ymm",
	RegZMM:    "zmm",
	RegK:      "k",
	RmGPR16:   "r/m16",
	RmGPR32:   "r/m32",
	RmGPR64:   "r/m64",
	RmMM:      "mm/m",
	RmXMM:     "xmm/m",
	RmYMM:     "ymm/m",
	RmZMM:     "zmm/m",
	Mem:       "m",
	VvvvXMM:   "vxmm",
	VvvvYMM:   "vymm",
	VvvvZMM:   "vzmm",
	Imm8:      "imm8",
	Br16:      "rel8/16",
	Br32:      "rel8/32",
	Br64:      "rel8/64",
}

func (op Operand) String() string {
	if int(op) < len(operandStrings) {
		return operandStrings[op]
	}
	return "?"
}
