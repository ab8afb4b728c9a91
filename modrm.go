// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"github.com/tsavola/x86dec/internal/in"
	"github.com/tsavola/x86dec/internal/table"
	"github.com/tsavola/x86dec/register"
)

// operands decodes the operand slots of the resolved form, reading the
// displacement, immediate and branch offset bytes in encoding order.
func (d *decoder) operands() {
	ops := d.insn.Ops
	if len(ops) > MaxOperands {
		panic("too many operands in table entry")
	}

	d.out.opCount = uint8(len(ops))

	for i, op := range ops {
		switch {
		case op.IsReg():
			d.setRegister(i, d.regOperand(op))

		case op.IsRm():
			if d.modrm.IsReg() {
				d.setRegister(i, d.rmOperand(op))
			} else {
				d.out.opKinds[i] = OpKindMemory
				d.memory()
			}

		case op.IsVvvv():
			d.setRegister(i, vectorBase(op)+register.Register(d.vvvv))

		case op == table.Imm8:
			d.out.opKinds[i] = OpKindImmediate8
			d.out.imm8 = d.c.Next()

		case op == table.Br16:
			d.out.opKinds[i] = OpKindNearBranch16
			d.rel8 = int8(d.c.Next())

		case op == table.Br32:
			d.out.opKinds[i] = OpKindNearBranch32
			d.rel8 = int8(d.c.Next())

		case op == table.Br64:
			d.out.opKinds[i] = OpKindNearBranch64
			d.rel8 = int8(d.c.Next())

		default:
			panic("unhandled operand type in table entry")
		}
	}
}

func (d *decoder) setRegister(i int, r register.Register) {
	d.out.opKinds[i] = OpKindRegister
	d.out.opRegs[i] = r
}

func (d *decoder) regOperand(op table.Operand) register.Register {
	reg := d.modrm.Reg()

	switch op {
	case table.RegGPR16:
		return register.AX + register.Register(reg+d.extR)

	case table.RegGPR32:
		return register.EAX + register.Register(reg+d.extR)

	case table.RegGPR64:
		return register.RAX + register.Register(reg+d.extR)

	case table.RegMM:
		return register.MM0 + register.Register(reg)

	case table.RegK:
		return register.K0 + register.Register(reg)

	default:
		return vectorBase(op) + register.Register(reg+d.extR+d.extR2)
	}
}

func (d *decoder) rmOperand(op table.Operand) register.Register {
	rm := d.modrm.RM()

	switch op {
	case table.RmGPR16:
		return register.AX + register.Register(rm+d.extB)

	case table.RmGPR32:
		return register.EAX + register.Register(rm+d.extB)

	case table.RmGPR64:
		return register.RAX + register.Register(rm+d.extB)

	case table.RmMM:
		return register.MM0 + register.Register(rm)

	default:
		return vectorBase(op) + register.Register(rm+d.extB+d.extX2)
	}
}

func vectorBase(op table.Operand) register.Register {
	switch op {
	case table.RegXMM, table.RmXMM, table.VvvvXMM:
		return register.XMM0

	case table.RegYMM, table.RmYMM, table.VvvvYMM:
		return register.YMM0

	case table.RegZMM, table.RmZMM, table.VvvvZMM:
		return register.ZMM0
	}

	panic("not a vector operand type")
}

// Base and index registers of 16-bit addressing modes.
var mem16 = [8][2]register.Register{
	{register.BX, register.SI},
	{register.BX, register.DI},
	{register.BP, register.SI},
	{register.BP, register.DI},
	{register.SI, register.None},
	{register.DI, register.None},
	{register.BP, register.None},
	{register.BX, register.None},
}

func (d *decoder) memory() {
	d.out.memSize = d.insn.Mem
	if d.bcst {
		d.out.memSize = d.insn.Bcst
		d.out.flags |= flagBroadcast
	}

	n := uint32(1)
	if d.space == table.EVEX {
		n = d.insn.Tuple.Disp8N(d.bcst, d.w)
	}

	if d.addrSize == size16 {
		d.memory16(n)
	} else {
		d.memory32(n)
	}
}

func (d *decoder) memory16(n uint32) {
	mod := d.modrm.Mod()
	rm := d.modrm.RM()

	if mod == in.ModMem && rm == in.RMDisp16 {
		d.out.memDispl = uint32(d.c.Next2())
		d.out.memDisplSize = 2
		return
	}

	d.out.memBase = mem16[rm][0]
	d.out.memIndex = mem16[rm][1]
	if d.out.memIndex != register.None {
		d.out.memScale = 1
	}

	switch mod {
	case in.ModMemDisp8:
		d.out.memDispl = uint32(uint16(n * uint32(int32(int8(d.c.Next())))))
		d.out.memDisplSize = 1

	case in.ModMemDisp32:
		d.out.memDispl = uint32(d.c.Next2())
		d.out.memDisplSize = 2
	}
}

func (d *decoder) memory32(n uint32) {
	gpr := register.EAX
	if d.addrSize == size64 {
		gpr = register.RAX
	}

	mod := d.modrm.Mod()
	rm := d.modrm.RM()

	switch {
	case rm == in.RMSIB:
		sib := in.SIB(d.c.Next())

		if index := sib.Index() + d.extX; index != in.NoIndex {
			d.out.memIndex = gpr + register.Register(index)
			d.out.memScale = uint8(sib.Scale().Factor())
		}

		if mod == in.ModMem && sib.Base() == in.NoBase {
			d.out.memDispl = d.c.Next4()
			d.out.memDisplSize = 4
			return
		}

		d.out.memBase = gpr + register.Register(sib.Base()+d.extB)

	case mod == in.ModMem && rm == in.RMDisp32:
		if d.mode64 {
			if d.addrSize == size64 {
				d.out.memBase = register.RIP
			} else {
				d.out.memBase = register.EIP
			}
		}

		d.out.memDispl = d.c.Next4()
		d.out.memDisplSize = 4
		return

	default:
		d.out.memBase = gpr + register.Register(rm+d.extB)
	}

	switch mod {
	case in.ModMemDisp8:
		d.out.memDispl = n * uint32(int32(int8(d.c.Next())))
		d.out.memDisplSize = 1

	case in.ModMemDisp32:
		d.out.memDispl = d.c.Next4()
		d.out.memDisplSize = 4
	}
}
