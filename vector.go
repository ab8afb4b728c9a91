// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"github.com/tsavola/x86dec/internal/errors"
	"github.com/tsavola/x86dec/internal/in"
	"github.com/tsavola/x86dec/internal/table"
	"github.com/tsavola/x86dec/memsize"
)

// vector decodes a VEX or EVEX payload and the opcode byte which follows it.
func (d *decoder) vector(escape byte) {
	if d.rex || d.has66 || d.repe || d.repne || d.lock {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "prefix before %s escape", escapeName(escape)))
	}

	switch escape {
	case in.VEX2:
		d.vex2(in.Vex2(d.c.Next()))

	case in.VEX3:
		d.vex3(in.Vex3{d.c.Next(), d.c.Next()})

	case in.EVEX:
		d.evex(in.Evex{d.c.Next(), d.c.Next(), d.c.Next()})
	}

	d.op = d.c.Next()
}

func (d *decoder) vex2(p in.Vex2) {
	d.space = table.VEX
	d.m = in.Map0F
	d.pp = p.PP()
	d.l = p.L()
	d.vvvv = p.VVVV()

	if d.mode64 {
		d.extR = p.R()
	}
}

func (d *decoder) vex3(p in.Vex3) {
	d.space = table.VEX
	d.pp = p.PP()
	d.l = p.L()
	d.w = p.W()

	if d.mode64 {
		d.extR = p.R()
		d.extX = p.X()
		d.extB = p.B()
		d.vvvv = p.VVVV()
	} else {
		d.vvvv = p.VVVV() & 7
	}

	if !p.ValidMap() {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "VEX opcode map %d", p.Map()))
	}
	d.m = p.Map()
}

func (d *decoder) evex(p in.Evex) {
	if !p.Fixed() {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "EVEX payload bit 10 is clear"))
	}
	if p.Reserved() {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "reserved EVEX payload bits are set"))
	}

	d.space = table.EVEX
	d.pp = p.PP()
	d.w = p.W()
	d.l = p.LL()
	d.aaa = p.AAA()
	d.z = p.Z()
	d.bcst = p.Bcst()

	if d.z && d.aaa == 0 {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "zeroing without opmask"))
	}

	if d.mode64 {
		d.extR = p.R()
		d.extX = p.X()
		d.extB = p.B()
		d.extR2 = p.R2()
		d.extX2 = p.X2()
		d.vvvv = p.VVVV() + p.V2()
	} else {
		d.vvvv = p.VVVV() & 7
	}

	if !p.ValidMap() {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "EVEX opcode map %d", p.Map()))
	}
	d.m = p.Map()
}

// checkVector validates the VEX and EVEX fields against the resolved form.
func (d *decoder) checkVector() {
	insn := d.insn

	if !insn.HasVvvv() && d.vvvv != 0 {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "%s: unused vvvv field is %d", insn.Code, d.vvvv))
	}

	if d.space != table.EVEX {
		return
	}

	if d.aaa != 0 && !insn.Has(table.Masked) {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "%s: opmask not supported", insn.Code))
	}
	if d.z && !insn.Has(table.Zeroing) {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "%s: zeroing-masking not supported", insn.Code))
	}

	if d.bcst {
		if d.modrm.IsReg() {
			if !insn.Has(table.ER | table.SAE) {
				panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "%s: rounding control not supported", insn.Code))
			}
		} else if insn.Bcst == memsize.Unknown {
			panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "%s: broadcast not supported", insn.Code))
		}
	}

	if len(insn.Ops) > 0 && insn.Ops[0] == table.RegK && (d.extR|d.extR2) != 0 {
		panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "%s: opmask destination out of range", insn.Code))
	}
}

func escapeName(b byte) string {
	switch b {
	case in.VEX2:
		return "VEX2"

	case in.VEX3:
		return "VEX3"

	default:
		return "EVEX"
	}
}
