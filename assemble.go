// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"github.com/tsavola/x86dec/internal/table"
	"github.com/tsavola/x86dec/register"
)

// assemble fills in the fields which depend on the instruction length or on
// the combination of prefix state and the resolved form.
func (d *decoder) assemble() {
	x := &d.out

	x.code = d.insn.Code
	x.ip = d.ip
	x.length = uint8(d.c.Len())
	x.segPrefix = d.segment

	if n := int(x.opCount); n > 0 {
		next := x.NextIP() + uint64(int64(d.rel8))

		switch x.opKinds[n-1] {
		case OpKindNearBranch16:
			x.target = uint64(uint16(next))

		case OpKindNearBranch32:
			x.target = uint64(uint32(next))

		case OpKindNearBranch64:
			x.target = next
		}
	}

	if d.repe {
		x.flags |= flagRepe
	}
	if d.repne {
		x.flags |= flagRepne
	}
	if d.lock {
		x.flags |= flagLock
	}

	switch d.space {
	case table.Legacy:
		x.encoding = EncodingLegacy

	case table.VEX:
		x.encoding = EncodingVEX
		x.vectorLen = 128 << d.l

	case table.EVEX:
		x.encoding = EncodingEVEX
		d.assembleEVEX()
	}
}

func (d *decoder) assembleEVEX() {
	x := &d.out

	if d.aaa != 0 {
		x.opMask = register.K0 + register.Register(d.aaa)
	}
	if d.z {
		x.flags |= flagZeroing
	}

	if d.bcst && d.modrm.IsReg() {
		switch {
		case d.insn.Has(table.ER):
			x.rounding = RoundToNearest + RoundingControl(d.l)

		case d.insn.Has(table.SAE):
			x.flags |= flagSAE
		}

		x.vectorLen = 512
		return
	}

	x.vectorLen = 128 << d.l
}
