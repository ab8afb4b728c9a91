// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/tsavola/x86dec/code"
	"github.com/tsavola/x86dec/internal/errors"
	"github.com/tsavola/x86dec/internal/in"
	"github.com/tsavola/x86dec/memsize"
	"golang.org/x/xerrors"
)

func walk(n *Node, f func(*Insn)) {
	if n.Kind == Leaf {
		f(n.Insn)
		return
	}
	for i := range n.Sub {
		walk(&n.Sub[i], f)
	}
}

func TestCodeCoverage(t *testing.T) {
	counts := make(map[code.Code]int)

	for _, table := range []*[256]Entry{&oneByte, &legacy0F, &vex0F, &evex0F, &evex0F3A} {
		for i := range table {
			walk(&table[i].Node, func(insn *Insn) {
				counts[insn.Code]++
			})
		}
	}

	for c := code.INVALID + 1; c < code.NumCodes; c++ {
		if n := counts[c]; n != 1 {
			t.Errorf("%s occurs %d times", c, n)
		}
	}
}

func TestLeafConsistency(t *testing.T) {
	for _, table := range []*[256]Entry{&evex0F, &evex0F3A} {
		for i := range table {
			walk(&table[i].Node, func(insn *Insn) {
				if insn.Tuple == NoTuple {
					t.Errorf("%s: no tuple type", insn.Code)
				}
				if insn.Bcst != memsize.Unknown && !insn.Bcst.IsBroadcast() {
					t.Errorf("%s: %s is not a broadcast size", insn.Code, insn.Bcst)
				}
				if insn.Has(Zeroing) && !insn.Has(Masked) {
					t.Errorf("%s: zeroing without masking", insn.Code)
				}
			})
		}
	}
}

func TestResolveMandatoryPrefix(t *testing.T) {
	e := Lookup(Legacy, in.Map0F, 0x70)
	if !e.HasModRM {
		t.Fatal("0F70 has no ModRM")
	}

	for pp, expect := range []code.Code{
		code.Pshufw_mm_mmm64_imm8,
		code.Pshufd_xmm_xmmm128_imm8,
		code.Pshufhw_xmm_xmmm128_imm8,
		code.Pshuflw_xmm_xmmm128_imm8,
	} {
		insn, mandatory, err := Resolve(&e.Node, &Keys{PP: in.PP(pp), ModRM: 0x08})
		if err != nil {
			t.Fatal(err)
		}
		if insn.Code != expect || !mandatory {
			t.Errorf("pp %d: %s, %v", pp, insn.Code, mandatory)
		}
	}
}

func TestResolveGroup(t *testing.T) {
	e := Lookup(Legacy, in.Map0F, 0x73)

	for _, x := range []struct {
		pp     in.PP
		modrm  in.ModRM
		expect code.Code
	}{
		{in.PPNone, 0xd1, code.Psrlq_mm_imm8},
		{in.PPNone, 0xf1, code.Psllq_mm_imm8},
		{in.PP66, 0xd9, code.Psrldq_xmm_imm8},
		{in.PP66, 0xf9, code.Pslldq_xmm_imm8},
	} {
		insn, _, err := Resolve(&e.Node, &Keys{PP: x.pp, ModRM: x.modrm})
		if err != nil {
			t.Errorf("%s 0F73 %02x: %v", x.pp, x.modrm, err)
			continue
		}
		if insn.Code != x.expect || !insn.Has(RegOnly) {
			t.Errorf("%s 0F73 %02x: %s", x.pp, x.modrm, insn.Code)
		}
	}

	for _, modrm := range []in.ModRM{0xc1, 0xc9, 0xe1} {
		if _, _, err := Resolve(&e.Node, &Keys{PP: in.PPNone, ModRM: modrm}); !xerrors.Is(err, errors.ErrUnknownOpcode) {
			t.Errorf("0F73 %02x: %v", modrm, err)
		}
	}
	if _, _, err := Resolve(&e.Node, &Keys{PP: in.PPF3, ModRM: 0xd1}); err == nil {
		t.Error("F3 0F73 /2 resolved")
	}
}

func TestResolveBranch(t *testing.T) {
	e := Lookup(Legacy, in.MapNone, 0x70)
	if e.HasModRM {
		t.Fatal("Jo has ModRM")
	}

	for _, x := range []struct {
		opSize uint8
		mode64 bool
		expect code.Code
	}{
		{0, false, code.Jo_rel8_16},
		{1, false, code.Jo_rel8_32},
		{0, true, code.Jo_rel8_64},
		{2, true, code.Jo_rel8_64},
	} {
		insn, mandatory, err := Resolve(&e.Node, &Keys{OpSize: x.opSize, Mode64: x.mode64})
		if err != nil {
			t.Fatal(err)
		}
		if insn.Code != x.expect || mandatory {
			t.Errorf("%d %v: %s", x.opSize, x.mode64, insn.Code)
		}
	}
}

func TestResolveRounding(t *testing.T) {
	e := Lookup(EVEX, in.Map0F, 0x79)

	insn, _, err := Resolve(&e.Node, &Keys{PP: in.PPNone, ModRM: 0xd3, L: 1, Rounding: true})
	if err != nil {
		t.Fatal(err)
	}
	if insn.Code != code.EVEX_Vcvtps2udq_zmm_k1z_zmmm512b32_er || !insn.Has(ER) {
		t.Error(insn.Code)
	}

	insn, _, err = Resolve(&e.Node, &Keys{PP: in.PPNone, ModRM: 0xd3, L: 1})
	if err != nil {
		t.Fatal(err)
	}
	if insn.Code != code.EVEX_Vcvtps2udq_ymm_k1z_ymmm256b32 {
		t.Error(insn.Code)
	}

	// Rounding does not apply to forms without it.
	e = Lookup(EVEX, in.Map0F, 0x70)
	insn, _, err = Resolve(&e.Node, &Keys{PP: in.PP66, ModRM: 0xd3, L: 1, Rounding: true})
	if err != nil {
		t.Fatal(err)
	}
	if insn.Code != code.EVEX_Vpshufd_ymm_k1z_ymmm256b32_imm8 {
		t.Error(insn.Code)
	}
}

func TestLookupMissing(t *testing.T) {
	for _, x := range []struct {
		s  Space
		m  in.Map
		op byte
	}{
		{Legacy, in.Map0F3A, 0x70},
		{VEX, in.Map0F3A, 0x70},
		{VEX, in.Map0F38, 0x00},
		{EVEX, in.Map0F38, 0x70},
		{EVEX, in.Map0F, 0x77},
		{Legacy, in.Map0F, 0x78},
	} {
		if e := Lookup(x.s, x.m, x.op); e.Kind != Invalid {
			t.Errorf("%s map %d opcode 0x%02x: %v", x.s, x.m, x.op, e.Kind)
		}
	}
}

func TestDisp8N(t *testing.T) {
	for _, x := range []struct {
		tuple  Tuple
		bcst   bool
		w      bool
		expect uint32
	}{
		{Full128, false, false, 16},
		{Full256, false, true, 32},
		{Full512, false, false, 64},
		{Full128, true, false, 4},
		{Full512, true, true, 8},
		{Half128, false, false, 8},
		{Half256, false, false, 16},
		{Half512, false, false, 32},
		{Half256, true, false, 4},
		{FullMem128, false, true, 16},
		{FullMem256, false, false, 32},
		{FullMem512, false, false, 64},
		{NoTuple, false, false, 1},
	} {
		if n := x.tuple.Disp8N(x.bcst, x.w); n != x.expect {
			t.Errorf("Tuple(%d).Disp8N(%v, %v) = %d", x.tuple, x.bcst, x.w, n)
		}
	}
}
