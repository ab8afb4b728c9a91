// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"encoding/hex"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsavola/x86dec/code"
	"github.com/tsavola/x86dec/memsize"
	"github.com/tsavola/x86dec/register"
	"golang.org/x/xerrors"
)

func parseHex(t testing.TB, s string) []byte {
	t.Helper()

	data, err := hex.DecodeString(strings.Replace(s, " ", "", -1))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

type memory struct {
	Seg       register.Register
	Base      register.Register
	Index     register.Register
	Scale     int
	Displ     uint32
	DisplSize int
	Size      memsize.MemorySize
	Bcst      bool
}

type fields struct {
	Code     code.Code
	Len      int
	Kinds    []OpKind
	Regs     []register.Register
	Mem      *memory
	Imm8     uint8
	Target   uint64
	Mask     register.Register
	Zeroing  bool
	Rounding RoundingControl
	SAE      bool
	Lock     bool
	Encoding EncodingKind
	VecLen   int
}

func summarize(x Instruction) (f fields) {
	f = fields{
		Code:     x.Code(),
		Len:      x.Len(),
		Imm8:     x.Immediate8(),
		Target:   x.NearBranchTarget(),
		Mask:     x.OpMask(),
		Zeroing:  x.ZeroingMasking(),
		Rounding: x.RoundingControl(),
		SAE:      x.SuppressAllExceptions(),
		Lock:     x.HasLockPrefix(),
		Encoding: x.Encoding(),
		VecLen:   x.VectorLength(),
	}

	for i := 0; i < x.OpCount(); i++ {
		kind := x.OpKind(i)
		f.Kinds = append(f.Kinds, kind)
		f.Regs = append(f.Regs, x.OpRegister(i))

		if kind == OpKindMemory {
			f.Mem = &memory{
				Seg:       x.MemorySegment(),
				Base:      x.MemoryBase(),
				Index:     x.MemoryIndex(),
				Scale:     x.MemoryIndexScale(),
				Displ:     x.MemoryDisplacement(),
				DisplSize: x.MemoryDisplSize(),
				Size:      x.MemorySize(),
				Bcst:      x.IsBroadcast(),
			}
		}
	}

	return
}

const (
	reg = OpKindRegister
	mem = OpKindMemory
	imm = OpKindImmediate8
)

var none = register.None

var decodeTests = []struct {
	bitness int
	hex     string
	want    fields
}{
	{16, "66 0F70 08 A5", fields{
		Code:  code.Pshufd_xmm_xmmm128_imm8,
		Len:   5,
		Kinds: []OpKind{reg, mem, imm},
		Regs:  []register.Register{register.XMM1, none, none},
		Mem:   &memory{register.DS, register.BX, register.SI, 1, 0, 0, memsize.Packed128_Int32, false},
		Imm8:  0xa5,
	}},
	{16, "0F77", fields{Code: code.Emms, Len: 2}},
	{32, "0F77", fields{Code: code.Emms, Len: 2}},
	{64, "0F77", fields{Code: code.Emms, Len: 2}},
	{64, "4F 0F70 CD A5", fields{
		Code:  code.Pshufw_mm_mmm64_imm8,
		Len:   5,
		Kinds: []OpKind{reg, reg, imm},
		Regs:  []register.Register{register.MM1, register.MM5, none},
		Imm8:  0xa5,
	}},
	{64, "66 44 0F76 CD", fields{
		Code:  code.Pcmpeqd_xmm_xmmm128,
		Len:   5,
		Kinds: []OpKind{reg, reg},
		Regs:  []register.Register{register.XMM9, register.XMM5},
	}},
	{32, "F2 0F70 44 88 F0 01", fields{
		Code:  code.Pshuflw_xmm_xmmm128_imm8,
		Len:   7,
		Kinds: []OpKind{reg, mem, imm},
		Regs:  []register.Register{register.XMM0, none, none},
		Mem:   &memory{register.DS, register.EAX, register.ECX, 4, 0xfffffff0, 1, memsize.Packed128_Int16, false},
		Imm8:  1,
	}},
	{64, "66 0F73 DA 08", fields{
		Code:  code.Psrldq_xmm_imm8,
		Len:   5,
		Kinds: []OpKind{reg, imm},
		Regs:  []register.Register{register.XMM2, none},
		Imm8:  8,
	}},
	{64, "0F75 05 78563412", fields{
		Code:  code.Pcmpeqw_mm_mmm64,
		Len:   7,
		Kinds: []OpKind{reg, mem},
		Regs:  []register.Register{register.MM0, none},
		Mem:   &memory{register.DS, register.RIP, none, 1, 0x12345678, 4, memsize.Packed64_Int16, false},
	}},
	{64, "67 0F74 04 25 00100000", fields{
		Code:  code.Pcmpeqb_mm_mmm64,
		Len:   9,
		Kinds: []OpKind{reg, mem},
		Regs:  []register.Register{register.MM0, none},
		Mem:   &memory{register.DS, none, none, 1, 0x1000, 4, memsize.Packed64_Int8, false},
	}},

	// VEX
	{64, "C5F8 77", fields{Code: code.VEX_Vzeroupper, Len: 3, Encoding: EncodingVEX, VecLen: 128}},
	{32, "C5FC 77", fields{Code: code.VEX_Vzeroall, Len: 3, Encoding: EncodingVEX, VecLen: 256}},
	{64, "C4E17D 70 CA 1B", fields{
		Code:     code.VEX_Vpshufd_ymm_ymmm256_imm8,
		Len:      6,
		Kinds:    []OpKind{reg, reg, imm},
		Regs:     []register.Register{register.YMM1, register.YMM2, none},
		Imm8:     0x1b,
		Encoding: EncodingVEX,
		VecLen:   256,
	}},
	{64, "C4C171 72 D4 03", fields{
		Code:     code.VEX_Vpsrld_xmm_xmm_imm8,
		Len:      6,
		Kinds:    []OpKind{reg, reg, imm},
		Regs:     []register.Register{register.XMM1, register.XMM12, none},
		Imm8:     3,
		Encoding: EncodingVEX,
		VecLen:   128,
	}},
	{32, "C5E9 75 5D 10", fields{
		Code:     code.VEX_Vpcmpeqw_xmm_xmm_xmmm128,
		Len:      5,
		Kinds:    []OpKind{reg, reg, mem},
		Regs:     []register.Register{register.XMM3, register.XMM2, none},
		Mem:      &memory{register.SS, register.EBP, none, 1, 0x10, 1, memsize.Packed128_Int16, false},
		Encoding: EncodingVEX,
		VecLen:   128,
	}},

	// EVEX 0F
	{64, "62 F17D8B 70 50 01 A5", fields{
		Code:     code.EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8,
		Len:      8,
		Kinds:    []OpKind{reg, mem, imm},
		Regs:     []register.Register{register.XMM2, none, none},
		Mem:      &memory{register.DS, register.RAX, none, 1, 16, 1, memsize.Packed128_Int32, false},
		Imm8:     0xa5,
		Mask:     register.K3,
		Zeroing:  true,
		Encoding: EncodingEVEX,
		VecLen:   128,
	}},
	{64, "62 F17D1D 70 50 01 A5", fields{
		Code:     code.EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8,
		Len:      8,
		Kinds:    []OpKind{reg, mem, imm},
		Regs:     []register.Register{register.XMM2, none, none},
		Mem:      &memory{register.DS, register.RAX, none, 1, 4, 1, memsize.Broadcast128_Int32, true},
		Imm8:     0xa5,
		Mask:     register.K5,
		Encoding: EncodingEVEX,
		VecLen:   128,
	}},
	{64, "62 F17E48 70 50 01 A5", fields{
		Code:     code.EVEX_Vpshufhw_zmm_k1z_zmmm512_imm8,
		Len:      8,
		Kinds:    []OpKind{reg, mem, imm},
		Regs:     []register.Register{register.ZMM2, none, none},
		Mem:      &memory{register.DS, register.RAX, none, 1, 64, 1, memsize.Packed512_Int16, false},
		Imm8:     0xa5,
		Encoding: EncodingEVEX,
		VecLen:   512,
	}},
	{64, "62 F16D28 73 D9 04", fields{
		Code:     code.EVEX_Vpsrldq_ymm_ymmm256_imm8,
		Len:      7,
		Kinds:    []OpKind{reg, reg, imm},
		Regs:     []register.Register{register.YMM2, register.YMM1, none},
		Imm8:     4,
		Encoding: EncodingEVEX,
		VecLen:   256,
	}},
	{64, "62 F16D0B 76 CB", fields{
		Code:     code.EVEX_Vpcmpeqd_kr_k1_xmm_xmmm128b32,
		Len:      6,
		Kinds:    []OpKind{reg, reg, reg},
		Regs:     []register.Register{register.K1, register.XMM2, register.XMM3},
		Mask:     register.K3,
		Encoding: EncodingEVEX,
		VecLen:   128,
	}},
	{64, "62 F17C38 79 C1", fields{
		Code:     code.EVEX_Vcvtps2udq_zmm_k1z_zmmm512b32_er,
		Len:      6,
		Kinds:    []OpKind{reg, reg},
		Regs:     []register.Register{register.ZMM0, register.ZMM1},
		Rounding: RoundDown,
		Encoding: EncodingEVEX,
		VecLen:   512,
	}},
	{64, "62 F17C18 78 C1", fields{
		Code:     code.EVEX_Vcvttps2udq_zmm_k1z_zmmm512b32_sae,
		Len:      6,
		Kinds:    []OpKind{reg, reg},
		Regs:     []register.Register{register.ZMM0, register.ZMM1},
		SAE:      true,
		Encoding: EncodingEVEX,
		VecLen:   512,
	}},
	{64, "62 F17D18 79 40 01", fields{
		Code:     code.EVEX_Vcvtps2uqq_xmm_k1z_xmmm64b32,
		Len:      7,
		Kinds:    []OpKind{reg, mem},
		Regs:     []register.Register{register.XMM0, none},
		Mem:      &memory{register.DS, register.RAX, none, 1, 4, 1, memsize.Broadcast64_Float32, true},
		Encoding: EncodingEVEX,
		VecLen:   128,
	}},
	{64, "62 F17D28 79 40 01", fields{
		Code:     code.EVEX_Vcvtps2uqq_ymm_k1z_xmmm128b32,
		Len:      7,
		Kinds:    []OpKind{reg, mem},
		Regs:     []register.Register{register.YMM0, none},
		Mem:      &memory{register.DS, register.RAX, none, 1, 16, 1, memsize.Packed128_Float32, false},
		Encoding: EncodingEVEX,
		VecLen:   256,
	}},

	// EVEX 0F3A
	{16, "62 F3CD0B 70 50 01 A5", fields{
		Code:     code.EVEX_Vpshldw_xmm_k1z_xmm_xmmm128_imm8,
		Len:      8,
		Kinds:    []OpKind{reg, reg, mem, imm},
		Regs:     []register.Register{register.XMM2, register.XMM6, none, none},
		Mem:      &memory{register.DS, register.BX, register.SI, 1, 16, 1, memsize.Packed128_UInt16, false},
		Imm8:     0xa5,
		Mask:     register.K3,
		Encoding: EncodingEVEX,
		VecLen:   128,
	}},
	{16, "62 F3CD8B 70 D3 A5", fields{
		Code:     code.EVEX_Vpshldw_xmm_k1z_xmm_xmmm128_imm8,
		Len:      7,
		Kinds:    []OpKind{reg, reg, reg, imm},
		Regs:     []register.Register{register.XMM2, register.XMM6, register.XMM3, none},
		Imm8:     0xa5,
		Mask:     register.K3,
		Zeroing:  true,
		Encoding: EncodingEVEX,
		VecLen:   128,
	}},
	{64, "62 13CD23 70 D3 A5", fields{
		Code:     code.EVEX_Vpshldw_ymm_k1z_ymm_ymmm256_imm8,
		Len:      7,
		Kinds:    []OpKind{reg, reg, reg, imm},
		Regs:     []register.Register{register.YMM10, register.YMM22, register.YMM27, none},
		Imm8:     0xa5,
		Mask:     register.K3,
		Encoding: EncodingEVEX,
		VecLen:   256,
	}},
	{64, "62 E38DAB 70 D3 A5", fields{
		Code:     code.EVEX_Vpshldw_ymm_k1z_ymm_ymmm256_imm8,
		Len:      7,
		Kinds:    []OpKind{reg, reg, reg, imm},
		Regs:     []register.Register{register.YMM18, register.YMM14, register.YMM3, none},
		Imm8:     0xa5,
		Mask:     register.K3,
		Zeroing:  true,
		Encoding: EncodingEVEX,
		VecLen:   256,
	}},
	{64, "62 B3CD2B 70 D3 A5", fields{
		Code:     code.EVEX_Vpshldw_ymm_k1z_ymm_ymmm256_imm8,
		Len:      7,
		Kinds:    []OpKind{reg, reg, reg, imm},
		Regs:     []register.Register{register.YMM2, register.YMM6, register.YMM19, none},
		Imm8:     0xa5,
		Mask:     register.K3,
		Encoding: EncodingEVEX,
		VecLen:   256,
	}},
	{64, "62 F3CD9D 71 50 01 A5", fields{
		Code:     code.EVEX_Vpshldq_xmm_k1z_xmm_xmmm128b64_imm8,
		Len:      8,
		Kinds:    []OpKind{reg, reg, mem, imm},
		Regs:     []register.Register{register.XMM2, register.XMM6, none, none},
		Mem:      &memory{register.DS, register.RAX, none, 1, 8, 1, memsize.Broadcast128_UInt64, true},
		Imm8:     0xa5,
		Mask:     register.K5,
		Zeroing:  true,
		Encoding: EncodingEVEX,
		VecLen:   128,
	}},
	{64, "62 F34DBD 71 50 01 A5", fields{
		Code:     code.EVEX_Vpshldd_ymm_k1z_ymm_ymmm256b32_imm8,
		Len:      8,
		Kinds:    []OpKind{reg, reg, mem, imm},
		Regs:     []register.Register{register.YMM2, register.YMM6, none, none},
		Mem:      &memory{register.DS, register.RAX, none, 1, 4, 1, memsize.Broadcast256_UInt32, true},
		Imm8:     0xa5,
		Mask:     register.K5,
		Zeroing:  true,
		Encoding: EncodingEVEX,
		VecLen:   256,
	}},

	// General-purpose forms
	{64, "64 26 01 18", fields{
		Code:  code.Add_rm32_r32,
		Len:   4,
		Kinds: []OpKind{mem, reg},
		Regs:  []register.Register{none, register.EBX},
		Mem:   &memory{register.FS, register.RAX, none, 1, 0, 0, memsize.UInt32, false},
	}},
	{32, "64 26 01 18", fields{
		Code:  code.Add_rm32_r32,
		Len:   4,
		Kinds: []OpKind{mem, reg},
		Regs:  []register.Register{none, register.EBX},
		Mem:   &memory{register.ES, register.EAX, none, 1, 0, 0, memsize.UInt32, false},
	}},
	{64, "66 48 01 CE", fields{
		Code:  code.Add_rm64_r64,
		Len:   4,
		Kinds: []OpKind{reg, reg},
		Regs:  []register.Register{register.RSI, register.RCX},
	}},
	{64, "4F 4C 01 C5", fields{
		Code:  code.Add_rm64_r64,
		Len:   4,
		Kinds: []OpKind{reg, reg},
		Regs:  []register.Register{register.RBP, register.R8},
	}},
	{64, "48 66 01 CE", fields{
		Code:  code.Add_rm16_r16,
		Len:   4,
		Kinds: []OpKind{reg, reg},
		Regs:  []register.Register{register.SI, register.CX},
	}},
	{64, "48 67 01 18", fields{
		Code:  code.Add_rm32_r32,
		Len:   4,
		Kinds: []OpKind{mem, reg},
		Regs:  []register.Register{none, register.EBX},
		Mem:   &memory{register.DS, register.EAX, none, 1, 0, 0, memsize.UInt32, false},
	}},
	{64, "F0 4B 01 44 E5 80", fields{
		Code:  code.Add_rm64_r64,
		Len:   6,
		Kinds: []OpKind{mem, reg},
		Regs:  []register.Register{none, register.RAX},
		Mem:   &memory{register.DS, register.R13, register.R12, 8, 0xffffff80, 1, memsize.UInt64, false},
		Lock:  true,
	}},
	{16, "03 46 FE", fields{
		Code:  code.Add_r16_rm16,
		Len:   3,
		Kinds: []OpKind{reg, mem},
		Regs:  []register.Register{register.AX, none},
		Mem:   &memory{register.SS, register.BP, none, 1, 0xfffe, 1, memsize.UInt16, false},
	}},
	{16, "66 67 03 04 24", fields{
		Code:  code.Add_r32_rm32,
		Len:   5,
		Kinds: []OpKind{reg, mem},
		Regs:  []register.Register{register.EAX, none},
		Mem:   &memory{register.SS, register.ESP, none, 1, 0, 0, memsize.UInt32, false},
	}},

	// Legacy forms of the VEX and EVEX escapes
	{16, "C4 08", fields{
		Code:  code.Les_r16_m1616,
		Len:   2,
		Kinds: []OpKind{reg, mem},
		Regs:  []register.Register{register.CX, none},
		Mem:   &memory{register.DS, register.BX, register.SI, 1, 0, 0, memsize.SegPtr16, false},
	}},
	{32, "C5 08", fields{
		Code:  code.Lds_r32_m1632,
		Len:   2,
		Kinds: []OpKind{reg, mem},
		Regs:  []register.Register{register.ECX, none},
		Mem:   &memory{register.DS, register.EAX, none, 1, 0, 0, memsize.SegPtr32, false},
	}},
	{32, "62 08", fields{
		Code:  code.Bound_r32_m3232,
		Len:   2,
		Kinds: []OpKind{reg, mem},
		Regs:  []register.Register{register.ECX, none},
		Mem:   &memory{register.DS, register.EAX, none, 1, 0, 0, memsize.Bound32_DwordDword, false},
	}},

	// Branches
	{16, "70 5A", fields{Code: code.Jo_rel8_16, Len: 2, Kinds: []OpKind{OpKindNearBranch16}, Regs: []register.Register{none}, Target: 0x5c}},
	{32, "70 5A", fields{Code: code.Jo_rel8_32, Len: 2, Kinds: []OpKind{OpKindNearBranch32}, Regs: []register.Register{none}, Target: 0x5c}},
	{32, "66 70 5A", fields{Code: code.Jo_rel8_16, Len: 3, Kinds: []OpKind{OpKindNearBranch16}, Regs: []register.Register{none}, Target: 0x5d}},
	{64, "66 70 5A", fields{Code: code.Jo_rel8_64, Len: 3, Kinds: []OpKind{OpKindNearBranch64}, Regs: []register.Register{none}, Target: 0x5d}},
	{64, "4F 70 5A", fields{Code: code.Jo_rel8_64, Len: 3, Kinds: []OpKind{OpKindNearBranch64}, Regs: []register.Register{none}, Target: 0x5d}},
	{64, "77 FE", fields{Code: code.Ja_rel8_64, Len: 2, Kinds: []OpKind{OpKindNearBranch64}, Regs: []register.Register{none}, Target: 0}},
	{32, "74 80", fields{Code: code.Je_rel8_32, Len: 2, Kinds: []OpKind{OpKindNearBranch32}, Regs: []register.Register{none}, Target: 0xffffff82}},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		data := parseHex(t, test.hex)

		insn, err := Decode(data, test.bitness, 0)
		if err != nil {
			t.Errorf("%d-bit %s: %v", test.bitness, test.hex, err)
			continue
		}

		if diff := cmp.Diff(test.want, summarize(insn)); diff != "" {
			t.Errorf("%d-bit %s: (-want +got)\n%s", test.bitness, test.hex, diff)
		}

		if insn.IP() != 0 || insn.NextIP() != uint64(len(data)) {
			t.Errorf("%d-bit %s: IP %#x, NextIP %#x", test.bitness, test.hex, insn.IP(), insn.NextIP())
		}
	}
}

func TestDecodeOffset(t *testing.T) {
	data := parseHex(t, "90 90 62 F17D8B 70 50 01 A5")

	insn, err := Decode(data, 64, 2)
	if err != nil {
		t.Fatal(err)
	}
	if insn.Code() != code.EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8 || insn.IP() != 2 || insn.NextIP() != 10 {
		t.Errorf("%s at %#x", insn.Code(), insn.IP())
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	for _, test := range decodeTests {
		data := append(parseHex(t, test.hex), 0x0f, 0x0f, 0x0f, 0x0f)

		insn, err := Decode(data, test.bitness, 0)
		if err != nil {
			t.Errorf("%d-bit %s: %v", test.bitness, test.hex, err)
			continue
		}
		if insn.Len() != test.want.Len {
			t.Errorf("%d-bit %s: length %d", test.bitness, test.hex, insn.Len())
		}
	}
}

var errorTests = []struct {
	bitness int
	hex     string
	err     error
}{
	{64, "", ErrUnexpectedEOF},
	{32, "0F", ErrUnexpectedEOF},
	{64, "66 0F70 08", ErrUnexpectedEOF},
	{64, "62 F17D8B 70 50", ErrUnexpectedEOF},
	{32, "C5", ErrUnexpectedEOF},
	{64, "26262626262626262626262626 0F77", nil},
	{64, "2626262626262626262626262626 0F77", ErrInstructionTooLong},
	{64, "F3F3F3F3F3F3F3F3F3F3F3F3F3F3F3F3F3F3", ErrInstructionTooLong},

	{64, "0F0B", ErrUnknownOpcode},
	{64, "0F3800", ErrUnknownOpcode},
	{64, "F3 0F71 D0 01", ErrUnknownOpcode},
	{64, "0F71 D8 01", ErrUnknownOpcode},
	{64, "F0 0F70 08 01", ErrUnknownOpcode},
	{64, "C5F9 78 C0", ErrUnknownOpcode},
	{64, "62 F1FD08 70 C0 01", ErrUnknownOpcode},
	{64, "62 F37D08 70 C0 01", ErrUnknownOpcode},

	{64, "0F71 10 01", ErrInvalidModRM},
	{64, "C5F1 72 10 01", ErrInvalidModRM},
	{32, "F0 01 C8", ErrInvalidModRM},

	{64, "48 C5F8 77", ErrInvalidVexEvexEncoding},
	{64, "66 C5F8 77", ErrInvalidVexEvexEncoding},
	{64, "F3 62 F17D08 70 C0 01", ErrInvalidVexEvexEncoding},
	{64, "C5F0 77", ErrInvalidVexEvexEncoding},
	{64, "C5F1 70 C0 01", ErrInvalidVexEvexEncoding},
	{64, "C4E0F8 77", ErrInvalidVexEvexEncoding},
	{64, "62 F57D08 70 C0 01", ErrInvalidVexEvexEncoding},
	{64, "62 F17908 70 C0 01", ErrInvalidVexEvexEncoding},
	{64, "62 F17D88 70 50 01 A5", ErrInvalidVexEvexEncoding},
	{64, "62 F17D6B 70 50 01 A5", ErrInvalidVexEvexEncoding},
	{64, "62 F17D1B 70 D0 A5", ErrInvalidVexEvexEncoding},
	{64, "62 F17E18 70 50 01 A5", ErrInvalidVexEvexEncoding},
	{64, "62 F16D0B 73 D9 04", ErrInvalidVexEvexEncoding},
	{64, "62 F16D8B 76 CB", ErrInvalidVexEvexEncoding},
	{64, "62 716D0B 76 CB", ErrInvalidVexEvexEncoding},
	{64, "62 F1750B 70 C0 01", ErrInvalidVexEvexEncoding},
	{64, "62 F17D00 70 C0 01", ErrInvalidVexEvexEncoding},
	{64, "62 F07D08 70 C0 01", ErrInvalidVexEvexEncoding},
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range errorTests {
		_, err := Decode(parseHex(t, test.hex), test.bitness, 0)

		if test.err == nil {
			if err != nil {
				t.Errorf("%d-bit %s: %v", test.bitness, test.hex, err)
			}
			continue
		}

		if !xerrors.Is(err, test.err) {
			t.Errorf("%d-bit %s: error %v; expected %v", test.bitness, test.hex, err, test.err)
			continue
		}

		var e DecodeError
		if !xerrors.As(err, &e) {
			t.Errorf("%d-bit %s: %v is not a decode error", test.bitness, test.hex, err)
		}
	}
}

func TestDecodeEOF(t *testing.T) {
	_, err := Decode(parseHex(t, "66 0F70"), 32, 0)
	if !xerrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error(err)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	data := parseHex(t, "0F77")

	for _, bitness := range []int{0, 8, 63, 128} {
		_, err := Decode(data, bitness, 0)
		if !xerrors.Is(err, ErrInvalidBitness) {
			t.Errorf("bitness %d: %v", bitness, err)
		}
		if err != nil && strings.Contains(err.Error(), "%!") {
			t.Errorf("bitness %d: %q", bitness, err.Error())
		}

		if _, err := NewDecoder(Config{Bitness: bitness}, data); !xerrors.Is(err, ErrInvalidBitness) {
			t.Errorf("NewDecoder bitness %d: %v", bitness, err)
		}
	}

	if _, err := Decode(data, 8, 0); err == nil || err.Error() != "bitness 8: x86dec: bitness must be 16, 32 or 64" {
		t.Errorf("bitness 8: %v", err)
	}

	for _, offset := range []int{-1, 3} {
		_, err := Decode(data, 64, offset)
		if !xerrors.Is(err, ErrInvalidOffset) {
			t.Errorf("offset %d: %v", offset, err)
		}
		if err != nil && strings.Contains(err.Error(), "%!") {
			t.Errorf("offset %d: %q", offset, err.Error())
		}

		var e DecodeError
		if xerrors.As(err, &e) {
			t.Errorf("offset %d: %v is a decode error", offset, err)
		}
	}

	if _, err := Decode(data, 64, 2); !xerrors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("offset 2: %v", err)
	}
}

func TestDecodeConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for _, test := range decodeTests {
				insn, err := Decode(parseHex(t, test.hex), test.bitness, 0)
				if err != nil {
					t.Error(err)
					return
				}
				if insn.Code() != test.want.Code {
					t.Errorf("%s: %s", test.hex, insn.Code())
				}
			}
		}()
	}

	wg.Wait()
}

var stringTests = []struct {
	bitness int
	hex     string
	text    string
}{
	{16, "66 0F70 08 A5", "pshufd xmm1, [bx+si], 0xa5"},
	{64, "0F77", "emms"},
	{64, "62 F17D8B 70 50 01 A5", "vpshufd xmm2{k3}{z}, [rax+0x10], 0xa5"},
	{64, "62 F17D1D 70 50 01 A5", "vpshufd xmm2{k5}, [rax+0x4]{1to4}, 0xa5"},
	{64, "62 F17C38 79 C1", "vcvtps2udq zmm0, zmm1, {rd-sae}"},
	{64, "62 F17C18 78 C1", "vcvttps2udq zmm0, zmm1, {sae}"},
	{64, "64 26 01 18", "add fs:[rax], ebx"},
	{64, "0F75 05 78563412", "pcmpeqw mm0, [rip+0x12345678]"},
	{64, "F0 4B 01 44 E5 80", "add [r13+r12*8+0xffffff80], rax"},
	{64, "67 0F74 04 25 00100000", "pcmpeqb mm0, [0x1000]"},
	{32, "70 5A", "jo 0x5c"},
}

func TestString(t *testing.T) {
	for _, test := range stringTests {
		insn, err := Decode(parseHex(t, test.hex), test.bitness, 0)
		if err != nil {
			t.Errorf("%s: %v", test.hex, err)
			continue
		}

		if s := insn.String(); s != test.text {
			t.Errorf("%s: %q", test.hex, s)
		}
	}

	if s := (Instruction{}).String(); s != "(bad)" {
		t.Error(s)
	}
}
