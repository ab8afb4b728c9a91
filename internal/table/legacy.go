// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"github.com/tsavola/x86dec/code"
	"github.com/tsavola/x86dec/memsize"
)

var oneByte = [256]Entry{
	0x01: entry(node(ByOpSize,
		leaf(code.Add_rm16_r16, memsize.UInt16, Lockable, RmGPR16, RegGPR16),
		leaf(code.Add_rm32_r32, memsize.UInt32, Lockable, RmGPR32, RegGPR32),
		leaf(code.Add_rm64_r64, memsize.UInt64, Lockable, RmGPR64, RegGPR64),
	)),
	0x03: entry(node(ByOpSize,
		leaf(code.Add_r16_rm16, memsize.UInt16, 0, RegGPR16, RmGPR16),
		leaf(code.Add_r32_rm32, memsize.UInt32, 0, RegGPR32, RmGPR32),
		leaf(code.Add_r64_rm64, memsize.UInt64, 0, RegGPR64, RmGPR64),
	)),

	// C4, C5 and 62 are reached only in 16-bit and 32-bit mode, and only with
	// a memory operand.
	0x62: entry(node(ByOpSize,
		leaf(code.Bound_r16_m1616, memsize.Bound16_WordWord, 0, RegGPR16, Mem),
		leaf(code.Bound_r32_m3232, memsize.Bound32_DwordDword, 0, RegGPR32, Mem),
	)),
	0xc4: entry(node(ByOpSize,
		leaf(code.Les_r16_m1616, memsize.SegPtr16, 0, RegGPR16, Mem),
		leaf(code.Les_r32_m1632, memsize.SegPtr32, 0, RegGPR32, Mem),
	)),
	0xc5: entry(node(ByOpSize,
		leaf(code.Lds_r16_m1616, memsize.SegPtr16, 0, RegGPR16, Mem),
		leaf(code.Lds_r32_m1632, memsize.SegPtr32, 0, RegGPR32, Mem),
	)),

	0x70: jcc(code.Jo_rel8_16, code.Jo_rel8_32, code.Jo_rel8_64),
	0x71: jcc(code.Jno_rel8_16, code.Jno_rel8_32, code.Jno_rel8_64),
	0x72: jcc(code.Jb_rel8_16, code.Jb_rel8_32, code.Jb_rel8_64),
	0x73: jcc(code.Jae_rel8_16, code.Jae_rel8_32, code.Jae_rel8_64),
	0x74: jcc(code.Je_rel8_16, code.Je_rel8_32, code.Je_rel8_64),
	0x75: jcc(code.Jne_rel8_16, code.Jne_rel8_32, code.Jne_rel8_64),
	0x76: jcc(code.Jbe_rel8_16, code.Jbe_rel8_32, code.Jbe_rel8_64),
	0x77: jcc(code.Ja_rel8_16, code.Ja_rel8_32, code.Ja_rel8_64),
}

func jcc(c16, c32, c64 code.Code) Entry {
	return noModRM(node(ByBranch,
		leaf(c16, memsize.Unknown, 0, Br16),
		leaf(c32, memsize.Unknown, 0, Br32),
		leaf(c64, memsize.Unknown, 0, Br64),
	))
}

var legacy0F = [256]Entry{
	0x70: entry(prefix(
		leaf(code.Pshufw_mm_mmm64_imm8, memsize.Packed64_Int16, 0, RegMM, RmMM, Imm8),
		leaf(code.Pshufd_xmm_xmmm128_imm8, memsize.Packed128_Int32, 0, RegXMM, RmXMM, Imm8),
		leaf(code.Pshufhw_xmm_xmmm128_imm8, memsize.Packed128_Int16, 0, RegXMM, RmXMM, Imm8),
		leaf(code.Pshuflw_xmm_xmmm128_imm8, memsize.Packed128_Int16, 0, RegXMM, RmXMM, Imm8),
	)),

	0x71: entry(prefix(
		group(map[uint8]Node{
			2: shiftMM(code.Psrlw_mm_imm8),
			4: shiftMM(code.Psraw_mm_imm8),
			6: shiftMM(code.Psllw_mm_imm8),
		}),
		group(map[uint8]Node{
			2: shiftXMM(code.Psrlw_xmm_imm8),
			4: shiftXMM(code.Psraw_xmm_imm8),
			6: shiftXMM(code.Psllw_xmm_imm8),
		}),
		invalid,
		invalid,
	)),
	0x72: entry(prefix(
		group(map[uint8]Node{
			2: shiftMM(code.Psrld_mm_imm8),
			4: shiftMM(code.Psrad_mm_imm8),
			6: shiftMM(code.Pslld_mm_imm8),
		}),
		group(map[uint8]Node{
			2: shiftXMM(code.Psrld_xmm_imm8),
			4: shiftXMM(code.Psrad_xmm_imm8),
			6: shiftXMM(code.Pslld_xmm_imm8),
		}),
		invalid,
		invalid,
	)),
	0x73: entry(prefix(
		group(map[uint8]Node{
			2: shiftMM(code.Psrlq_mm_imm8),
			6: shiftMM(code.Psllq_mm_imm8),
		}),
		group(map[uint8]Node{
			2: shiftXMM(code.Psrlq_xmm_imm8),
			3: shiftXMM(code.Psrldq_xmm_imm8),
			6: shiftXMM(code.Psllq_xmm_imm8),
			7: shiftXMM(code.Pslldq_xmm_imm8),
		}),
		invalid,
		invalid,
	)),

	0x74: entry(pcmpeq(code.Pcmpeqb_mm_mmm64, code.Pcmpeqb_xmm_xmmm128, memsize.Packed64_Int8, memsize.Packed128_Int8)),
	0x75: entry(pcmpeq(code.Pcmpeqw_mm_mmm64, code.Pcmpeqw_xmm_xmmm128, memsize.Packed64_Int16, memsize.Packed128_Int16)),
	0x76: entry(pcmpeq(code.Pcmpeqd_mm_mmm64, code.Pcmpeqd_xmm_xmmm128, memsize.Packed64_Int32, memsize.Packed128_Int32)),

	0x77: noModRM(onlyNP(leaf(code.Emms, memsize.Unknown, 0))),
}

func shiftMM(c code.Code) Node  { return leaf(c, memsize.Unknown, RegOnly, RmMM, Imm8) }
func shiftXMM(c code.Code) Node { return leaf(c, memsize.Unknown, RegOnly, RmXMM, Imm8) }

func pcmpeq(mm, xmm code.Code, mem64, mem128 memsize.MemorySize) Node {
	return prefix(
		leaf(mm, mem64, 0, RegMM, RmMM),
		leaf(xmm, mem128, 0, RegXMM, RmXMM),
		invalid,
		invalid,
	)
}
