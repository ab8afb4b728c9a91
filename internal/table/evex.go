// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"github.com/tsavola/x86dec/code"
	"github.com/tsavola/x86dec/memsize"
)

const masked = Masked | Zeroing

type sizes [3]memsize.MemorySize

var (
	noSizes = sizes{}

	int8s    = sizes{memsize.Packed128_Int8, memsize.Packed256_Int8, memsize.Packed512_Int8}
	int16s   = sizes{memsize.Packed128_Int16, memsize.Packed256_Int16, memsize.Packed512_Int16}
	uint16s  = sizes{memsize.Packed128_UInt16, memsize.Packed256_UInt16, memsize.Packed512_UInt16}
	int32s   = sizes{memsize.Packed128_Int32, memsize.Packed256_Int32, memsize.Packed512_Int32}
	uint32s  = sizes{memsize.Packed128_UInt32, memsize.Packed256_UInt32, memsize.Packed512_UInt32}
	int64s   = sizes{memsize.Packed128_Int64, memsize.Packed256_Int64, memsize.Packed512_Int64}
	uint64s  = sizes{memsize.Packed128_UInt64, memsize.Packed256_UInt64, memsize.Packed512_UInt64}
	uint128s = sizes{memsize.UInt128, memsize.Packed256_UInt128, memsize.Packed512_UInt128}
	float32s = sizes{memsize.Packed128_Float32, memsize.Packed256_Float32, memsize.Packed512_Float32}
	float64s = sizes{memsize.Packed128_Float64, memsize.Packed256_Float64, memsize.Packed512_Float64}

	halfFloat32s = sizes{memsize.Packed64_Float32, memsize.Packed128_Float32, memsize.Packed256_Float32}

	bcstInt32s   = sizes{memsize.Broadcast128_Int32, memsize.Broadcast256_Int32, memsize.Broadcast512_Int32}
	bcstUInt32s  = sizes{memsize.Broadcast128_UInt32, memsize.Broadcast256_UInt32, memsize.Broadcast512_UInt32}
	bcstInt64s   = sizes{memsize.Broadcast128_Int64, memsize.Broadcast256_Int64, memsize.Broadcast512_Int64}
	bcstUInt64s  = sizes{memsize.Broadcast128_UInt64, memsize.Broadcast256_UInt64, memsize.Broadcast512_UInt64}
	bcstFloat32s = sizes{memsize.Broadcast128_Float32, memsize.Broadcast256_Float32, memsize.Broadcast512_Float32}
	bcstFloat64s = sizes{memsize.Broadcast128_Float64, memsize.Broadcast256_Float64, memsize.Broadcast512_Float64}

	halfBcstFloat32s = sizes{memsize.Broadcast64_Float32, memsize.Broadcast128_Float32, memsize.Broadcast256_Float32}
)

var (
	vecReg  = [3]Operand{RegXMM, RegYMM, RegZMM}
	vecRm   = [3]Operand{RmXMM, RmYMM, RmZMM}
	vecVvvv = [3]Operand{VvvvXMM, VvvvYMM, VvvvZMM}
)

// form lists the operands of the vector length l (0, 1 or 2).
type form func(l int) []Operand

func vRmIb(l int) []Operand  { return []Operand{vecReg[l], vecRm[l], Imm8} }
func hRmIb(l int) []Operand  { return []Operand{vecVvvv[l], vecRm[l], Imm8} }
func kHRm(l int) []Operand   { return []Operand{RegK, vecVvvv[l], vecRm[l]} }
func vHRmIb(l int) []Operand { return []Operand{vecReg[l], vecVvvv[l], vecRm[l], Imm8} }

// lengths builds the 128-bit, 256-bit and 512-bit forms of an instruction.
// The tuple argument is the 128-bit tuple type.
func lengths(codes [3]code.Code, tuple Tuple, mem, bcst sizes, flags Flags, f form) Node {
	n := Node{Kind: ByL, Sub: make([]Node, 3)}
	for l := range n.Sub {
		n.Sub[l] = evex(codes[l], tuple+Tuple(l), mem[l], bcst[l], flags, f(l)...)
	}
	return n
}

var evex0F = [256]Entry{
	0x70: entry(prefix(
		invalid,
		w(lengths([3]code.Code{
			code.EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8,
			code.EVEX_Vpshufd_ymm_k1z_ymmm256b32_imm8,
			code.EVEX_Vpshufd_zmm_k1z_zmmm512b32_imm8,
		}, Full128, int32s, bcstInt32s, masked, vRmIb), invalid),
		lengths([3]code.Code{
			code.EVEX_Vpshufhw_xmm_k1z_xmmm128_imm8,
			code.EVEX_Vpshufhw_ymm_k1z_ymmm256_imm8,
			code.EVEX_Vpshufhw_zmm_k1z_zmmm512_imm8,
		}, FullMem128, int16s, noSizes, masked, vRmIb),
		lengths([3]code.Code{
			code.EVEX_Vpshuflw_xmm_k1z_xmmm128_imm8,
			code.EVEX_Vpshuflw_ymm_k1z_ymmm256_imm8,
			code.EVEX_Vpshuflw_zmm_k1z_zmmm512_imm8,
		}, FullMem128, int16s, noSizes, masked, vRmIb),
	)),

	0x71: entry(only66(group(map[uint8]Node{
		2: lengths([3]code.Code{
			code.EVEX_Vpsrlw_xmm_k1z_xmmm128_imm8,
			code.EVEX_Vpsrlw_ymm_k1z_ymmm256_imm8,
			code.EVEX_Vpsrlw_zmm_k1z_zmmm512_imm8,
		}, FullMem128, uint16s, noSizes, masked, hRmIb),
		4: lengths([3]code.Code{
			code.EVEX_Vpsraw_xmm_k1z_xmmm128_imm8,
			code.EVEX_Vpsraw_ymm_k1z_ymmm256_imm8,
			code.EVEX_Vpsraw_zmm_k1z_zmmm512_imm8,
		}, FullMem128, int16s, noSizes, masked, hRmIb),
		6: lengths([3]code.Code{
			code.EVEX_Vpsllw_xmm_k1z_xmmm128_imm8,
			code.EVEX_Vpsllw_ymm_k1z_ymmm256_imm8,
			code.EVEX_Vpsllw_zmm_k1z_zmmm512_imm8,
		}, FullMem128, uint16s, noSizes, masked, hRmIb),
	}))),

	0x72: entry(only66(group(map[uint8]Node{
		0: w(
			lengths([3]code.Code{
				code.EVEX_Vprord_xmm_k1z_xmmm128b32_imm8,
				code.EVEX_Vprord_ymm_k1z_ymmm256b32_imm8,
				code.EVEX_Vprord_zmm_k1z_zmmm512b32_imm8,
			}, Full128, uint32s, bcstUInt32s, masked, hRmIb),
			lengths([3]code.Code{
				code.EVEX_Vprorq_xmm_k1z_xmmm128b64_imm8,
				code.EVEX_Vprorq_ymm_k1z_ymmm256b64_imm8,
				code.EVEX_Vprorq_zmm_k1z_zmmm512b64_imm8,
			}, Full128, uint64s, bcstUInt64s, masked, hRmIb),
		),
		1: w(
			lengths([3]code.Code{
				code.EVEX_Vprold_xmm_k1z_xmmm128b32_imm8,
				code.EVEX_Vprold_ymm_k1z_ymmm256b32_imm8,
				code.EVEX_Vprold_zmm_k1z_zmmm512b32_imm8,
			}, Full128, uint32s, bcstUInt32s, masked, hRmIb),
			lengths([3]code.Code{
				code.EVEX_Vprolq_xmm_k1z_xmmm128b64_imm8,
				code.EVEX_Vprolq_ymm_k1z_ymmm256b64_imm8,
				code.EVEX_Vprolq_zmm_k1z_zmmm512b64_imm8,
			}, Full128, uint64s, bcstUInt64s, masked, hRmIb),
		),
		2: w(
			lengths([3]code.Code{
				code.EVEX_Vpsrld_xmm_k1z_xmmm128b32_imm8,
				code.EVEX_Vpsrld_ymm_k1z_ymmm256b32_imm8,
				code.EVEX_Vpsrld_zmm_k1z_zmmm512b32_imm8,
			}, Full128, uint32s, bcstUInt32s, masked, hRmIb),
			invalid,
		),
		4: w(
			lengths([3]code.Code{
				code.EVEX_Vpsrad_xmm_k1z_xmmm128b32_imm8,
				code.EVEX_Vpsrad_ymm_k1z_ymmm256b32_imm8,
				code.EVEX_Vpsrad_zmm_k1z_zmmm512b32_imm8,
			}, Full128, int32s, bcstInt32s, masked, hRmIb),
			lengths([3]code.Code{
				code.EVEX_Vpsraq_xmm_k1z_xmmm128b64_imm8,
				code.EVEX_Vpsraq_ymm_k1z_ymmm256b64_imm8,
				code.EVEX_Vpsraq_zmm_k1z_zmmm512b64_imm8,
			}, Full128, int64s, bcstInt64s, masked, hRmIb),
		),
		6: w(
			lengths([3]code.Code{
				code.EVEX_Vpslld_xmm_k1z_xmmm128b32_imm8,
				code.EVEX_Vpslld_ymm_k1z_ymmm256b32_imm8,
				code.EVEX_Vpslld_zmm_k1z_zmmm512b32_imm8,
			}, Full128, uint32s, bcstUInt32s, masked, hRmIb),
			invalid,
		),
	}))),

	0x73: entry(only66(group(map[uint8]Node{
		2: w(invalid, lengths([3]code.Code{
			code.EVEX_Vpsrlq_xmm_k1z_xmmm128b64_imm8,
			code.EVEX_Vpsrlq_ymm_k1z_ymmm256b64_imm8,
			code.EVEX_Vpsrlq_zmm_k1z_zmmm512b64_imm8,
		}, Full128, uint64s, bcstUInt64s, masked, hRmIb)),
		3: lengths([3]code.Code{
			code.EVEX_Vpsrldq_xmm_xmmm128_imm8,
			code.EVEX_Vpsrldq_ymm_ymmm256_imm8,
			code.EVEX_Vpsrldq_zmm_zmmm512_imm8,
		}, FullMem128, uint128s, noSizes, 0, hRmIb),
		6: w(invalid, lengths([3]code.Code{
			code.EVEX_Vpsllq_xmm_k1z_xmmm128b64_imm8,
			code.EVEX_Vpsllq_ymm_k1z_ymmm256b64_imm8,
			code.EVEX_Vpsllq_zmm_k1z_zmmm512b64_imm8,
		}, Full128, uint64s, bcstUInt64s, masked, hRmIb)),
		7: lengths([3]code.Code{
			code.EVEX_Vpslldq_xmm_xmmm128_imm8,
			code.EVEX_Vpslldq_ymm_ymmm256_imm8,
			code.EVEX_Vpslldq_zmm_zmmm512_imm8,
		}, FullMem128, uint128s, noSizes, 0, hRmIb),
	}))),

	0x74: entry(only66(lengths([3]code.Code{
		code.EVEX_Vpcmpeqb_kr_k1_xmm_xmmm128,
		code.EVEX_Vpcmpeqb_kr_k1_ymm_ymmm256,
		code.EVEX_Vpcmpeqb_kr_k1_zmm_zmmm512,
	}, FullMem128, int8s, noSizes, Masked, kHRm))),
	0x75: entry(only66(lengths([3]code.Code{
		code.EVEX_Vpcmpeqw_kr_k1_xmm_xmmm128,
		code.EVEX_Vpcmpeqw_kr_k1_ymm_ymmm256,
		code.EVEX_Vpcmpeqw_kr_k1_zmm_zmmm512,
	}, FullMem128, int16s, noSizes, Masked, kHRm))),
	0x76: entry(only66(w(lengths([3]code.Code{
		code.EVEX_Vpcmpeqd_kr_k1_xmm_xmmm128b32,
		code.EVEX_Vpcmpeqd_kr_k1_ymm_ymmm256b32,
		code.EVEX_Vpcmpeqd_kr_k1_zmm_zmmm512b32,
	}, Full128, int32s, bcstInt32s, Masked, kHRm), invalid))),

	0x78: entry(convert(SAE, [4][3]code.Code{
		{
			code.EVEX_Vcvttps2udq_xmm_k1z_xmmm128b32,
			code.EVEX_Vcvttps2udq_ymm_k1z_ymmm256b32,
			code.EVEX_Vcvttps2udq_zmm_k1z_zmmm512b32_sae,
		}, {
			code.EVEX_Vcvttpd2udq_xmm_k1z_xmmm128b64,
			code.EVEX_Vcvttpd2udq_xmm_k1z_ymmm256b64,
			code.EVEX_Vcvttpd2udq_ymm_k1z_zmmm512b64_sae,
		}, {
			code.EVEX_Vcvttps2uqq_xmm_k1z_xmmm64b32,
			code.EVEX_Vcvttps2uqq_ymm_k1z_xmmm128b32,
			code.EVEX_Vcvttps2uqq_zmm_k1z_ymmm256b32_sae,
		}, {
			code.EVEX_Vcvttpd2uqq_xmm_k1z_xmmm128b64,
			code.EVEX_Vcvttpd2uqq_ymm_k1z_ymmm256b64,
			code.EVEX_Vcvttpd2uqq_zmm_k1z_zmmm512b64_sae,
		},
	})),
	0x79: entry(convert(ER, [4][3]code.Code{
		{
			code.EVEX_Vcvtps2udq_xmm_k1z_xmmm128b32,
			code.EVEX_Vcvtps2udq_ymm_k1z_ymmm256b32,
			code.EVEX_Vcvtps2udq_zmm_k1z_zmmm512b32_er,
		}, {
			code.EVEX_Vcvtpd2udq_xmm_k1z_xmmm128b64,
			code.EVEX_Vcvtpd2udq_xmm_k1z_ymmm256b64,
			code.EVEX_Vcvtpd2udq_ymm_k1z_zmmm512b64_er,
		}, {
			code.EVEX_Vcvtps2uqq_xmm_k1z_xmmm64b32,
			code.EVEX_Vcvtps2uqq_ymm_k1z_xmmm128b32,
			code.EVEX_Vcvtps2uqq_zmm_k1z_ymmm256b32_er,
		}, {
			code.EVEX_Vcvtpd2uqq_xmm_k1z_xmmm128b64,
			code.EVEX_Vcvtpd2uqq_ymm_k1z_ymmm256b64,
			code.EVEX_Vcvtpd2uqq_zmm_k1z_zmmm512b64_er,
		},
	})),
}

// convert builds the NP and 66 forms of 0F78 or 0F79.  The codes are
// ps2udq, pd2udq, ps2uqq and pd2uqq.  The 512-bit forms accept rounding
// control or exception suppression.
func convert(rounding Flags, codes [4][3]code.Code) Node {
	cvt := func(codes [3]code.Code, tuple Tuple, mem, bcst sizes, dst, src [3]Operand) Node {
		n := Node{Kind: ByL, Sub: make([]Node, 3)}
		for l := range n.Sub {
			flags := masked
			if l == 2 {
				flags |= rounding
			}
			n.Sub[l] = evex(codes[l], tuple+Tuple(l), mem[l], bcst[l], flags, dst[l], src[l])
		}
		return n
	}

	return prefix(
		w(
			cvt(codes[0], Full128, float32s, bcstFloat32s, vecReg, vecRm),
			cvt(codes[1], Full128, float64s, bcstFloat64s, [3]Operand{RegXMM, RegXMM, RegYMM}, vecRm),
		),
		w(
			cvt(codes[2], Half128, halfFloat32s, halfBcstFloat32s, vecReg, [3]Operand{RmXMM, RmXMM, RmYMM}),
			cvt(codes[3], Full128, float64s, bcstFloat64s, vecReg, vecRm),
		),
		invalid,
		invalid,
	)
}

var evex0F3A = [256]Entry{
	0x70: entry(only66(w(invalid, lengths([3]code.Code{
		code.EVEX_Vpshldw_xmm_k1z_xmm_xmmm128_imm8,
		code.EVEX_Vpshldw_ymm_k1z_ymm_ymmm256_imm8,
		code.EVEX_Vpshldw_zmm_k1z_zmm_zmmm512_imm8,
	}, FullMem128, uint16s, noSizes, masked, vHRmIb)))),
	0x71: entry(only66(w(
		lengths([3]code.Code{
			code.EVEX_Vpshldd_xmm_k1z_xmm_xmmm128b32_imm8,
			code.EVEX_Vpshldd_ymm_k1z_ymm_ymmm256b32_imm8,
			code.EVEX_Vpshldd_zmm_k1z_zmm_zmmm512b32_imm8,
		}, Full128, uint32s, bcstUInt32s, masked, vHRmIb),
		lengths([3]code.Code{
			code.EVEX_Vpshldq_xmm_k1z_xmm_xmmm128b64_imm8,
			code.EVEX_Vpshldq_ymm_k1z_ymm_ymmm256b64_imm8,
			code.EVEX_Vpshldq_zmm_k1z_zmm_zmmm512b64_imm8,
		}, Full128, uint64s, bcstUInt64s, masked, vHRmIb),
	))),
	0x72: entry(only66(w(invalid, lengths([3]code.Code{
		code.EVEX_Vpshrdw_xmm_k1z_xmm_xmmm128_imm8,
		code.EVEX_Vpshrdw_ymm_k1z_ymm_ymmm256_imm8,
		code.EVEX_Vpshrdw_zmm_k1z_zmm_zmmm512_imm8,
	}, FullMem128, uint16s, noSizes, masked, vHRmIb)))),
	0x73: entry(only66(w(
		lengths([3]code.Code{
			code.EVEX_Vpshrdd_xmm_k1z_xmm_xmmm128b32_imm8,
			code.EVEX_Vpshrdd_ymm_k1z_ymm_ymmm256b32_imm8,
			code.EVEX_Vpshrdd_zmm_k1z_zmm_zmmm512b32_imm8,
		}, Full128, uint32s, bcstUInt32s, masked, vHRmIb),
		lengths([3]code.Code{
			code.EVEX_Vpshrdq_xmm_k1z_xmm_xmmm128b64_imm8,
			code.EVEX_Vpshrdq_ymm_k1z_ymm_ymmm256b64_imm8,
			code.EVEX_Vpshrdq_zmm_k1z_zmm_zmmm512b64_imm8,
		}, Full128, uint64s, bcstUInt64s, masked, vHRmIb),
	))),
}
