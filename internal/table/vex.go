// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"github.com/tsavola/x86dec/code"
	"github.com/tsavola/x86dec/memsize"
)

var vex0F = [256]Entry{
	0x70: entry(prefix(
		invalid,
		vpshuf(code.VEX_Vpshufd_xmm_xmmm128_imm8, code.VEX_Vpshufd_ymm_ymmm256_imm8, memsize.Packed128_Int32, memsize.Packed256_Int32),
		vpshuf(code.VEX_Vpshufhw_xmm_xmmm128_imm8, code.VEX_Vpshufhw_ymm_ymmm256_imm8, memsize.Packed128_Int16, memsize.Packed256_Int16),
		vpshuf(code.VEX_Vpshuflw_xmm_xmmm128_imm8, code.VEX_Vpshuflw_ymm_ymmm256_imm8, memsize.Packed128_Int16, memsize.Packed256_Int16),
	)),

	0x71: entry(only66(group(map[uint8]Node{
		2: vshift(code.VEX_Vpsrlw_xmm_xmm_imm8, code.VEX_Vpsrlw_ymm_ymm_imm8),
		4: vshift(code.VEX_Vpsraw_xmm_xmm_imm8, code.VEX_Vpsraw_ymm_ymm_imm8),
		6: vshift(code.VEX_Vpsllw_xmm_xmm_imm8, code.VEX_Vpsllw_ymm_ymm_imm8),
	}))),
	0x72: entry(only66(group(map[uint8]Node{
		2: vshift(code.VEX_Vpsrld_xmm_xmm_imm8, code.VEX_Vpsrld_ymm_ymm_imm8),
		4: vshift(code.VEX_Vpsrad_xmm_xmm_imm8, code.VEX_Vpsrad_ymm_ymm_imm8),
		6: vshift(code.VEX_Vpslld_xmm_xmm_imm8, code.VEX_Vpslld_ymm_ymm_imm8),
	}))),
	0x73: entry(only66(group(map[uint8]Node{
		2: vshift(code.VEX_Vpsrlq_xmm_xmm_imm8, code.VEX_Vpsrlq_ymm_ymm_imm8),
		3: vshift(code.VEX_Vpsrldq_xmm_xmm_imm8, code.VEX_Vpsrldq_ymm_ymm_imm8),
		6: vshift(code.VEX_Vpsllq_xmm_xmm_imm8, code.VEX_Vpsllq_ymm_ymm_imm8),
		7: vshift(code.VEX_Vpslldq_xmm_xmm_imm8, code.VEX_Vpslldq_ymm_ymm_imm8),
	}))),

	0x74: entry(only66(vpcmpeq(code.VEX_Vpcmpeqb_xmm_xmm_xmmm128, code.VEX_Vpcmpeqb_ymm_ymm_ymmm256, memsize.Packed128_Int8, memsize.Packed256_Int8))),
	0x75: entry(only66(vpcmpeq(code.VEX_Vpcmpeqw_xmm_xmm_xmmm128, code.VEX_Vpcmpeqw_ymm_ymm_ymmm256, memsize.Packed128_Int16, memsize.Packed256_Int16))),
	0x76: entry(only66(vpcmpeq(code.VEX_Vpcmpeqd_xmm_xmm_xmmm128, code.VEX_Vpcmpeqd_ymm_ymm_ymmm256, memsize.Packed128_Int32, memsize.Packed256_Int32))),

	0x77: noModRM(onlyNP(node(ByL,
		leaf(code.VEX_Vzeroupper, memsize.Unknown, 0),
		leaf(code.VEX_Vzeroall, memsize.Unknown, 0),
	))),
}

func vpshuf(x, y code.Code, mem128, mem256 memsize.MemorySize) Node {
	return node(ByL,
		leaf(x, mem128, 0, RegXMM, RmXMM, Imm8),
		leaf(y, mem256, 0, RegYMM, RmYMM, Imm8),
	)
}

func vshift(x, y code.Code) Node {
	return node(ByL,
		leaf(x, memsize.Unknown, RegOnly, VvvvXMM, RmXMM, Imm8),
		leaf(y, memsize.Unknown, RegOnly, VvvvYMM, RmYMM, Imm8),
	)
}

func vpcmpeq(x, y code.Code, mem128, mem256 memsize.MemorySize) Node {
	return node(ByL,
		leaf(x, mem128, 0, RegXMM, VvvvXMM, RmXMM),
		leaf(y, mem256, 0, RegYMM, VvvvYMM, RmYMM),
	)
}
