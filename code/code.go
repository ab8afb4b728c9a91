// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package code enumerates decodable instruction forms.  A Code identifies the
// mnemonic together with the operand shape and the encoding space, so that
// e.g. the legacy, VEX and EVEX forms of PSHUFD are distinct values.
package code

import (
	"fmt"
	"strings"
)

type Code uint16

const (
	INVALID = Code(iota)

	Add_rm16_r16                             // o16 01 /r
	Add_rm32_r32                             // o32 01 /r
	Add_rm64_r64                             // REX.W 01 /r
	Add_r16_rm16                             // o16 03 /r
	Add_r32_rm32                             // o32 03 /r
	Add_r64_rm64                             // REX.W 03 /r
	Bound_r16_m1616                          // o16 62 /r
	Bound_r32_m3232                          // o32 62 /r
	Les_r16_m1616                            // o16 C4 /r
	Les_r32_m1632                            // o32 C4 /r
	Lds_r16_m1616                            // o16 C5 /r
	Lds_r32_m1632                            // o32 C5 /r
	Jo_rel8_16                               // o16 70 cb
	Jo_rel8_32                               // o32 70 cb
	Jo_rel8_64                               // 70 cb
	Jno_rel8_16                              // o16 71 cb
	Jno_rel8_32                              // o32 71 cb
	Jno_rel8_64                              // 71 cb
	Jb_rel8_16                               // o16 72 cb
	Jb_rel8_32                               // o32 72 cb
	Jb_rel8_64                               // 72 cb
	Jae_rel8_16                              // o16 73 cb
	Jae_rel8_32                              // o32 73 cb
	Jae_rel8_64                              // 73 cb
	Je_rel8_16                               // o16 74 cb
	Je_rel8_32                               // o32 74 cb
	Je_rel8_64                               // 74 cb
	Jne_rel8_16                              // o16 75 cb
	Jne_rel8_32                              // o32 75 cb
	Jne_rel8_64                              // 75 cb
	Jbe_rel8_16                              // o16 76 cb
	Jbe_rel8_32                              // o32 76 cb
	Jbe_rel8_64                              // 76 cb
	Ja_rel8_16                               // o16 77 cb
	Ja_rel8_32                               // o32 77 cb
	Ja_rel8_64                               // 77 cb
	Pshufw_mm_mmm64_imm8                     // NP 0F 70 /r ib
	Pshufd_xmm_xmmm128_imm8                  // 66 0F 70 /r ib
	VEX_Vpshufd_xmm_xmmm128_imm8             // VEX.128.66.0F.WIG 70 /r ib
	VEX_Vpshufd_ymm_ymmm256_imm8             // VEX.256.66.0F.WIG 70 /r ib
	EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8     // EVEX.128.66.0F.W0 70 /r ib
	EVEX_Vpshufd_ymm_k1z_ymmm256b32_imm8     // EVEX.256.66.0F.W0 70 /r ib
	EVEX_Vpshufd_zmm_k1z_zmmm512b32_imm8     // EVEX.512.66.0F.W0 70 /r ib
	Pshufhw_xmm_xmmm128_imm8                 // F3 0F 70 /r ib
	VEX_Vpshufhw_xmm_xmmm128_imm8            // VEX.128.F3.0F.WIG 70 /r ib
	VEX_Vpshufhw_ymm_ymmm256_imm8            // VEX.256.F3.0F.WIG 70 /r ib
	EVEX_Vpshufhw_xmm_k1z_xmmm128_imm8       // EVEX.128.F3.0F.WIG 70 /r ib
	EVEX_Vpshufhw_ymm_k1z_ymmm256_imm8       // EVEX.256.F3.0F.WIG 70 /r ib
	EVEX_Vpshufhw_zmm_k1z_zmmm512_imm8       // EVEX.512.F3.0F.WIG 70 /r ib
	Pshuflw_xmm_xmmm128_imm8                 // F2 0F 70 /r ib
	VEX_Vpshuflw_xmm_xmmm128_imm8            // VEX.128.F2.0F.WIG 70 /r ib
	VEX_Vpshuflw_ymm_ymmm256_imm8            // VEX.256.F2.0F.WIG 70 /r ib
	EVEX_Vpshuflw_xmm_k1z_xmmm128_imm8       // EVEX.128.F2.0F.WIG 70 /r ib
	EVEX_Vpshuflw_ymm_k1z_ymmm256_imm8       // EVEX.256.F2.0F.WIG 70 /r ib
	EVEX_Vpshuflw_zmm_k1z_zmmm512_imm8       // EVEX.512.F2.0F.WIG 70 /r ib
	Psrlw_mm_imm8                            // NP 0F 71 /2 ib
	Psrlw_xmm_imm8                           // 66 0F 71 /2 ib
	VEX_Vpsrlw_xmm_xmm_imm8                  // VEX.128.66.0F.WIG 71 /2 ib
	VEX_Vpsrlw_ymm_ymm_imm8                  // VEX.256.66.0F.WIG 71 /2 ib
	EVEX_Vpsrlw_xmm_k1z_xmmm128_imm8         // EVEX.128.66.0F.WIG 71 /2 ib
	EVEX_Vpsrlw_ymm_k1z_ymmm256_imm8         // EVEX.256.66.0F.WIG 71 /2 ib
	EVEX_Vpsrlw_zmm_k1z_zmmm512_imm8         // EVEX.512.66.0F.WIG 71 /2 ib
	Psraw_mm_imm8                            // NP 0F 71 /4 ib
	Psraw_xmm_imm8                           // 66 0F 71 /4 ib
	VEX_Vpsraw_xmm_xmm_imm8                  // VEX.128.66.0F.WIG 71 /4 ib
	VEX_Vpsraw_ymm_ymm_imm8                  // VEX.256.66.0F.WIG 71 /4 ib
	EVEX_Vpsraw_xmm_k1z_xmmm128_imm8         // EVEX.128.66.0F.WIG 71 /4 ib
	EVEX_Vpsraw_ymm_k1z_ymmm256_imm8         // EVEX.256.66.0F.WIG 71 /4 ib
	EVEX_Vpsraw_zmm_k1z_zmmm512_imm8         // EVEX.512.66.0F.WIG 71 /4 ib
	Psllw_mm_imm8                            // NP 0F 71 /6 ib
	Psllw_xmm_imm8                           // 66 0F 71 /6 ib
	VEX_Vpsllw_xmm_xmm_imm8                  // VEX.128.66.0F.WIG 71 /6 ib
	VEX_Vpsllw_ymm_ymm_imm8                  // VEX.256.66.0F.WIG 71 /6 ib
	EVEX_Vpsllw_xmm_k1z_xmmm128_imm8         // EVEX.128.66.0F.WIG 71 /6 ib
	EVEX_Vpsllw_ymm_k1z_ymmm256_imm8         // EVEX.256.66.0F.WIG 71 /6 ib
	EVEX_Vpsllw_zmm_k1z_zmmm512_imm8         // EVEX.512.66.0F.WIG 71 /6 ib
	EVEX_Vprord_xmm_k1z_xmmm128b32_imm8      // EVEX.128.66.0F.W0 72 /0 ib
	EVEX_Vprord_ymm_k1z_ymmm256b32_imm8      // EVEX.256.66.0F.W0 72 /0 ib
	EVEX_Vprord_zmm_k1z_zmmm512b32_imm8      // EVEX.512.66.0F.W0 72 /0 ib
	EVEX_Vprorq_xmm_k1z_xmmm128b64_imm8      // EVEX.128.66.0F.W1 72 /0 ib
	EVEX_Vprorq_ymm_k1z_ymmm256b64_imm8      // EVEX.256.66.0F.W1 72 /0 ib
	EVEX_Vprorq_zmm_k1z_zmmm512b64_imm8      // EVEX.512.66.0F.W1 72 /0 ib
	EVEX_Vprold_xmm_k1z_xmmm128b32_imm8      // EVEX.128.66.0F.W0 72 /1 ib
	EVEX_Vprold_ymm_k1z_ymmm256b32_imm8      // EVEX.256.66.0F.W0 72 /1 ib
	EVEX_Vprold_zmm_k1z_zmmm512b32_imm8      // EVEX.512.66.0F.W0 72 /1 ib
	EVEX_Vprolq_xmm_k1z_xmmm128b64_imm8      // EVEX.128.66.0F.W1 72 /1 ib
	EVEX_Vprolq_ymm_k1z_ymmm256b64_imm8      // EVEX.256.66.0F.W1 72 /1 ib
	EVEX_Vprolq_zmm_k1z_zmmm512b64_imm8      // EVEX.512.66.0F.W1 72 /1 ib
	Psrld_mm_imm8                            // NP 0F 72 /2 ib
	Psrld_xmm_imm8                           // 66 0F 72 /2 ib
	VEX_Vpsrld_xmm_xmm_imm8                  // VEX.128.66.0F.WIG 72 /2 ib
	VEX_Vpsrld_ymm_ymm_imm8                  // VEX.256.66.0F.WIG 72 /2 ib
	EVEX_Vpsrld_xmm_k1z_xmmm128b32_imm8      // EVEX.128.66.0F.W0 72 /2 ib
	EVEX_Vpsrld_ymm_k1z_ymmm256b32_imm8      // EVEX.256.66.0F.W0 72 /2 ib
	EVEX_Vpsrld_zmm_k1z_zmmm512b32_imm8      // EVEX.512.66.0F.W0 72 /2 ib
	Psrad_mm_imm8                            // NP 0F 72 /4 ib
	Psrad_xmm_imm8                           // 66 0F 72 /4 ib
	VEX_Vpsrad_xmm_xmm_imm8                  // VEX.128.66.0F.WIG 72 /4 ib
	VEX_Vpsrad_ymm_ymm_imm8                  // VEX.256.66.0F.WIG 72 /4 ib
	EVEX_Vpsrad_xmm_k1z_xmmm128b32_imm8      // EVEX.128.66.0F.W0 72 /4 ib
	EVEX_Vpsrad_ymm_k1z_ymmm256b32_imm8      // EVEX.256.66.0F.W0 72 /4 ib
	EVEX_Vpsrad_zmm_k1z_zmmm512b32_imm8      // EVEX.512.66.0F.W0 72 /4 ib
	EVEX_Vpsraq_xmm_k1z_xmmm128b64_imm8      // EVEX.128.66.0F.W1 72 /4 ib
	EVEX_Vpsraq_ymm_k1z_ymmm256b64_imm8      // EVEX.256.66.0F.W1 72 /4 ib
	EVEX_Vpsraq_zmm_k1z_zmmm512b64_imm8      // EVEX.512.66.0F.W1 72 /4 ib
	Pslld_mm_imm8                            // NP 0F 72 /6 ib
	Pslld_xmm_imm8                           // 66 0F 72 /6 ib
	VEX_Vpslld_xmm_xmm_imm8                  // VEX.128.66.0F.WIG 72 /6 ib
	VEX_Vpslld_ymm_ymm_imm8                  // VEX.256.66.0F.WIG 72 /6 ib
	EVEX_Vpslld_xmm_k1z_xmmm128b32_imm8      // EVEX.128.66.0F.W0 72 /6 ib
	EVEX_Vpslld_ymm_k1z_ymmm256b32_imm8      // EVEX.256.66.0F.W0 72 /6 ib
	EVEX_Vpslld_zmm_k1z_zmmm512b32_imm8      // EVEX.512.66.0F.W0 72 /6 ib
	Psrlq_mm_imm8                            // NP 0F 73 /2 ib
	Psrlq_xmm_imm8                           // 66 0F 73 /2 ib
	VEX_Vpsrlq_xmm_xmm_imm8                  // VEX.128.66.0F.WIG 73 /2 ib
	VEX_Vpsrlq_ymm_ymm_imm8                  // VEX.256.66.0F.WIG 73 /2 ib
	EVEX_Vpsrlq_xmm_k1z_xmmm128b64_imm8      // EVEX.128.66.0F.W1 73 /2 ib
	EVEX_Vpsrlq_ymm_k1z_ymmm256b64_imm8      // EVEX.256.66.0F.W1 73 /2 ib
	EVEX_Vpsrlq_zmm_k1z_zmmm512b64_imm8      // EVEX.512.66.0F.W1 73 /2 ib
	Psrldq_xmm_imm8                          // 66 0F 73 /3 ib
	VEX_Vpsrldq_xmm_xmm_imm8                 // VEX.128.66.0F.WIG 73 /3 ib
	VEX_Vpsrldq_ymm_ymm_imm8                 // VEX.256.66.0F.WIG 73 /3 ib
	EVEX_Vpsrldq_xmm_xmmm128_imm8            // EVEX.128.66.0F.WIG 73 /3 ib
	EVEX_Vpsrldq_ymm_ymmm256_imm8            // EVEX.256.66.0F.WIG 73 /3 ib
	EVEX_Vpsrldq_zmm_zmmm512_imm8            // EVEX.512.66.0F.WIG 73 /3 ib
	Psllq_mm_imm8                            // NP 0F 73 /6 ib
	Psllq_xmm_imm8                           // 66 0F 73 /6 ib
	VEX_Vpsllq_xmm_xmm_imm8                  // VEX.128.66.0F.WIG 73 /6 ib
	VEX_Vpsllq_ymm_ymm_imm8                  // VEX.256.66.0F.WIG 73 /6 ib
	EVEX_Vpsllq_xmm_k1z_xmmm128b64_imm8      // EVEX.128.66.0F.W1 73 /6 ib
	EVEX_Vpsllq_ymm_k1z_ymmm256b64_imm8      // EVEX.256.66.0F.W1 73 /6 ib
	EVEX_Vpsllq_zmm_k1z_zmmm512b64_imm8      // EVEX.512.66.0F.W1 73 /6 ib
	Pslldq_xmm_imm8                          // 66 0F 73 /7 ib
	VEX_Vpslldq_xmm_xmm_imm8                 // VEX.128.66.0F.WIG 73 /7 ib
	VEX_Vpslldq_ymm_ymm_imm8                 // VEX.256.66.0F.WIG 73 /7 ib
	EVEX_Vpslldq_xmm_xmmm128_imm8            // EVEX.128.66.0F.WIG 73 /7 ib
	EVEX_Vpslldq_ymm_ymmm256_imm8            // EVEX.256.66.0F.WIG 73 /7 ib
	EVEX_Vpslldq_zmm_zmmm512_imm8            // EVEX.512.66.0F.WIG 73 /7 ib
	Pcmpeqb_mm_mmm64                         // NP 0F 74 /r
	Pcmpeqb_xmm_xmmm128                      // 66 0F 74 /r
	VEX_Vpcmpeqb_xmm_xmm_xmmm128             // VEX.128.66.0F.WIG 74 /r
	VEX_Vpcmpeqb_ymm_ymm_ymmm256             // VEX.256.66.0F.WIG 74 /r
	EVEX_Vpcmpeqb_kr_k1_xmm_xmmm128          // EVEX.128.66.0F.WIG 74 /r
	EVEX_Vpcmpeqb_kr_k1_ymm_ymmm256          // EVEX.256.66.0F.WIG 74 /r
	EVEX_Vpcmpeqb_kr_k1_zmm_zmmm512          // EVEX.512.66.0F.WIG 74 /r
	Pcmpeqw_mm_mmm64                         // NP 0F 75 /r
	Pcmpeqw_xmm_xmmm128                      // 66 0F 75 /r
	VEX_Vpcmpeqw_xmm_xmm_xmmm128             // VEX.128.66.0F.WIG 75 /r
	VEX_Vpcmpeqw_ymm_ymm_ymmm256             // VEX.256.66.0F.WIG 75 /r
	EVEX_Vpcmpeqw_kr_k1_xmm_xmmm128          // EVEX.128.66.0F.WIG 75 /r
	EVEX_Vpcmpeqw_kr_k1_ymm_ymmm256          // EVEX.256.66.0F.WIG 75 /r
	EVEX_Vpcmpeqw_kr_k1_zmm_zmmm512          // EVEX.512.66.0F.WIG 75 /r
	Pcmpeqd_mm_mmm64                         // NP 0F 76 /r
	Pcmpeqd_xmm_xmmm128                      // 66 0F 76 /r
	VEX_Vpcmpeqd_xmm_xmm_xmmm128             // VEX.128.66.0F.WIG 76 /r
	VEX_Vpcmpeqd_ymm_ymm_ymmm256             // VEX.256.66.0F.WIG 76 /r
	EVEX_Vpcmpeqd_kr_k1_xmm_xmmm128b32       // EVEX.128.66.0F.W0 76 /r
	EVEX_Vpcmpeqd_kr_k1_ymm_ymmm256b32       // EVEX.256.66.0F.W0 76 /r
	EVEX_Vpcmpeqd_kr_k1_zmm_zmmm512b32       // EVEX.512.66.0F.W0 76 /r
	Emms                                     // NP 0F 77
	VEX_Vzeroupper                           // VEX.128.0F.WIG 77
	VEX_Vzeroall                             // VEX.256.0F.WIG 77
	EVEX_Vcvttps2udq_xmm_k1z_xmmm128b32      // EVEX.128.0F.W0 78 /r
	EVEX_Vcvttps2udq_ymm_k1z_ymmm256b32      // EVEX.256.0F.W0 78 /r
	EVEX_Vcvttps2udq_zmm_k1z_zmmm512b32_sae  // EVEX.512.0F.W0 78 /r
	EVEX_Vcvttpd2udq_xmm_k1z_xmmm128b64      // EVEX.128.0F.W1 78 /r
	EVEX_Vcvttpd2udq_xmm_k1z_ymmm256b64      // EVEX.256.0F.W1 78 /r
	EVEX_Vcvttpd2udq_ymm_k1z_zmmm512b64_sae  // EVEX.512.0F.W1 78 /r
	EVEX_Vcvttps2uqq_xmm_k1z_xmmm64b32       // EVEX.128.66.0F.W0 78 /r
	EVEX_Vcvttps2uqq_ymm_k1z_xmmm128b32      // EVEX.256.66.0F.W0 78 /r
	EVEX_Vcvttps2uqq_zmm_k1z_ymmm256b32_sae  // EVEX.512.66.0F.W0 78 /r
	EVEX_Vcvttpd2uqq_xmm_k1z_xmmm128b64      // EVEX.128.66.0F.W1 78 /r
	EVEX_Vcvttpd2uqq_ymm_k1z_ymmm256b64      // EVEX.256.66.0F.W1 78 /r
	EVEX_Vcvttpd2uqq_zmm_k1z_zmmm512b64_sae  // EVEX.512.66.0F.W1 78 /r
	EVEX_Vcvtps2udq_xmm_k1z_xmmm128b32       // EVEX.128.0F.W0 79 /r
	EVEX_Vcvtps2udq_ymm_k1z_ymmm256b32       // EVEX.256.0F.W0 79 /r
	EVEX_Vcvtps2udq_zmm_k1z_zmmm512b32_er    // EVEX.512.0F.W0 79 /r
	EVEX_Vcvtpd2udq_xmm_k1z_xmmm128b64       // EVEX.128.0F.W1 79 /r
	EVEX_Vcvtpd2udq_xmm_k1z_ymmm256b64       // EVEX.256.0F.W1 79 /r
	EVEX_Vcvtpd2udq_ymm_k1z_zmmm512b64_er    // EVEX.512.0F.W1 79 /r
	EVEX_Vcvtps2uqq_xmm_k1z_xmmm64b32        // EVEX.128.66.0F.W0 79 /r
	EVEX_Vcvtps2uqq_ymm_k1z_xmmm128b32       // EVEX.256.66.0F.W0 79 /r
	EVEX_Vcvtps2uqq_zmm_k1z_ymmm256b32_er    // EVEX.512.66.0F.W0 79 /r
	EVEX_Vcvtpd2uqq_xmm_k1z_xmmm128b64       // EVEX.128.66.0F.W1 79 /r
	EVEX_Vcvtpd2uqq_ymm_k1z_ymmm256b64       // EVEX.256.66.0F.W1 79 /r
	EVEX_Vcvtpd2uqq_zmm_k1z_zmmm512b64_er    // EVEX.512.66.0F.W1 79 /r
	EVEX_Vpshldw_xmm_k1z_xmm_xmmm128_imm8    // EVEX.128.66.0F3A.W1 70 /r ib
	EVEX_Vpshldw_ymm_k1z_ymm_ymmm256_imm8    // EVEX.256.66.0F3A.W1 70 /r ib
	EVEX_Vpshldw_zmm_k1z_zmm_zmmm512_imm8    // EVEX.512.66.0F3A.W1 70 /r ib
	EVEX_Vpshldd_xmm_k1z_xmm_xmmm128b32_imm8 // EVEX.128.66.0F3A.W0 71 /r ib
	EVEX_Vpshldd_ymm_k1z_ymm_ymmm256b32_imm8 // EVEX.256.66.0F3A.W0 71 /r ib
	EVEX_Vpshldd_zmm_k1z_zmm_zmmm512b32_imm8 // EVEX.512.66.0F3A.W0 71 /r ib
	EVEX_Vpshldq_xmm_k1z_xmm_xmmm128b64_imm8 // EVEX.128.66.0F3A.W1 71 /r ib
	EVEX_Vpshldq_ymm_k1z_ymm_ymmm256b64_imm8 // EVEX.256.66.0F3A.W1 71 /r ib
	EVEX_Vpshldq_zmm_k1z_zmm_zmmm512b64_imm8 // EVEX.512.66.0F3A.W1 71 /r ib
	EVEX_Vpshrdw_xmm_k1z_xmm_xmmm128_imm8    // EVEX.128.66.0F3A.W1 72 /r ib
	EVEX_Vpshrdw_ymm_k1z_ymm_ymmm256_imm8    // EVEX.256.66.0F3A.W1 72 /r ib
	EVEX_Vpshrdw_zmm_k1z_zmm_zmmm512_imm8    // EVEX.512.66.0F3A.W1 72 /r ib
	EVEX_Vpshrdd_xmm_k1z_xmm_xmmm128b32_imm8 // EVEX.128.66.0F3A.W0 73 /r ib
	EVEX_Vpshrdd_ymm_k1z_ymm_ymmm256b32_imm8 // EVEX.256.66.0F3A.W0 73 /r ib
	EVEX_Vpshrdd_zmm_k1z_zmm_zmmm512b32_imm8 // EVEX.512.66.0F3A.W0 73 /r ib
	EVEX_Vpshrdq_xmm_k1z_xmm_xmmm128b64_imm8 // EVEX.128.66.0F3A.W1 73 /r ib
	EVEX_Vpshrdq_ymm_k1z_ymm_ymmm256b64_imm8 // EVEX.256.66.0F3A.W1 73 /r ib
	EVEX_Vpshrdq_zmm_k1z_zmm_zmmm512b64_imm8 // EVEX.512.66.0F3A.W1 73 /r ib

	NumCodes
)

func (c Code) String() string {
	if c < NumCodes {
		return names[c]
	}
	return fmt.Sprintf("<code %d>", uint16(c))
}

// Mnemonic in lower case, e.g. "vpshufd".
func (c Code) Mnemonic() string {
	if c == INVALID || c >= NumCodes {
		return "(bad)"
	}
	return mnemonics[c]
}

var names = [NumCodes]string{
	INVALID:                                  "INVALID",
	Add_rm16_r16:                             "Add_rm16_r16",
	Add_rm32_r32:                             "Add_rm32_r32",
	Add_rm64_r64:                             "Add_rm64_r64",
	Add_r16_rm16:                             "Add_r16_rm16",
	Add_r32_rm32:                             "Add_r32_rm32",
	Add_r64_rm64:                             "Add_r64_rm64",
	Bound_r16_m1616:                          "Bound_r16_m1616",
	Bound_r32_m3232:                          "Bound_r32_m3232",
	Les_r16_m1616:                            "Les_r16_m1616",
	Les_r32_m1632:                            "Les_r32_m1632",
	Lds_r16_m1616:                            "Lds_r16_m1616",
	Lds_r32_m1632:                            "Lds_r32_m1632",
	Jo_rel8_16:                               "Jo_rel8_16",
	Jo_rel8_32:                               "Jo_rel8_32",
	Jo_rel8_64:                               "Jo_rel8_64",
	Jno_rel8_16:                              "Jno_rel8_16",
	Jno_rel8_32:                              "Jno_rel8_32",
	Jno_rel8_64:                              "Jno_rel8_64",
	Jb_rel8_16:                               "Jb_rel8_16",
	Jb_rel8_32:                               "Jb_rel8_32",
	Jb_rel8_64:                               "Jb_rel8_64",
	Jae_rel8_16:                              "Jae_rel8_16",
	Jae_rel8_32:                              "Jae_rel8_32",
	Jae_rel8_64:                              "Jae_rel8_64",
	Je_rel8_16:                               "Je_rel8_16",
	Je_rel8_32:                               "Je_rel8_32",
	Je_rel8_64:                               "Je_rel8_64",
	Jne_rel8_16:                              "Jne_rel8_16",
	Jne_rel8_32:                              "Jne_rel8_32",
	Jne_rel8_64:                              "Jne_rel8_64",
	Jbe_rel8_16:                              "Jbe_rel8_16",
	Jbe_rel8_32:                              "Jbe_rel8_32",
	Jbe_rel8_64:                              "Jbe_rel8_64",
	Ja_rel8_16:                               "Ja_rel8_16",
	Ja_rel8_32:                               "Ja_rel8_32",
	Ja_rel8_64:                               "Ja_rel8_64",
	Pshufw_mm_mmm64_imm8:                     "Pshufw_mm_mmm64_imm8",
	Pshufd_xmm_xmmm128_imm8:                  "Pshufd_xmm_xmmm128_imm8",
	VEX_Vpshufd_xmm_xmmm128_imm8:             "VEX_Vpshufd_xmm_xmmm128_imm8",
	VEX_Vpshufd_ymm_ymmm256_imm8:             "VEX_Vpshufd_ymm_ymmm256_imm8",
	EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8:     "EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8",
	EVEX_Vpshufd_ymm_k1z_ymmm256b32_imm8:     "EVEX_Vpshufd_ymm_k1z_ymmm256b32_imm8",
	EVEX_Vpshufd_zmm_k1z_zmmm512b32_imm8:     "EVEX_Vpshufd_zmm_k1z_zmmm512b32_imm8",
	Pshufhw_xmm_xmmm128_imm8:                 "Pshufhw_xmm_xmmm128_imm8",
	VEX_Vpshufhw_xmm_xmmm128_imm8:            "VEX_Vpshufhw_xmm_xmmm128_imm8",
	VEX_Vpshufhw_ymm_ymmm256_imm8:            "VEX_Vpshufhw_ymm_ymmm256_imm8",
	EVEX_Vpshufhw_xmm_k1z_xmmm128_imm8:       "EVEX_Vpshufhw_xmm_k1z_xmmm128_imm8",
	EVEX_Vpshufhw_ymm_k1z_ymmm256_imm8:       "EVEX_Vpshufhw_ymm_k1z_ymmm256_imm8",
	EVEX_Vpshufhw_zmm_k1z_zmmm512_imm8:       "EVEX_Vpshufhw_zmm_k1z_zmmm512_imm8",
	Pshuflw_xmm_xmmm128_imm8:                 "Pshuflw_xmm_xmmm128_imm8",
	VEX_Vpshuflw_xmm_xmmm128_imm8:            "VEX_Vpshuflw_xmm_xmmm128_imm8",
	VEX_Vpshuflw_ymm_ymmm256_imm8:            "VEX_Vpshuflw_ymm_ymmm256_imm8",
	EVEX_Vpshuflw_xmm_k1z_xmmm128_imm8:       "EVEX_Vpshuflw_xmm_k1z_xmmm128_imm8",
	EVEX_Vpshuflw_ymm_k1z_ymmm256_imm8:       "EVEX_Vpshuflw_ymm_k1z_ymmm256_imm8",
	EVEX_Vpshuflw_zmm_k1z_zmmm512_imm8:       "EVEX_Vpshuflw_zmm_k1z_zmmm512_imm8",
	Psrlw_mm_imm8:                            "Psrlw_mm_imm8",
	Psrlw_xmm_imm8:                           "Psrlw_xmm_imm8",
	VEX_Vpsrlw_xmm_xmm_imm8:                  "VEX_Vpsrlw_xmm_xmm_imm8",
	VEX_Vpsrlw_ymm_ymm_imm8:                  "VEX_Vpsrlw_ymm_ymm_imm8",
	EVEX_Vpsrlw_xmm_k1z_xmmm128_imm8:         "EVEX_Vpsrlw_xmm_k1z_xmmm128_imm8",
	EVEX_Vpsrlw_ymm_k1z_ymmm256_imm8:         "EVEX_Vpsrlw_ymm_k1z_ymmm256_imm8",
	EVEX_Vpsrlw_zmm_k1z_zmmm512_imm8:         "EVEX_Vpsrlw_zmm_k1z_zmmm512_imm8",
	Psraw_mm_imm8:                            "Psraw_mm_imm8",
	Psraw_xmm_imm8:                           "Psraw_xmm_imm8",
	VEX_Vpsraw_xmm_xmm_imm8:                  "VEX_Vpsraw_xmm_xmm_imm8",
	VEX_Vpsraw_ymm_ymm_imm8:                  "VEX_Vpsraw_ymm_ymm_imm8",
	EVEX_Vpsraw_xmm_k1z_xmmm128_imm8:         "EVEX_Vpsraw_xmm_k1z_xmmm128_imm8",
	EVEX_Vpsraw_ymm_k1z_ymmm256_imm8:         "EVEX_Vpsraw_ymm_k1z_ymmm256_imm8",
	EVEX_Vpsraw_zmm_k1z_zmmm512_imm8:         "EVEX_Vpsraw_zmm_k1z_zmmm512_imm8",
	Psllw_mm_imm8:                            "Psllw_mm_imm8",
	Psllw_xmm_imm8:                           "Psllw_xmm_imm8",
	VEX_Vpsllw_xmm_xmm_imm8:                  "VEX_Vpsllw_xmm_xmm_imm8",
	VEX_Vpsllw_ymm_ymm_imm8:                  "VEX_Vpsllw_ymm_ymm_imm8",
	EVEX_Vpsllw_xmm_k1z_xmmm128_imm8:         "EVEX_Vpsllw_xmm_k1z_xmmm128_imm8",
	EVEX_Vpsllw_ymm_k1z_ymmm256_imm8:         "EVEX_Vpsllw_ymm_k1z_ymmm256_imm8",
	EVEX_Vpsllw_zmm_k1z_zmmm512_imm8:         "EVEX_Vpsllw_zmm_k1z_zmmm512_imm8",
	EVEX_Vprord_xmm_k1z_xmmm128b32_imm8:      "EVEX_Vprord_xmm_k1z_xmmm128b32_imm8",
	EVEX_Vprord_ymm_k1z_ymmm256b32_imm8:      "EVEX_Vprord_ymm_k1z_ymmm256b32_imm8",
	EVEX_Vprord_zmm_k1z_zmmm512b32_imm8:      "EVEX_Vprord_zmm_k1z_zmmm512b32_imm8",
	EVEX_Vprorq_xmm_k1z_xmmm128b64_imm8:      "EVEX_Vprorq_xmm_k1z_xmmm128b64_imm8",
	EVEX_Vprorq_ymm_k1z_ymmm256b64_imm8:      "EVEX_Vprorq_ymm_k1z_ymmm256b64_imm8",
	EVEX_Vprorq_zmm_k1z_zmmm512b64_imm8:      "EVEX_Vprorq_zmm_k1z_zmmm512b64_imm8",
	EVEX_Vprold_xmm_k1z_xmmm128b32_imm8:      "EVEX_Vprold_xmm_k1z_xmmm128b32_imm8",
	EVEX_Vprold_ymm_k1z_ymmm256b32_imm8:      "EVEX_Vprold_ymm_k1z_ymmm256b32_imm8",
	EVEX_Vprold_zmm_k1z_zmmm512b32_imm8:      "EVEX_Vprold_zmm_k1z_zmmm512b32_imm8",
	EVEX_Vprolq_xmm_k1z_xmmm128b64_imm8:      "EVEX_Vprolq_xmm_k1z_xmmm128b64_imm8",
	EVEX_Vprolq_ymm_k1z_ymmm256b64_imm8:      "EVEX_Vprolq_ymm_k1z_ymmm256b64_imm8",
	EVEX_Vprolq_zmm_k1z_zmmm512b64_imm8:      "EVEX_Vprolq_zmm_k1z_zmmm512b64_imm8",
	Psrld_mm_imm8:                            "Psrld_mm_imm8",
	Psrld_xmm_imm8:                           "Psrld_xmm_imm8",
	VEX_Vpsrld_xmm_xmm_imm8:                  "VEX_Vpsrld_xmm_xmm_imm8",
	VEX_Vpsrld_ymm_ymm_imm8:                  "VEX_Vpsrld_ymm_ymm_imm8",
	EVEX_Vpsrld_xmm_k1z_xmmm128b32_imm8:      "EVEX_Vpsrld_xmm_k1z_xmmm128b32_imm8",
	EVEX_Vpsrld_ymm_k1z_ymmm256b32_imm8:      "EVEX_Vpsrld_ymm_k1z_ymmm256b32_imm8",
	EVEX_Vpsrld_zmm_k1z_zmmm512b32_imm8:      "EVEX_Vpsrld_zmm_k1z_zmmm512b32_imm8",
	Psrad_mm_imm8:                            "Psrad_mm_imm8",
	Psrad_xmm_imm8:                           "Psrad_xmm_imm8",
	VEX_Vpsrad_xmm_xmm_imm8:                  "VEX_Vpsrad_xmm_xmm_imm8",
	VEX_Vpsrad_ymm_ymm_imm8:                  "VEX_Vpsrad_ymm_ymm_imm8",
	EVEX_Vpsrad_xmm_k1z_xmmm128b32_imm8:      "EVEX_Vpsrad_xmm_k1z_xmmm128b32_imm8",
	EVEX_Vpsrad_ymm_k1z_ymmm256b32_imm8:      "EVEX_Vpsrad_ymm_k1z_ymmm256b32_imm8",
	EVEX_Vpsrad_zmm_k1z_zmmm512b32_imm8:      "EVEX_Vpsrad_zmm_k1z_zmmm512b32_imm8",
	EVEX_Vpsraq_xmm_k1z_xmmm128b64_imm8:      "EVEX_Vpsraq_xmm_k1z_xmmm128b64_imm8",
	EVEX_Vpsraq_ymm_k1z_ymmm256b64_imm8:      "EVEX_Vpsraq_ymm_k1z_ymmm256b64_imm8",
	EVEX_Vpsraq_zmm_k1z_zmmm512b64_imm8:      "EVEX_Vpsraq_zmm_k1z_zmmm512b64_imm8",
	Pslld_mm_imm8:                            "Pslld_mm_imm8",
	Pslld_xmm_imm8:                           "Pslld_xmm_imm8",
	VEX_Vpslld_xmm_xmm_imm8:                  "VEX_Vpslld_xmm_xmm_imm8",
	VEX_Vpslld_ymm_ymm_imm8:                  "VEX_Vpslld_ymm_ymm_imm8",
	EVEX_Vpslld_xmm_k1z_xmmm128b32_imm8:      "EVEX_Vpslld_xmm_k1z_xmmm128b32_imm8",
	EVEX_Vpslld_ymm_k1z_ymmm256b32_imm8:      "EVEX_Vpslld_ymm_k1z_ymmm256b32_imm8",
	EVEX_Vpslld_zmm_k1z_zmmm512b32_imm8:      "EVEX_Vpslld_zmm_k1z_zmmm512b32_imm8",
	Psrlq_mm_imm8:                            "Psrlq_mm_imm8",
	Psrlq_xmm_imm8:                           "Psrlq_xmm_imm8",
	VEX_Vpsrlq_xmm_xmm_imm8:                  "VEX_Vpsrlq_xmm_xmm_imm8",
	VEX_Vpsrlq_ymm_ymm_imm8:                  "VEX_Vpsrlq_ymm_ymm_imm8",
	EVEX_Vpsrlq_xmm_k1z_xmmm128b64_imm8:      "EVEX_Vpsrlq_xmm_k1z_xmmm128b64_imm8",
	EVEX_Vpsrlq_ymm_k1z_ymmm256b64_imm8:      "EVEX_Vpsrlq_ymm_k1z_ymmm256b64_imm8",
	EVEX_Vpsrlq_zmm_k1z_zmmm512b64_imm8:      "EVEX_Vpsrlq_zmm_k1z_zmmm512b64_imm8",
	Psrldq_xmm_imm8:                          "Psrldq_xmm_imm8",
	VEX_Vpsrldq_xmm_xmm_imm8:                 "VEX_Vpsrldq_xmm_xmm_imm8",
	VEX_Vpsrldq_ymm_ymm_imm8:                 "VEX_Vpsrldq_ymm_ymm_imm8",
	EVEX_Vpsrldq_xmm_xmmm128_imm8:            "EVEX_Vpsrldq_xmm_xmmm128_imm8",
	EVEX_Vpsrldq_ymm_ymmm256_imm8:            "EVEX_Vpsrldq_ymm_ymmm256_imm8",
	EVEX_Vpsrldq_zmm_zmmm512_imm8:            "EVEX_Vpsrldq_zmm_zmmm512_imm8",
	Psllq_mm_imm8:                            "Psllq_mm_imm8",
	Psllq_xmm_imm8:                           "Psllq_xmm_imm8",
	VEX_Vpsllq_xmm_xmm_imm8:                  "VEX_Vpsllq_xmm_xmm_imm8",
	VEX_Vpsllq_ymm_ymm_imm8:                  "VEX_Vpsllq_ymm_ymm_imm8",
	EVEX_Vpsllq_xmm_k1z_xmmm128b64_imm8:      "EVEX_Vpsllq_xmm_k1z_xmmm128b64_imm8",
	EVEX_Vpsllq_ymm_k1z_ymmm256b64_imm8:      "EVEX_Vpsllq_ymm_k1z_ymmm256b64_imm8",
	EVEX_Vpsllq_zmm_k1z_zmmm512b64_imm8:      "EVEX_Vpsllq_zmm_k1z_zmmm512b64_imm8",
	Pslldq_xmm_imm8:                          "Pslldq_xmm_imm8",
	VEX_Vpslldq_xmm_xmm_imm8:                 "VEX_Vpslldq_xmm_xmm_imm8",
	VEX_Vpslldq_ymm_ymm_imm8:                 "VEX_Vpslldq_ymm_ymm_imm8",
	EVEX_Vpslldq_xmm_xmmm128_imm8:            "EVEX_Vpslldq_xmm_xmmm128_imm8",
	EVEX_Vpslldq_ymm_ymmm256_imm8:            "EVEX_Vpslldq_ymm_ymmm256_imm8",
	EVEX_Vpslldq_zmm_zmmm512_imm8:            "EVEX_Vpslldq_zmm_zmmm512_imm8",
	Pcmpeqb_mm_mmm64:                         "Pcmpeqb_mm_mmm64",
	Pcmpeqb_xmm_xmmm128:                      "Pcmpeqb_xmm_xmmm128",
	VEX_Vpcmpeqb_xmm_xmm_xmmm128:             "VEX_Vpcmpeqb_xmm_xmm_xmmm128",
	VEX_Vpcmpeqb_ymm_ymm_ymmm256:             "VEX_Vpcmpeqb_ymm_ymm_ymmm256",
	EVEX_Vpcmpeqb_kr_k1_xmm_xmmm128:          "EVEX_Vpcmpeqb_kr_k1_xmm_xmmm128",
	EVEX_Vpcmpeqb_kr_k1_ymm_ymmm256:          "EVEX_Vpcmpeqb_kr_k1_ymm_ymmm256",
	EVEX_Vpcmpeqb_kr_k1_zmm_zmmm512:          "EVEX_Vpcmpeqb_kr_k1_zmm_zmmm512",
	Pcmpeqw_mm_mmm64:                         "Pcmpeqw_mm_mmm64",
	Pcmpeqw_xmm_xmmm128:                      "Pcmpeqw_xmm_xmmm128",
	VEX_Vpcmpeqw_xmm_xmm_xmmm128:             "VEX_Vpcmpeqw_xmm_xmm_xmmm128",
	VEX_Vpcmpeqw_ymm_ymm_ymmm256:             "VEX_Vpcmpeqw_ymm_ymm_ymmm256",
	EVEX_Vpcmpeqw_kr_k1_xmm_xmmm128:          "EVEX_Vpcmpeqw_kr_k1_xmm_xmmm128",
	EVEX_Vpcmpeqw_kr_k1_ymm_ymmm256:          "EVEX_Vpcmpeqw_kr_k1_ymm_ymmm256",
	EVEX_Vpcmpeqw_kr_k1_zmm_zmmm512:          "EVEX_Vpcmpeqw_kr_k1_zmm_zmmm512",
	Pcmpeqd_mm_mmm64:                         "Pcmpeqd_mm_mmm64",
	Pcmpeqd_xmm_xmmm128:                      "Pcmpeqd_xmm_xmmm128",
	VEX_Vpcmpeqd_xmm_xmm_xmmm128:             "VEX_Vpcmpeqd_xmm_xmm_xmmm128",
	VEX_Vpcmpeqd_ymm_ymm_ymmm256:             "VEX_Vpcmpeqd_ymm_ymm_ymmm256",
	EVEX_Vpcmpeqd_kr_k1_xmm_xmmm128b32:       "EVEX_Vpcmpeqd_kr_k1_xmm_xmmm128b32",
	EVEX_Vpcmpeqd_kr_k1_ymm_ymmm256b32:       "EVEX_Vpcmpeqd_kr_k1_ymm_ymmm256b32",
	EVEX_Vpcmpeqd_kr_k1_zmm_zmmm512b32:       "EVEX_Vpcmpeqd_kr_k1_zmm_zmmm512b32",
	Emms:                                     "Emms",
	VEX_Vzeroupper:                           "VEX_Vzeroupper",
	VEX_Vzeroall:                             "VEX_Vzeroall",
	EVEX_Vcvttps2udq_xmm_k1z_xmmm128b32:      "EVEX_Vcvttps2udq_xmm_k1z_xmmm128b32",
	EVEX_Vcvttps2udq_ymm_k1z_ymmm256b32:      "EVEX_Vcvttps2udq_ymm_k1z_ymmm256b32",
	EVEX_Vcvttps2udq_zmm_k1z_zmmm512b32_sae:  "EVEX_Vcvttps2udq_zmm_k1z_zmmm512b32_sae",
	EVEX_Vcvttpd2udq_xmm_k1z_xmmm128b64:      "EVEX_Vcvttpd2udq_xmm_k1z_xmmm128b64",
	EVEX_Vcvttpd2udq_xmm_k1z_ymmm256b64:      "EVEX_Vcvttpd2udq_xmm_k1z_ymmm256b64",
	EVEX_Vcvttpd2udq_ymm_k1z_zmmm512b64_sae:  "EVEX_Vcvttpd2udq_ymm_k1z_zmmm512b64_sae",
	EVEX_Vcvttps2uqq_xmm_k1z_xmmm64b32:       "EVEX_Vcvttps2uqq_xmm_k1z_xmmm64b32",
	EVEX_Vcvttps2uqq_ymm_k1z_xmmm128b32:      "EVEX_Vcvttps2uqq_ymm_k1z_xmmm128b32",
	EVEX_Vcvttps2uqq_zmm_k1z_ymmm256b32_sae:  "EVEX_Vcvttps2uqq_zmm_k1z_ymmm256b32_sae",
	EVEX_Vcvttpd2uqq_xmm_k1z_xmmm128b64:      "EVEX_Vcvttpd2uqq_xmm_k1z_xmmm128b64",
	EVEX_Vcvttpd2uqq_ymm_k1z_ymmm256b64:      "EVEX_Vcvttpd2uqq_ymm_k1z_ymmm256b64",
	EVEX_Vcvttpd2uqq_zmm_k1z_zmmm512b64_sae:  "EVEX_Vcvttpd2uqq_zmm_k1z_zmmm512b64_sae",
	EVEX_Vcvtps2udq_xmm_k1z_xmmm128b32:       "EVEX_Vcvtps2udq_xmm_k1z_xmmm128b32",
	EVEX_Vcvtps2udq_ymm_k1z_ymmm256b32:       "EVEX_Vcvtps2udq_ymm_k1z_ymmm256b32",
	EVEX_Vcvtps2udq_zmm_k1z_zmmm512b32_er:    "EVEX_Vcvtps2udq_zmm_k1z_zmmm512b32_er",
	EVEX_Vcvtpd2udq_xmm_k1z_xmmm128b64:       "EVEX_Vcvtpd2udq_xmm_k1z_xmmm128b64",
	EVEX_Vcvtpd2udq_xmm_k1z_ymmm256b64:       "EVEX_Vcvtpd2udq_xmm_k1z_ymmm256b64",
	EVEX_Vcvtpd2udq_ymm_k1z_zmmm512b64_er:    "EVEX_Vcvtpd2udq_ymm_k1z_zmmm512b64_er",
	EVEX_Vcvtps2uqq_xmm_k1z_xmmm64b32:        "EVEX_Vcvtps2uqq_xmm_k1z_xmmm64b32",
	EVEX_Vcvtps2uqq_ymm_k1z_xmmm128b32:       "EVEX_Vcvtps2uqq_ymm_k1z_xmmm128b32",
	EVEX_Vcvtps2uqq_zmm_k1z_ymmm256b32_er:    "EVEX_Vcvtps2uqq_zmm_k1z_ymmm256b32_er",
	EVEX_Vcvtpd2uqq_xmm_k1z_xmmm128b64:       "EVEX_Vcvtpd2uqq_xmm_k1z_xmmm128b64",
	EVEX_Vcvtpd2uqq_ymm_k1z_ymmm256b64:       "EVEX_Vcvtpd2uqq_ymm_k1z_ymmm256b64",
	EVEX_Vcvtpd2uqq_zmm_k1z_zmmm512b64_er:    "EVEX_Vcvtpd2uqq_zmm_k1z_zmmm512b64_er",
	EVEX_Vpshldw_xmm_k1z_xmm_xmmm128_imm8:    "EVEX_Vpshldw_xmm_k1z_xmm_xmmm128_imm8",
	EVEX_Vpshldw_ymm_k1z_ymm_ymmm256_imm8:    "EVEX_Vpshldw_ymm_k1z_ymm_ymmm256_imm8",
	EVEX_Vpshldw_zmm_k1z_zmm_zmmm512_imm8:    "EVEX_Vpshldw_zmm_k1z_zmm_zmmm512_imm8",
	EVEX_Vpshldd_xmm_k1z_xmm_xmmm128b32_imm8: "EVEX_Vpshldd_xmm_k1z_xmm_xmmm128b32_imm8",
	EVEX_Vpshldd_ymm_k1z_ymm_ymmm256b32_imm8: "EVEX_Vpshldd_ymm_k1z_ymm_ymmm256b32_imm8",
	EVEX_Vpshldd_zmm_k1z_zmm_zmmm512b32_imm8: "EVEX_Vpshldd_zmm_k1z_zmm_zmmm512b32_imm8",
	EVEX_Vpshldq_xmm_k1z_xmm_xmmm128b64_imm8: "EVEX_Vpshldq_xmm_k1z_xmm_xmmm128b64_imm8",
	EVEX_Vpshldq_ymm_k1z_ymm_ymmm256b64_imm8: "EVEX_Vpshldq_ymm_k1z_ymm_ymmm256b64_imm8",
	EVEX_Vpshldq_zmm_k1z_zmm_zmmm512b64_imm8: "EVEX_Vpshldq_zmm_k1z_zmm_zmmm512b64_imm8",
	EVEX_Vpshrdw_xmm_k1z_xmm_xmmm128_imm8:    "EVEX_Vpshrdw_xmm_k1z_xmm_xmmm128_imm8",
	EVEX_Vpshrdw_ymm_k1z_ymm_ymmm256_imm8:    "EVEX_Vpshrdw_ymm_k1z_ymm_ymmm256_imm8",
	EVEX_Vpshrdw_zmm_k1z_zmm_zmmm512_imm8:    "EVEX_Vpshrdw_zmm_k1z_zmm_zmmm512_imm8",
	EVEX_Vpshrdd_xmm_k1z_xmm_xmmm128b32_imm8: "EVEX_Vpshrdd_xmm_k1z_xmm_xmmm128b32_imm8",
	EVEX_Vpshrdd_ymm_k1z_ymm_ymmm256b32_imm8: "EVEX_Vpshrdd_ymm_k1z_ymm_ymmm256b32_imm8",
	EVEX_Vpshrdd_zmm_k1z_zmm_zmmm512b32_imm8: "EVEX_Vpshrdd_zmm_k1z_zmm_zmmm512b32_imm8",
	EVEX_Vpshrdq_xmm_k1z_xmm_xmmm128b64_imm8: "EVEX_Vpshrdq_xmm_k1z_xmm_xmmm128b64_imm8",
	EVEX_Vpshrdq_ymm_k1z_ymm_ymmm256b64_imm8: "EVEX_Vpshrdq_ymm_k1z_ymm_ymmm256b64_imm8",
	EVEX_Vpshrdq_zmm_k1z_zmm_zmmm512b64_imm8: "EVEX_Vpshrdq_zmm_k1z_zmm_zmmm512b64_imm8",
}

var mnemonics = func() (m [NumCodes]string) {
	for c, name := range names {
		m[c] = mnemonicOf(name)
	}
	return
}()

func mnemonicOf(name string) string {
	name = strings.TrimPrefix(name, "EVEX_")
	name = strings.TrimPrefix(name, "VEX_")
	if i := strings.IndexByte(name, '_'); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}
