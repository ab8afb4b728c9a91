// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x86dec decodes x86 machine code in 16-bit, 32-bit and 64-bit
// modes.
//
// The decoder understands legacy, REX, VEX and EVEX prefixes, ModRM and SIB
// addressing, and EVEX opmasks, broadcasts, compressed displacements and
// rounding control.  The opcode tables cover the 0F70-0F79 and 0F3A70-0F3A73
// families, the Jcc rel8 branches and a few general-purpose forms.
//
// Decoding is a pure function of the input bytes and the configuration:
//
//	insn, err := x86dec.Decode(code, 64, 0)
//
// # Errors
//
// Decode errors wrap one of ErrUnexpectedEOF, ErrInstructionTooLong,
// ErrUnknownOpcode, ErrInvalidModRM and ErrInvalidVexEvexEncoding, and
// implement the DecodeError interface.  Unexpected EOF also wraps
// io.ErrUnexpectedEOF.  ErrInvalidBitness and ErrInvalidOffset indicate a
// caller error.
package x86dec
