// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz
// +build gofuzz

package x86dec

import (
	"github.com/tsavola/x86dec/internal/reader"
	"github.com/tsavola/x86dec/register"
	"golang.org/x/xerrors"
)

var garbage = []byte{0x62, 0xc4, 0xc5, 0x0f, 0x66, 0xf0, 0xff, 0x00}

func Fuzz(data []byte) int {
	if len(data) == 0 {
		return -1
	}

	bitness := [3]int{16, 32, 64}[data[0]%3]
	data = data[1:]

	insn, err := Decode(data, bitness, 0)
	if err != nil {
		var e DecodeError
		if !xerrors.As(err, &e) {
			panic(err)
		}

		again, err2 := Decode(data, bitness, 0)
		if err2 == nil || err2.Error() != err.Error() || again != insn {
			panic("nondeterministic error")
		}
		return 0
	}

	if insn.Len() < 1 || insn.Len() > reader.MaxInsnLen || insn.Len() > len(data) {
		panic(insn.Len())
	}

	if insn.OpMask() == register.None && insn.ZeroingMasking() {
		panic("zeroing-masking without opmask")
	}
	for n := 0; n < insn.OpCount(); n++ {
		if insn.OpKind(n) == OpKindMemory && (insn.RoundingControl() != RoundNone || insn.SuppressAllExceptions()) {
			panic("rounding control with memory operand")
		}
	}

	padded := append(append([]byte{}, data[:insn.Len()]...), garbage...)
	again, err := Decode(padded, bitness, 0)
	if err != nil {
		panic(err)
	}
	if again != insn {
		panic("decoding depends on trailing bytes")
	}

	return 1
}
