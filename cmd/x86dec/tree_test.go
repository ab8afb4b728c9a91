// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/tsavola/x86dec"
)

func TestInstructionTree(t *testing.T) {
	insn, err := x86dec.Decode([]byte{0x62, 0xf1, 0x7d, 0x9d, 0x70, 0x50, 0x01, 0xa5}, 64, 0)
	if err != nil {
		t.Fatal(err)
	}

	s := instructionTree(insn).String()

	for _, want := range []string{
		"EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8",
		"Broadcast128_Int32",
		"opmask",
		"k5",
		"zeroing",
		"broadcast",
		"0xa5",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("%q not found in:\n%s", want, s)
		}
	}
}
