// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsavola/x86dec"
	"golang.org/x/xerrors"
)

func TestText(t *testing.T) {
	data := []byte{
		0x0f, 0x77, // emms
		0x0f, 0x0b, // unknown
		0x62, 0xf1, 0x7d, 0x8b, 0x70, 0x50, 0x01, 0xa5, // vpshufd
	}

	var b bytes.Buffer

	if err := Text(&b, x86dec.Config{Bitness: 64, IP: 0x401000}, data); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("%d lines:\n%s", len(lines), b.String())
	}

	for i, prefix := range []string{"00401000  0f77", "00401002  0f", "00401003  0b", "00401004  62f17d8b705001a5"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d: %q", i, lines[i])
		}
	}

	if !strings.HasSuffix(lines[0], "emms") {
		t.Errorf("line 0: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "(bad)") || !strings.HasSuffix(lines[2], "(bad)") {
		t.Errorf("bad lines: %q %q", lines[1], lines[2])
	}
	if !strings.Contains(lines[3], "EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8") {
		t.Errorf("line 3: %q", lines[3])
	}
}

func TestTextBitness(t *testing.T) {
	var b bytes.Buffer

	if err := Text(&b, x86dec.Config{Bitness: 8}, []byte{0x90}); !xerrors.Is(err, x86dec.ErrInvalidBitness) {
		t.Error(err)
	}
}
