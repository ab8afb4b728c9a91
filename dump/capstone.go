// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo
// +build cgo

package dump

import (
	"io"
	"strings"

	"github.com/bnagy/gapstone"
	"github.com/tsavola/x86dec"
	"golang.org/x/xerrors"
)

func csMode(bitness int) (mode int, err error) {
	switch bitness {
	case 16:
		mode = gapstone.CS_MODE_16

	case 32:
		mode = gapstone.CS_MODE_32

	case 64:
		mode = gapstone.CS_MODE_64

	default:
		err = xerrors.Errorf("bitness %d: %w", bitness, x86dec.ErrInvalidBitness)
	}
	return
}

// Capstone writes a listing like Text, with capstone's disassembly of each
// instruction appended.  Lines where capstone disagrees about the
// instruction length are marked with "!".
func Capstone(w io.Writer, config x86dec.Config, data []byte) (err error) {
	mode, err := csMode(config.Bitness)
	if err != nil {
		return
	}

	engine, err := gapstone.New(gapstone.CS_ARCH_X86, mode)
	if err != nil {
		return
	}
	defer engine.Close()

	err = engine.SetOption(gapstone.CS_OPT_SYNTAX, gapstone.CS_OPT_SYNTAX_INTEL)
	if err != nil {
		return
	}

	return listing(w, config, data, func(offset, length int) (string, bool) {
		insns, err := engine.Disasm(data[offset:], config.IP+uint64(offset), 1)
		if err != nil || len(insns) == 0 {
			return "(bad)", true
		}

		insn := insns[0]
		text := strings.TrimSpace(insn.Mnemonic + " " + insn.OpStr)
		return text, int(insn.Size) != length
	})
}
