// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"golang.org/x/xerrors"
)

// Decoder decodes consecutive instructions from a buffer.  The only state
// carried between calls is the offset.
type Decoder struct {
	config Config
	data   []byte
	offset int
}

func NewDecoder(config Config, data []byte) (*Decoder, error) {
	if err := config.check(); err != nil {
		return nil, err
	}

	return &Decoder{config: config, data: data}, nil
}

// Decode the instruction at the current offset.  On success the offset is
// advanced past the instruction.  On failure the offset is advanced by one
// byte, and the error (which wraps the decode error) reports the offset of
// the failure.
func (d *Decoder) Decode() (insn Instruction, err error) {
	insn, err = decode(d.config, d.data, d.offset)
	if err != nil {
		err = xerrors.Errorf("x86dec: offset %d: %w", d.offset, err)
		if d.offset < len(d.data) {
			d.offset++
		}
		return
	}

	d.offset += insn.Len()
	return
}

func (d *Decoder) Offset() int { return d.offset }
func (d *Decoder) IP() uint64  { return d.config.IP + uint64(d.offset) }
func (d *Decoder) More() bool  { return d.offset < len(d.data) }

// DecodeAll instructions in data.  Decoding stops at the first error; the
// instructions decoded before it are returned with it.
func DecodeAll(config Config, data []byte) (insns []Instruction, err error) {
	d, err := NewDecoder(config, data)
	if err != nil {
		return
	}

	for d.More() {
		var insn Instruction

		insn, err = d.Decode()
		if err != nil {
			return
		}

		insns = append(insns, insn)
	}

	return
}
