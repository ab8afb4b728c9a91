// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reader

import (
	"github.com/tsavola/x86dec/internal/errors"
)

// MaxInsnLen is the architectural instruction length limit.
const MaxInsnLen = 15

// Cursor reads the bytes of one instruction.  Read errors are raised by
// panicking with a decode error.
type Cursor struct {
	data  []byte
	start int
	pos   int
}

func NewCursor(data []byte, offset int) Cursor {
	return Cursor{data, offset, offset}
}

// Peek the next byte without consuming it.
func (c *Cursor) Peek() byte {
	c.check()
	return c.data[c.pos]
}

// Next byte.
func (c *Cursor) Next() (b byte) {
	c.check()
	b = c.data[c.pos]
	c.pos++
	return
}

// Next2 reads a little-endian 16-bit value.
func (c *Cursor) Next2() uint16 {
	lo := c.Next()
	return uint16(lo) | uint16(c.Next())<<8
}

// Next4 reads a little-endian 32-bit value.
func (c *Cursor) Next4() uint32 {
	lo := c.Next2()
	return uint32(lo) | uint32(c.Next2())<<16
}

func (c *Cursor) check() {
	if c.pos-c.start >= MaxInsnLen {
		panic(errors.ErrInstructionTooLong)
	}
	if c.pos >= len(c.data) {
		panic(errors.ErrUnexpectedEOF)
	}
}

// Len is the number of bytes consumed since the start offset.
func (c *Cursor) Len() int { return c.pos - c.start }
