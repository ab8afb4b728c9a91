// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"github.com/tsavola/x86dec/internal"
	"github.com/tsavola/x86dec/internal/errorpanic"
	"github.com/tsavola/x86dec/internal/errors"
	"github.com/tsavola/x86dec/internal/in"
	"github.com/tsavola/x86dec/internal/reader"
	"github.com/tsavola/x86dec/internal/table"
	"github.com/tsavola/x86dec/register"
	"golang.org/x/xerrors"
)

// Config of a decoder.  Bitness is 16, 32 or 64.  IP is the address of the
// first byte of the buffer.
type Config struct {
	Bitness int
	IP      uint64
}

func (config Config) check() error {
	switch config.Bitness {
	case 16, 32, 64:
		return nil

	default:
		return xerrors.Errorf("bitness %d: %w", config.Bitness, ErrInvalidBitness)
	}
}

// Decode one instruction at data[offset].  The address of data[0] is 0, so
// the instruction pointer of the result is equal to offset.
func Decode(data []byte, bitness, offset int) (Instruction, error) {
	return decode(Config{Bitness: bitness}, data, offset)
}

func decode(config Config, data []byte, offset int) (insn Instruction, err error) {
	if err = config.check(); err != nil {
		return
	}
	if offset < 0 || offset > len(data) {
		err = xerrors.Errorf("offset %d (buffer length %d): %w", offset, len(data), ErrInvalidOffset)
		return
	}

	if internal.DontPanic() {
		defer func() {
			if x := recover(); x != nil {
				err = errorpanic.Handle(x)
			}
		}()
	}

	d := decoder{
		c:      reader.NewCursor(data, offset),
		mode64: config.Bitness == 64,
		ip:     config.IP + uint64(offset),
	}
	d.init(config.Bitness)
	d.decode()

	insn = d.out
	return
}

const (
	size16 = uint8(iota)
	size32
	size64
)

// decoder state of a single instruction.
type decoder struct {
	c      reader.Cursor
	mode64 bool
	ip     uint64

	defaultOpSize   uint8
	defaultAddrSize uint8
	opSize          uint8
	addrSize        uint8

	segment     register.Register
	segmentFSGS bool
	has66       bool
	has67       bool
	lock        bool
	repe        bool
	repne       bool
	rex         bool
	w           bool

	space table.Space
	m     in.Map
	pp    in.PP
	op    byte
	modrm in.ModRM
	entry *table.Entry
	insn  *table.Insn

	// Register number extensions.
	extR  uint8 // 0 or 8
	extX  uint8 // 0 or 8
	extB  uint8 // 0 or 8
	extR2 uint8 // 0 or 16
	extX2 uint8 // 0 or 16
	vvvv  uint8 // 0-31

	l    uint8 // VEX.L or EVEX.L'L
	aaa  uint8
	z    bool
	bcst bool

	rel8 int8
	out  Instruction
}

func (d *decoder) init(bitness int) {
	switch bitness {
	case 16:
		d.defaultOpSize = size16
		d.defaultAddrSize = size16

	case 32:
		d.defaultOpSize = size32
		d.defaultAddrSize = size32

	case 64:
		d.defaultOpSize = size32
		d.defaultAddrSize = size64
	}
}

func (d *decoder) decode() {
	b := d.prefixes()
	d.sizes()

	switch b {
	case 0x0f:
		d.space = table.Legacy
		d.escape()

	case in.VEX2, in.VEX3, in.EVEX:
		if d.mode64 || in.IsVexPayload(d.c.Peek()) {
			d.vector(b)
			break
		}
		fallthrough

	default:
		d.space = table.Legacy
		d.m = in.MapNone
		d.op = b
	}

	d.entry = table.Lookup(d.space, d.m, d.op)
	if d.entry.Kind == table.Invalid {
		panic(errors.Errorf(errors.ErrUnknownOpcode, "%s", d.opcodeString()))
	}

	if d.entry.HasModRM {
		d.modrm = in.ModRM(d.c.Next())
	}

	d.resolve()
	d.checkLegacy()
	if d.space != table.Legacy {
		d.checkVector()
	}

	debugf("%s %s: %s", d.space, d.opcodeString(), d.insn.Code)

	d.operands()
	d.assemble()
}

// prefixes consumes legacy and REX prefixes and returns the first byte after
// them.
func (d *decoder) prefixes() byte {
	for {
		b := d.c.Next()

		switch b {
		case 0x26, 0x2e, 0x36, 0x3e:
			if !d.mode64 || !d.segmentFSGS {
				d.segment = segmentPrefixes[(b>>3)&3]
			}

		case 0x64:
			d.segment = register.FS
			d.segmentFSGS = true

		case 0x65:
			d.segment = register.GS
			d.segmentFSGS = true

		case 0x66:
			d.has66 = true
			if d.pp == in.PPNone {
				d.pp = in.PP66
			}

		case 0x67:
			d.has67 = true

		case 0xf0:
			d.lock = true

		case 0xf2:
			d.repne = true
			d.pp = in.PPF2

		case 0xf3:
			d.repe = true
			d.pp = in.PPF3

		default:
			if d.mode64 && in.IsRex(b) {
				x := in.RexBits(b)
				d.rex = true
				d.w = x.W()
				d.extR = x.Ext(in.RexR)
				d.extX = x.Ext(in.RexX)
				d.extB = x.Ext(in.RexB)
				continue
			}

			debugf("prefixes: segment=%s 66=%v 67=%v lock=%v repe=%v repne=%v rex=%v", d.segment, d.has66, d.has67, d.lock, d.repe, d.repne, d.rex)
			return b
		}

		// REX is ignored unless it immediately precedes the opcode.
		d.rex = false
		d.w = false
		d.extR = 0
		d.extX = 0
		d.extB = 0
	}
}

// ES, CS, SS, DS in the order of their prefix bytes 26, 2E, 36, 3E.
var segmentPrefixes = [4]register.Register{register.ES, register.CS, register.SS, register.DS}

func (d *decoder) sizes() {
	d.opSize = d.baseOpSize()
	if d.has66 && d.opSize != size64 {
		if d.opSize == size16 {
			d.opSize = size32
		} else {
			d.opSize = size16
		}
	}

	d.addrSize = d.defaultAddrSize
	if d.has67 {
		switch d.defaultAddrSize {
		case size16:
			d.addrSize = size32

		case size32:
			d.addrSize = size16

		case size64:
			d.addrSize = size32
		}
	}
}

// baseOpSize ignores the operand-size prefix.
func (d *decoder) baseOpSize() uint8 {
	if d.mode64 && d.w {
		return size64
	}
	return d.defaultOpSize
}

// escape reads the rest of a legacy 0F opcode.
func (d *decoder) escape() {
	d.m = in.Map0F
	d.op = d.c.Next()

	switch d.op {
	case 0x38:
		d.m = in.Map0F38
		d.op = d.c.Next()

	case 0x3a:
		d.m = in.Map0F3A
		d.op = d.c.Next()
	}
}

func (d *decoder) resolve() {
	keys := table.Keys{
		PP:     d.pp,
		ModRM:  d.modrm,
		W:      d.w,
		L:      d.l,
		OpSize: d.opSize,
		Mode64: d.mode64,
	}

	if d.space == table.EVEX {
		keys.Rounding = d.modrm.IsReg() && d.bcst
		if d.l == 3 && !keys.Rounding {
			panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "reserved vector length"))
		}
	}

	insn, mandatory, err := table.Resolve(&d.entry.Node, &keys)
	if err != nil {
		if d.space == table.EVEX && d.l == 3 {
			panic(errors.Errorf(errors.ErrInvalidVexEvexEncoding, "%s: rounding control not supported", d.opcodeString()))
		}
		if d.entry.HasModRM {
			panic(errors.Errorf(errors.ErrUnknownOpcode, "%s /%d", d.opcodeString(), d.modrm.Reg()))
		}
		panic(errors.Errorf(errors.ErrUnknownOpcode, "%s", d.opcodeString()))
	}

	if mandatory && d.space == table.Legacy {
		switch d.pp {
		case in.PP66:
			d.opSize = d.baseOpSize()

		case in.PPF3:
			d.repe = false

		case in.PPF2:
			d.repne = false
		}
	}

	d.insn = insn
}

func (d *decoder) checkLegacy() {
	insn := d.insn

	if d.lock {
		if !insn.Has(table.Lockable) {
			panic(errors.Errorf(errors.ErrUnknownOpcode, "lock prefix with %s", insn.Code))
		}
		if d.modrm.IsReg() {
			panic(errors.Errorf(errors.ErrInvalidModRM, "lock prefix with register destination"))
		}
	}

	if d.entry.HasModRM {
		if insn.Has(table.RegOnly) && !d.modrm.IsReg() {
			panic(errors.Errorf(errors.ErrInvalidModRM, "%s requires register operand", insn.Code))
		}

		for _, op := range insn.Ops {
			if op == table.Mem && d.modrm.IsReg() {
				panic(errors.Errorf(errors.ErrInvalidModRM, "%s requires memory operand", insn.Code))
			}
		}
	}
}

func (d *decoder) opcodeString() string {
	var prefix string

	switch d.m {
	case in.Map0F:
		prefix = "0F"

	case in.Map0F38:
		prefix = "0F38"

	case in.Map0F3A:
		prefix = "0F3A"
	}

	if d.pp != in.PPNone {
		prefix = d.pp.String() + " " + prefix
	}

	return prefix + hexByte(d.op)
}

func hexByte(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&15]})
}
