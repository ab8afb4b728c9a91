// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table contains the opcode maps and the descriptor walker.
//
// An opcode map entry is a tree of nodes.  Inner nodes are resolved using
// fields which are known only after the opcode byte (mandatory prefix, ModRM,
// W, vector length, operand size); leaves describe a concrete instruction
// form.
package table

import (
	"github.com/tsavola/x86dec/code"
	"github.com/tsavola/x86dec/internal/errors"
	"github.com/tsavola/x86dec/internal/in"
	"github.com/tsavola/x86dec/memsize"
)

type Space uint8

const (
	Legacy = Space(iota)
	VEX
	EVEX
)

var spaceStrings = [...]string{"legacy", "VEX", "EVEX"}

func (s Space) String() string { return spaceStrings[s] }

type Kind uint8

const (
	Invalid  = Kind(iota)
	Leaf     // Insn
	ByPrefix // Sub[pp]
	ByReg    // Sub[ModRM.reg]
	ByW      // Sub[W]
	ByL      // Sub[L] or Sub[L'L]
	ByOpSize // Sub[0] 16-bit, Sub[1] 32-bit, Sub[2] 64-bit
	ByBranch // like ByOpSize, but always 64-bit in 64-bit mode
)

type Node struct {
	Kind Kind
	Insn *Insn
	Sub  []Node
}

type Entry struct {
	HasModRM bool
	Node
}

type Flags uint8

const (
	RegOnly  = Flags(1 << iota) // ModRM.rm must encode a register
	Lockable                    // LOCK allowed with memory destination
	Masked                      // EVEX opmask allowed
	Zeroing                     // EVEX zeroing-masking allowed
	ER                          // EVEX embedded rounding with register operand
	SAE                         // EVEX suppress-all-exceptions with register operand
)

// Insn describes an instruction form.
type Insn struct {
	Code  code.Code
	Ops   []Operand
	Mem   memsize.MemorySize // when ModRM.rm is memory
	Bcst  memsize.MemorySize // when EVEX.b is set and ModRM.rm is memory
	Tuple Tuple
	Flags Flags
}

func (insn *Insn) Has(f Flags) bool { return insn.Flags&f != 0 }

// HasVvvv tells if an operand is encoded in VEX.vvvv or EVEX.vvvv.
func (insn *Insn) HasVvvv() bool {
	for _, op := range insn.Ops {
		if op.IsVvvv() {
			return true
		}
	}
	return false
}

// Keys for resolving a node.
type Keys struct {
	PP     in.PP
	ModRM  in.ModRM
	W      bool
	L      uint8 // L'L for EVEX
	OpSize uint8 // 0, 1 or 2
	Mode64 bool

	// Rounding is set for EVEX register forms with EVEX.b set: L'L may hold
	// a rounding mode, in which case the 512-bit form is selected.
	Rounding bool
}

// Resolve walks from n to a leaf.  The mandatory result tells if a ByPrefix
// node was passed.
func Resolve(n *Node, k *Keys) (insn *Insn, mandatory bool, err error) {
	for {
		var i int

		switch n.Kind {
		case Leaf:
			insn = n.Insn
			return

		case ByPrefix:
			i = int(k.PP)
			mandatory = true

		case ByReg:
			i = int(k.ModRM.Reg())

		case ByW:
			if k.W {
				i = 1
			}

		case ByL:
			if k.Rounding && len(n.Sub) > 2 {
				if x, _, e := Resolve(&n.Sub[2], k); e == nil && x.Has(ER|SAE) {
					insn = x
					return
				}
			}
			i = int(k.L)

		case ByOpSize:
			i = int(k.OpSize)

		case ByBranch:
			i = int(k.OpSize)
			if k.Mode64 {
				i = 2
			}

		default:
			err = errors.ErrUnknownOpcode
			return
		}

		if i >= len(n.Sub) {
			err = errors.ErrUnknownOpcode
			return
		}
		n = &n.Sub[i]
	}
}

// Lookup an opcode map entry.
func Lookup(s Space, m in.Map, op byte) *Entry {
	var t *[256]Entry

	switch s {
	case Legacy:
		switch m {
		case in.MapNone:
			t = &oneByte
		case in.Map0F:
			t = &legacy0F
		}

	case VEX:
		if m == in.Map0F {
			t = &vex0F
		}

	case EVEX:
		switch m {
		case in.Map0F:
			t = &evex0F
		case in.Map0F3A:
			t = &evex0F3A
		}
	}

	if t == nil {
		return &invalidEntry
	}
	return &t[op]
}

var invalidEntry Entry
