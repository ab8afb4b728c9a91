// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"github.com/tsavola/x86dec/code"
	"github.com/tsavola/x86dec/memsize"
)

var invalid Node

func leaf(c code.Code, mem memsize.MemorySize, flags Flags, ops ...Operand) Node {
	return Node{Kind: Leaf, Insn: &Insn{Code: c, Ops: ops, Mem: mem, Flags: flags}}
}

func evex(c code.Code, tuple Tuple, mem, bcst memsize.MemorySize, flags Flags, ops ...Operand) Node {
	return Node{Kind: Leaf, Insn: &Insn{Code: c, Ops: ops, Mem: mem, Bcst: bcst, Tuple: tuple, Flags: flags}}
}

func node(k Kind, sub ...Node) Node {
	return Node{Kind: k, Sub: sub}
}

// prefix node has entries for NP, 66, F3 and F2.
func prefix(np, p66, pf3, pf2 Node) Node { return node(ByPrefix, np, p66, pf3, pf2) }

func only66(n Node) Node { return prefix(invalid, n, invalid, invalid) }
func onlyNP(n Node) Node { return prefix(n, invalid, invalid, invalid) }

func w(w0, w1 Node) Node { return node(ByW, w0, w1) }

// group node is keyed by ModRM.reg.
func group(subs map[uint8]Node) Node {
	n := Node{Kind: ByReg, Sub: make([]Node, 8)}
	for reg, sub := range subs {
		n.Sub[reg] = sub
	}
	return n
}

func entry(n Node) Entry   { return Entry{true, n} }
func noModRM(n Node) Entry { return Entry{false, n} }
