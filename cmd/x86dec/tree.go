// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/tsavola/x86dec"
	"github.com/tsavola/x86dec/register"
	"github.com/xlab/treeprint"
)

func instructionTree(insn x86dec.Instruction) treeprint.Tree {
	t := treeprint.New()
	t.SetValue(fmt.Sprintf("%x: %s", insn.IP(), insn))

	t.AddMetaNode("code", insn.Code())
	t.AddMetaNode("length", insn.Len())
	t.AddMetaNode("encoding", insn.Encoding())

	if n := insn.VectorLength(); n != 0 {
		t.AddMetaNode("vector length", n)
	}

	if insn.OpCount() > 0 {
		ops := t.AddBranch("operands")

		for i := 0; i < insn.OpCount(); i++ {
			switch kind := insn.OpKind(i); kind {
			case x86dec.OpKindRegister:
				ops.AddMetaNode(kind, insn.OpRegister(i))

			case x86dec.OpKindMemory:
				mem := ops.AddMetaBranch(kind, insn.MemorySize())
				mem.AddMetaNode("segment", insn.MemorySegment())
				if r := insn.MemoryBase(); r != register.None {
					mem.AddMetaNode("base", r)
				}
				if r := insn.MemoryIndex(); r != register.None {
					mem.AddMetaNode("index", fmt.Sprintf("%s*%d", r, insn.MemoryIndexScale()))
				}
				if n := insn.MemoryDisplSize(); n != 0 {
					mem.AddMetaNode(fmt.Sprintf("displacement (%d bytes)", n), fmt.Sprintf("%#x", insn.MemoryDisplacement()))
				}
				if insn.IsBroadcast() {
					mem.AddNode("broadcast")
				}

			case x86dec.OpKindImmediate8:
				ops.AddMetaNode(kind, fmt.Sprintf("%#x", insn.Immediate8()))

			default:
				ops.AddMetaNode(kind, fmt.Sprintf("%#x", insn.NearBranchTarget()))
			}
		}
	}

	if r := insn.OpMask(); r != register.None {
		mask := t.AddMetaBranch("opmask", r)
		if insn.ZeroingMasking() {
			mask.AddNode("zeroing")
		}
	}

	if rc := insn.RoundingControl(); rc != x86dec.RoundNone {
		t.AddMetaNode("rounding", rc)
	}
	if insn.SuppressAllExceptions() {
		t.AddNode("suppress all exceptions")
	}

	var prefixes []string
	if r := insn.SegmentPrefix(); r != register.None {
		prefixes = append(prefixes, r.String())
	}
	if insn.HasLockPrefix() {
		prefixes = append(prefixes, "lock")
	}
	if insn.HasRepePrefix() {
		prefixes = append(prefixes, "repe")
	}
	if insn.HasRepnePrefix() {
		prefixes = append(prefixes, "repne")
	}
	if len(prefixes) > 0 {
		t.AddMetaNode("prefixes", prefixes)
	}

	return t
}
