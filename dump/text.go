// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump writes instruction listings.
package dump

import (
	"fmt"
	"io"

	"github.com/tsavola/x86dec"
)

// maxHexWidth is the number of columns used for instruction bytes.
const maxHexWidth = 2 * 10

// Text writes one line per instruction: address, instruction bytes, code and
// Intel syntax.  Undecodable bytes are listed as (bad) one at a time.
func Text(w io.Writer, config x86dec.Config, data []byte) error {
	return listing(w, config, data, nil)
}

// annotator returns extra text for the instruction at an offset.
type annotator func(offset, length int) (text string, mismatch bool)

func listing(w io.Writer, config x86dec.Config, data []byte, annotate annotator) (err error) {
	d, err := x86dec.NewDecoder(config, data)
	if err != nil {
		return
	}

	addrFmt := addressFormat(config.IP, len(data))

	for d.More() {
		offset := d.Offset()
		addr := d.IP()

		var (
			length = 1
			text   = "(bad)"
			name   string
		)

		insn, e := d.Decode()
		if e == nil {
			length = insn.Len()
			text = insn.String()
			name = insn.Code().String()
		}

		_, err = fmt.Fprintf(w, addrFmt+"  %-*x  %-40s  %s", addr, maxHexWidth, data[offset:offset+length], name, text)
		if err != nil {
			return
		}

		if annotate != nil {
			note, mismatch := annotate(offset, length)
			marker := " "
			if mismatch {
				marker = "!"
			}
			if _, err = fmt.Fprintf(w, "\t%s %s", marker, note); err != nil {
				return
			}
		}

		if _, err = fmt.Fprintln(w); err != nil {
			return
		}
	}

	return
}

func addressFormat(ip uint64, size int) string {
	lastAddr := ip + uint64(size)
	addrWidth := (len(fmt.Sprintf("%x", lastAddr)) + 7) &^ 7

	if ip == 0 { // relative
		return fmt.Sprintf("%%%dx", addrWidth)
	}
	return fmt.Sprintf("%%0%dx", addrWidth)
}
