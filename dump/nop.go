// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo
// +build !cgo

package dump

import (
	"errors"
	"io"

	"github.com/tsavola/x86dec"
)

// Capstone requires cgo.
func Capstone(w io.Writer, config x86dec.Config, data []byte) error {
	return errors.New("dump.Capstone requires cgo")
}
