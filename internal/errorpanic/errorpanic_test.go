// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errorpanic

import (
	"io"
	"testing"

	"github.com/tsavola/x86dec/internal/errors"
	"golang.org/x/xerrors"
)

func TestHandleNil(t *testing.T) {
	if err := Handle(nil); err != nil {
		t.Error(err)
	}
}

func TestHandleEOF(t *testing.T) {
	err := Handle(errors.ErrUnexpectedEOF)
	if err != errors.ErrUnexpectedEOF {
		t.Error(err)
	}
	if !xerrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error(err)
	}
}

func TestHandleDecodeError(t *testing.T) {
	if err := Handle(errors.ErrUnknownOpcode); err != errors.ErrUnknownOpcode {
		t.Error(err)
	}
}

func TestHandleRepanic(t *testing.T) {
	for _, x := range []interface{}{
		"string",
		func() (err error) {
			defer func() { err = recover().(error) }()
			var a []int
			_ = a[len(a)]
			return
		}(),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Handle(%v) did not panic", x)
				}
			}()
			Handle(x)
		}()
	}
}
