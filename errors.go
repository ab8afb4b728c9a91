// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"github.com/tsavola/x86dec/internal/errors"
	"golang.org/x/xerrors"
)

// Decode errors.  Errors returned by decoding functions wrap one of these;
// use xerrors.Is (or errors.Is) to check the kind.  All of them implement
// the DecodeError marker method.
var (
	ErrUnexpectedEOF          error = errors.ErrUnexpectedEOF
	ErrInstructionTooLong     error = errors.ErrInstructionTooLong
	ErrUnknownOpcode          error = errors.ErrUnknownOpcode
	ErrInvalidModRM           error = errors.ErrInvalidModRM
	ErrInvalidVexEvexEncoding error = errors.ErrInvalidVexEvexEncoding
)

// Configuration errors.  These are not decode errors.
var (
	ErrInvalidBitness = xerrors.New("x86dec: bitness must be 16, 32 or 64")
	ErrInvalidOffset  = xerrors.New("x86dec: offset out of range")
)

// DecodeError is implemented by all decode errors.
type DecodeError interface {
	error
	DecodeError() string
}
