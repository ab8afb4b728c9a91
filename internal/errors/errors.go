// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"io"
)

// Kind of decode error.  The values are comparable sentinels.
type Kind string

const (
	ErrInstructionTooLong     = Kind("instruction too long")
	ErrUnknownOpcode          = Kind("unknown opcode")
	ErrInvalidModRM           = Kind("invalid ModRM")
	ErrInvalidVexEvexEncoding = Kind("invalid VEX/EVEX encoding")
)

func (k Kind) Error() string       { return string(k) }
func (k Kind) DecodeError() string { return string(k) }

// ErrUnexpectedEOF is a decode error which is also io.ErrUnexpectedEOF.
var ErrUnexpectedEOF unexpectedEOF

type unexpectedEOF struct{}

func (unexpectedEOF) Error() string       { return io.ErrUnexpectedEOF.Error() }
func (unexpectedEOF) DecodeError() string { return io.ErrUnexpectedEOF.Error() }
func (unexpectedEOF) Unwrap() error       { return io.ErrUnexpectedEOF }

type decodeError struct {
	text string
	kind error
}

// Errorf returns a detailed error which unwraps to kind.
func Errorf(kind Kind, format string, args ...interface{}) error {
	return &decodeError{fmt.Sprintf(format, args...), kind}
}

func (e *decodeError) Error() string       { return e.kind.Error() + ": " + e.text }
func (e *decodeError) DecodeError() string { return e.Error() }
func (e *decodeError) Unwrap() error       { return e.kind }
