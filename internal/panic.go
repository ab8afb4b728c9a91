// Copyright (c) 2021 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

// Panic configures public x86dec API behavior.  If this is changed to "1",
// decode functions will panic instead of returning error values.  The stack
// traces can be helpful for debugging table walks.
//
// This can be set during linking:
//
//	go build -ldflags="-X github.com/tsavola/x86dec/internal.Panic=1"
//
// This is not a stable feature: it may change or disappear at any time.
var Panic string

func DontPanic() bool {
	return Panic == ""
}
