// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86dec

import (
	"fmt"
)

const debug = false

func debugf(format string, args ...interface{}) {
	if debug {
		fmt.Printf(format+"\n", args...)
	}
}
