// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"time"
)

// SetNow - override the clock, returns a function to restore it
func SetNow(now func() time.Time) func() {
	saved := timeNow
	timeNow = now
	return func() { timeNow = saved }
}
