// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free connection and request counting
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned value that can be changed from several goroutines
type Counter uint64

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Acquire - increment only while the value is below limit
//
// every successful Acquire must be paired with a Release
func (ic *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(ic))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), n, n+1) {
			return true
		}
	}
}

// Release - undo a successful Acquire
func (ic *Counter) Release() {
	ic.Decrement()
}
