// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived goroutines that can be
// shut down together
package background

import (
	"sync"
)

// Process - a background process
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	sync.Mutex
	shutdown chan struct{}
	done     sync.WaitGroup
	stopped  bool
}

// Start - start each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	t := &T{
		shutdown: make(chan struct{}),
	}

	t.done.Add(len(processes))
	for _, p := range processes {
		go func(p Process) {
			defer t.done.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Stop - signal all processes and wait for them to finish
//
// a second call does nothing
func (t *T) Stop() {
	t.Lock()
	if t.stopped {
		t.Unlock()
		return
	}
	t.stopped = true
	close(t.shutdown)
	t.Unlock()

	t.done.Wait()
}
