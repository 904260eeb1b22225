// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/counter"
	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/ledger"
	"github.com/bitmark-inc/swiped/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	ReadOnly bool
	Ledger   ledger.Service
	counter  *counter.Counter
}

// New - create the node information service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, service ledger.Service, readOnly bool) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		ReadOnly: readOnly,
		Ledger:   service,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Mode    string `json:"mode"`
	RPCs    uint64 `json:"rpcs"`
	Users   uint64 `json:"users"`
	Tokens  uint64 `json:"tokens"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger {
		return fault.ErrNotInitialised
	}

	reply.Mode = "Normal"
	if node.ReadOnly {
		reply.Mode = "ReadOnly"
	}
	reply.RPCs = node.counter.Uint64()
	reply.Users = node.Ledger.UsersCount()
	reply.Tokens = node.Ledger.TokenEntriesCount()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
