// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/counter"
	"github.com/bitmark-inc/swiped/ledger"
	"github.com/bitmark-inc/swiped/rpc/node"
	"github.com/bitmark-inc/swiped/rpc/swipe"
)

// Create - an RPC server with all services registered
//
// limiter is shared so that a configuration reload can adjust it
func Create(log *logger.L, version string, rpcCount *counter.Counter, service ledger.Service, limiter *rate.Limiter, readOnly bool) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(swipe.New(log, limiter, service, readOnly))
	_ = server.Register(node.New(log, start, version, rpcCount, service, readOnly))

	return server
}
