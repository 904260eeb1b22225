// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/counter"
	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/ledger"
	"github.com/bitmark-inc/swiped/rpc/certificate"
	"github.com/bitmark-inc/swiped/rpc/handler"
	"github.com/bitmark-inc/swiped/rpc/listeners"
	"github.com/bitmark-inc/swiped/rpc/ratelimit"
	"github.com/bitmark-inc/swiped/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// RateLimitConfiguration - requests per second and burst size
// shared by all Swipe calls
type RateLimitConfiguration struct {
	Limit float64 `gluamapper:"limit" json:"limit"`
	Burst int     `gluamapper:"burst" json:"burst"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	limiter *rate.Limiter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection count of the TLS listeners
var connectionCountRPC counter.Counter

// Initialise - create the servers and start listening
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	rateLimitConfiguration *RateLimitConfiguration,
	version string,
	service ledger.Service,
	readOnly bool,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	limiter := rate.NewLimiter(rate.Limit(rateLimitConfiguration.Limit), rateLimitConfiguration.Burst)
	if err := ratelimit.Update(limiter, rateLimitConfiguration.Limit, rateLimitConfiguration.Burst); nil != err {
		log.Errorf("invalid rate limit: %+v", *rateLimitConfiguration)
		return err
	}
	globalData.limiter = limiter

	s := server.Create(log, version, &connectionCountRPC, service, limiter, readOnly)

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLSConfig, httpsFingerprint, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		hdlr := handler.New(
			log,
			s,
			time.Now(),
			version,
			httpsConfiguration.MaximumConnections,
			service,
			&connectionCountRPC,
		)

		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLSConfig, hdlr)
		if nil != err {
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// SetRateLimit - apply new limits to the running server
func SetRateLimit(configuration *RateLimitConfiguration) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	err := ratelimit.Update(globalData.limiter, configuration.Limit, configuration.Burst)
	if nil != err {
		return err
	}
	globalData.log.Infof("rate limit: %g/s  burst: %d", configuration.Limit, configuration.Burst)
	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
