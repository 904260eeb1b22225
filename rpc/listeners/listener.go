// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/fault"
)

const minConnectionCount = 1

// Listener - a configured server ready to accept connections
type Listener interface {
	Serve() error
}

// normalise listen addresses and determine the network for each
//
// "*:PORT" is changed to "[::]:PORT" on the assumption that
// this will listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	normalised := make([]string, len(addrs))
	for i, listen := range addrs {
		if 0 == len(listen) {
			log.Errorf("empty listen address")
			return nil, nil, fault.ErrMissingParameters
		}

		normalised[i] = listen
		host, _, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, fault.ErrInvalidIPAddress
		}

		switch {
		case "*" == host:
			normalised[i] = "[::]" + strings.TrimPrefix(listen, "*")
			host = "::"
			networks[i] = "tcp"
		case strings.HasPrefix(listen, "["):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen address: %q is not an IP address", listen)
			return nil, nil, fault.ErrInvalidIPAddress
		}
	}

	return normalised, networks, nil
}
