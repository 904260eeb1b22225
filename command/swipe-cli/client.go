// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/swiped/command/swipe-cli/rpccalls"
)

// connect using the global options
func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.caller, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}
