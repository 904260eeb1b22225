// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/swiped/identity"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	caller  identity.Identity
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a swiped
func NewClient(connect string, caller identity.Identity, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, caller, verbose, handle), nil
}

func newClient(conn net.Conn, caller identity.Identity, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		caller:  caller,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the swiped connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// perform a call, showing the exchange when verbose
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		fmt.Fprintf(c.handle, "%s: %+v\n", method, arguments)
	}
	if err := c.client.Call(method, arguments, reply); nil != err {
		return err
	}
	if c.verbose {
		fmt.Fprintf(c.handle, "reply: %+v\n", reply)
	}
	return nil
}
