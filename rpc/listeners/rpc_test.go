// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/counter"
	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/rpc/certificate"
	"github.com/bitmark-inc/swiped/rpc/fixtures"
	"github.com/bitmark-inc/swiped/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func testTLSConfig(t *testing.T) (*tls.Config, [32]byte) {
	cer, key, err := fixtures.CertificateAndKey()
	if nil != err {
		t.Fatalf("generate certificate with error: %s", err)
	}

	tlsConfig, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}
	return tlsConfig, fin
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register with error: %s", err)
	}

	tlsConfig, fin := testTLSConfig(t)

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		tlsConfig,
		fin,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")

	c, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRpcListenerServeWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2150"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerServeWhenEmptyListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerServeWhenErrorListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	for _, listen := range []string{"1", "localhost:2150", "[1:2:3:4:5:6:7:8]::1"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 5,
			Listen:             []string{listen},
		}

		count := counter.Counter(0)

		_, err := listeners.NewRPC(
			&con,
			logger.New(fixtures.LogCategory),
			&count,
			rpc.NewServer(),
			&tls.Config{},
			[32]byte{},
		)
		assert.Equal(t, fault.ErrInvalidIPAddress, err, "wrong error for: %q", listen)
	}
}

func TestRpcListenerServeWhenListenAll(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"*:1234"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Nil(t, err, "wrong NewRPC")
}

func TestRpcListenerServeWhenListenIPv6(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"[::1]:1234"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Nil(t, err, "wrong NewRPC")
}

func TestRpcListenerServeWhenInvalidTLSConfig(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.NotNil(t, err, "wrong Serve")
	assert.Contains(t, err.Error(), "tls", "wrong error message")
}
