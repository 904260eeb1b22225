// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/counter"
	"github.com/bitmark-inc/swiped/identity"
	"github.com/bitmark-inc/swiped/ledger"
	"github.com/bitmark-inc/swiped/rpc/certificate"
	"github.com/bitmark-inc/swiped/rpc/fixtures"
	"github.com/bitmark-inc/swiped/rpc/mocks"
	"github.com/bitmark-inc/swiped/rpc/server"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// start a TLS JSON-RPC server backed by the service and return its address
func startServer(t *testing.T, service ledger.Service) string {
	cer, key, err := fixtures.CertificateAndKey()
	if nil != err {
		t.Fatalf("generate certificate with error: %s", err)
	}
	log := logger.New(fixtures.LogCategory)
	tlsConfig, _, err := certificate.Get(log, "test", cer, key)
	if nil != err {
		t.Fatalf("certificate with error: %s", err)
	}

	listener, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	if nil != err {
		t.Fatalf("listen with error: %s", err)
	}
	t.Cleanup(func() { _ = listener.Close() })

	c := counter.Counter(0)
	s := server.Create(log, "1.0", &c, service, nil, false)

	go func() {
		for {
			conn, err := listener.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return listener.Addr().String()
}

func run(arguments ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"swipe-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run("version")
	assert.Nil(t, err, "wrong version")
	assert.Equal(t, version+"\n", out, "wrong output")
}

func TestMissingCaller(t *testing.T) {
	_, _, err := run("-c", "127.0.0.1:1", "balance")
	assert.NotNil(t, err, "missing caller accepted")
}

func TestInvalidCaller(t *testing.T) {
	_, _, err := run("-c", "127.0.0.1:1", "-i", "a:b", "balance")
	assert.NotNil(t, err, "invalid caller accepted")
}

func TestZeroAmountRejectedLocally(t *testing.T) {
	_, _, err := run("-c", "127.0.0.1:1", "-i", "alice", "deposit", "-a", "0")
	assert.NotNil(t, err, "zero amount accepted")
	assert.Contains(t, err.Error(), "invalid amount", "wrong error")
}

func TestMissingAsset(t *testing.T) {
	_, _, err := run("-c", "127.0.0.1:1", "-i", "alice", "swap-in", "-a", "3")
	assert.NotNil(t, err, "missing asset accepted")
}

func TestDepositCommand(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	service := mocks.NewMockService(ctl)
	service.EXPECT().Deposit(identity.Identity("alice"), uint64(25)).Return(&ledger.TransactionResult{
		Success:       true,
		Message:       "Deposit successful",
		NewICPBalance: 25,
	}, nil).Times(1)

	address := startServer(t, service)

	out, _, err := run("-c", address, "-i", "alice", "deposit", "-a", "25")
	assert.Nil(t, err, "wrong deposit")

	var result ledger.TransactionResult
	assert.Nil(t, json.Unmarshal([]byte(out), &result), "wrong json output")
	assert.True(t, result.Success, "wrong success")
	assert.Equal(t, uint64(25), result.NewICPBalance, "wrong balance")
}

func TestSwapOutCommand(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	service := mocks.NewMockService(ctl)
	service.EXPECT().SwapTokenToICP(identity.Identity("bob"), "ckBTC", uint64(4)).Return(&ledger.TransactionResult{
		Success: false,
		Message: "Token not found",
	}, nil).Times(1)

	address := startServer(t, service)

	out, stderr, err := run("-v", "-c", address, "-i", "bob", "swap-out", "-t", "ckBTC", "-a", "4")
	assert.NotNil(t, err, "refused swap must fail the command")
	assert.Contains(t, out, "Token not found", "wrong output")
	assert.Contains(t, stderr, "asset: ckBTC", "missing verbose output")
}

func TestInfoCommand(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	service := mocks.NewMockService(ctl)
	service.EXPECT().UsersCount().Return(uint64(3)).Times(1)
	service.EXPECT().TokenEntriesCount().Return(uint64(5)).Times(1)

	address := startServer(t, service)

	out, _, err := run("-c", address, "info")
	assert.Nil(t, err, "wrong info")
	assert.Contains(t, out, `"users": 3`, "wrong output")
	assert.Contains(t, out, `"tokens": 5`, "wrong output")
}

func TestPrintJson(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := printJson(buffer, map[string]string{"asset": "<ck>"})
	assert.Nil(t, err, "wrong printJson")
	assert.Equal(t, "{\n  \"asset\": \"<ck>\"\n}\n", buffer.String(), "wrong output")
}

func TestPrintResult(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := printResult(buffer, &ledger.TransactionResult{Success: true, Message: "ok"})
	assert.Nil(t, err, "successful result is not an error")

	buffer.Reset()
	err = printResult(buffer, &ledger.TransactionResult{Success: false, Message: "Amount must be greater than 0"})
	assert.NotNil(t, err, "refused result must be an error")
	assert.Contains(t, err.Error(), "Amount must be greater than 0", "wrong error")
	assert.Contains(t, buffer.String(), `"success": false`, "result not printed")
}
