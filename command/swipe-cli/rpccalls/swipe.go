// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/swiped/ledger"
	"github.com/bitmark-inc/swiped/rpc/node"
	"github.com/bitmark-inc/swiped/rpc/swipe"
)

// SetDefaultSwapAmount - store the preferred swap amount
func (c *Client) SetDefaultSwapAmount(amount uint64) (*swipe.AmountReply, error) {
	arguments := swipe.AmountArguments{
		Caller: c.caller,
		Amount: amount,
	}
	var reply swipe.AmountReply
	if err := c.call("Swipe.SetDefaultSwapAmount", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetDefaultSwapAmount - read the preferred swap amount
func (c *Client) GetDefaultSwapAmount() (*swipe.AmountReply, error) {
	arguments := swipe.CallerArguments{
		Caller: c.caller,
	}
	var reply swipe.AmountReply
	if err := c.call("Swipe.GetDefaultSwapAmount", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Deposit - credit ICP
func (c *Client) Deposit(amount uint64) (*ledger.TransactionResult, error) {
	arguments := swipe.AmountArguments{
		Caller: c.caller,
		Amount: amount,
	}
	var reply ledger.TransactionResult
	if err := c.call("Swipe.Deposit", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetICPBalance - ICP balance of the caller
func (c *Client) GetICPBalance() (*swipe.BalanceReply, error) {
	arguments := swipe.CallerArguments{
		Caller: c.caller,
	}
	var reply swipe.BalanceReply
	if err := c.call("Swipe.GetICPBalance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SwapICPToToken - convert ICP to tokens of asset
func (c *Client) SwapICPToToken(asset string, amount uint64) (*ledger.TransactionResult, error) {
	return c.swap("Swipe.SwapICPToToken", asset, amount)
}

// SwapTokenToICP - convert tokens of asset to ICP
func (c *Client) SwapTokenToICP(asset string, amount uint64) (*ledger.TransactionResult, error) {
	return c.swap("Swipe.SwapTokenToICP", asset, amount)
}

func (c *Client) swap(method string, asset string, amount uint64) (*ledger.TransactionResult, error) {
	arguments := swipe.SwapArguments{
		Caller: c.caller,
		Asset:  asset,
		Amount: amount,
	}
	var reply ledger.TransactionResult
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Portfolio - all balances of the caller
func (c *Client) Portfolio() (*ledger.Portfolio, error) {
	arguments := swipe.CallerArguments{
		Caller: c.caller,
	}
	var reply ledger.Portfolio
	if err := c.call("Swipe.Portfolio", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TokenBalance - balance of a single asset
func (c *Client) TokenBalance(asset string) (*swipe.BalanceReply, error) {
	arguments := swipe.TokenArguments{
		Caller: c.caller,
		Asset:  asset,
	}
	var reply swipe.BalanceReply
	if err := c.call("Swipe.TokenBalance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UsersCount - number of account records
func (c *Client) UsersCount() (*swipe.CountReply, error) {
	arguments := swipe.CallerArguments{
		Caller: c.caller,
	}
	var reply swipe.CountReply
	if err := c.call("Swipe.UsersCount", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Whoami - the identity as seen by the server
func (c *Client) Whoami() (*swipe.WhoamiReply, error) {
	arguments := swipe.CallerArguments{
		Caller: c.caller,
	}
	var reply swipe.WhoamiReply
	if err := c.call("Swipe.Whoami", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Greet - greeting with the current balances
func (c *Client) Greet(name string) (*swipe.GreetReply, error) {
	arguments := swipe.GreetArguments{
		Caller: c.caller,
		Name:   name,
	}
	var reply swipe.GreetReply
	if err := c.call("Swipe.Greet", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetInfo - request status from swiped
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
