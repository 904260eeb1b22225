// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package swipe

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/identity"
	"github.com/bitmark-inc/swiped/ledger"
	"github.com/bitmark-inc/swiped/rpc/ratelimit"
)

const (
	rateLimitSwipe = 200
	rateBurstSwipe = 100
)

// Swipe - type for the RPC
type Swipe struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Service
	ReadOnly bool
}

// NewLimiter - limiter with the default rate
func NewLimiter() *rate.Limiter {
	return rate.NewLimiter(rateLimitSwipe, rateBurstSwipe)
}

// New - create the RPC service
func New(log *logger.L, limiter *rate.Limiter, service ledger.Service, readOnly bool) *Swipe {
	if nil == limiter {
		limiter = NewLimiter()
	}
	return &Swipe{
		Log:      log,
		Limiter:  limiter,
		Ledger:   service,
		ReadOnly: readOnly,
	}
}

// arguments and replies
// ---------------------

// CallerArguments - only the identity of the caller
type CallerArguments struct {
	Caller identity.Identity `json:"caller"`
}

// AmountArguments - caller and an amount
type AmountArguments struct {
	Caller identity.Identity `json:"caller"`
	Amount uint64            `json:"amount"`
}

// SwapArguments - caller, asset and amount
type SwapArguments struct {
	Caller identity.Identity `json:"caller"`
	Asset  string            `json:"asset"`
	Amount uint64            `json:"amount"`
}

// TokenArguments - caller and asset
type TokenArguments struct {
	Caller identity.Identity `json:"caller"`
	Asset  string            `json:"asset"`
}

// GreetArguments - caller and the name to greet
type GreetArguments struct {
	Caller identity.Identity `json:"caller"`
	Name   string            `json:"name"`
}

// AmountReply - default swap amount
type AmountReply struct {
	Amount uint64 `json:"amount"`
}

// BalanceReply - an ICP or token balance
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// CountReply - number of users
type CountReply struct {
	Count uint64 `json:"count"`
}

// WhoamiReply - the identity as seen by the server
type WhoamiReply struct {
	Identity identity.Identity `json:"identity"`
}

// GreetReply - the greeting text
type GreetReply struct {
	Greeting string `json:"greeting"`
}

// preferences
// -----------

// SetDefaultSwapAmount - store the preferred swap amount
func (swipe *Swipe) SetDefaultSwapAmount(arguments *AmountArguments, reply *AmountReply) error {
	if err := swipe.mutate("SetDefaultSwapAmount", arguments); nil != err {
		return err
	}

	amount, err := swipe.Ledger.SetDefaultSwapAmount(arguments.Caller, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Amount = amount
	return nil
}

// GetDefaultSwapAmount - read the preferred swap amount
func (swipe *Swipe) GetDefaultSwapAmount(arguments *CallerArguments, reply *AmountReply) error {
	if err := ratelimit.Limit(swipe.Limiter); nil != err {
		return err
	}

	amount, err := swipe.Ledger.GetDefaultSwapAmount(arguments.Caller)
	if nil != err {
		return err
	}
	reply.Amount = amount
	return nil
}

// balances
// --------

// Deposit - credit ICP to the caller
func (swipe *Swipe) Deposit(arguments *AmountArguments, reply *ledger.TransactionResult) error {
	if err := swipe.mutate("Deposit", arguments); nil != err {
		return err
	}

	result, err := swipe.Ledger.Deposit(arguments.Caller, arguments.Amount)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// GetICPBalance - ICP balance of the caller
func (swipe *Swipe) GetICPBalance(arguments *CallerArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(swipe.Limiter); nil != err {
		return err
	}

	balance, err := swipe.Ledger.GetICPBalance(arguments.Caller)
	if nil != err {
		return err
	}
	reply.Balance = balance
	return nil
}

// SwapICPToToken - convert ICP to tokens
func (swipe *Swipe) SwapICPToToken(arguments *SwapArguments, reply *ledger.TransactionResult) error {
	if err := swipe.mutate("SwapICPToToken", arguments); nil != err {
		return err
	}

	result, err := swipe.Ledger.SwapICPToToken(arguments.Caller, arguments.Asset, arguments.Amount)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// SwapTokenToICP - convert tokens to ICP
func (swipe *Swipe) SwapTokenToICP(arguments *SwapArguments, reply *ledger.TransactionResult) error {
	if err := swipe.mutate("SwapTokenToICP", arguments); nil != err {
		return err
	}

	result, err := swipe.Ledger.SwapTokenToICP(arguments.Caller, arguments.Asset, arguments.Amount)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Portfolio - all balances of the caller
func (swipe *Swipe) Portfolio(arguments *CallerArguments, reply *ledger.Portfolio) error {
	if err := ratelimit.Limit(swipe.Limiter); nil != err {
		return err
	}

	portfolio, err := swipe.Ledger.Portfolio(arguments.Caller)
	if nil != err {
		return err
	}
	*reply = *portfolio
	return nil
}

// TokenBalance - balance of one asset
func (swipe *Swipe) TokenBalance(arguments *TokenArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(swipe.Limiter); nil != err {
		return err
	}

	balance, err := swipe.Ledger.TokenBalance(arguments.Caller, arguments.Asset)
	if nil != err {
		return err
	}
	reply.Balance = balance
	return nil
}

// diagnostics
// -----------

// UsersCount - number of identities with an account record
func (swipe *Swipe) UsersCount(arguments *CallerArguments, reply *CountReply) error {
	if err := ratelimit.Limit(swipe.Limiter); nil != err {
		return err
	}

	reply.Count = swipe.Ledger.UsersCount()
	return nil
}

// Whoami - echo the caller identity
func (swipe *Swipe) Whoami(arguments *CallerArguments, reply *WhoamiReply) error {
	if err := ratelimit.Limit(swipe.Limiter); nil != err {
		return err
	}
	if !arguments.Caller.IsValid() {
		return fault.ErrInvalidIdentity
	}

	reply.Identity = arguments.Caller
	return nil
}

// Greet - greeting with the current balances
func (swipe *Swipe) Greet(arguments *GreetArguments, reply *GreetReply) error {
	if err := ratelimit.Limit(swipe.Limiter); nil != err {
		return err
	}

	greeting, err := swipe.Ledger.Greet(arguments.Caller, arguments.Name)
	if nil != err {
		return err
	}
	reply.Greeting = greeting
	return nil
}

// common prologue of state changing calls
func (swipe *Swipe) mutate(name string, arguments interface{}) error {
	if err := ratelimit.Limit(swipe.Limiter); nil != err {
		return err
	}
	if swipe.ReadOnly {
		return fault.ErrNotAvailableInReadOnly
	}

	swipe.Log.Infof("Swipe.%s: %+v", name, arguments)
	return nil
}
