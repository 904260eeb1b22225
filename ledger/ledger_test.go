// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/identity"
	"github.com/bitmark-inc/swiped/ledger"
	"github.com/bitmark-inc/swiped/storage"
)

func TestDefaultSwapAmount(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	n, err := l.GetDefaultSwapAmount(alice)
	assert.Nil(t, err, "get")
	assert.Equal(t, uint64(0), n, "unset default")

	n, err = l.SetDefaultSwapAmount(alice, 25)
	assert.Nil(t, err, "set")
	assert.Equal(t, uint64(25), n, "set result")

	n, err = l.GetDefaultSwapAmount(alice)
	assert.Nil(t, err, "get")
	assert.Equal(t, uint64(25), n, "stored default")

	// setting a preference creates the account without touching balances
	icp, _ := l.GetICPBalance(alice)
	assert.Equal(t, uint64(0), icp, "icp")
	assert.Equal(t, uint64(1), l.UsersCount(), "users count")

	_, err = l.SetDefaultSwapAmount(alice, 0)
	assert.Nil(t, err, "set zero")
	n, _ = l.GetDefaultSwapAmount(alice)
	assert.Equal(t, uint64(0), n, "zero default")
}

func TestSwapTokenToICPInsufficient(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	_, _ = l.Deposit(alice, 100)
	_, _ = l.SwapICPToToken(alice, "XTK", 10)

	result, err := l.SwapTokenToICP(alice, "XTK", 11)
	assert.Nil(t, err, "swap")
	assert.False(t, result.Success, "swap succeeded")
	assert.Equal(t, "Insufficient XTK token balance. Available: 10, Required: 11", result.Message, "message")
	assert.Equal(t, uint64(0), result.NewICPBalance, "icp is reported as zero")
	assert.Equal(t, uint64(10), *result.NewTokenBalance, "token")

	icp, _ := l.GetICPBalance(alice)
	assert.Equal(t, uint64(90), icp, "icp changed")
}

func TestInvalidAsset(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	_, _ = l.Deposit(alice, 100)

	result, err := l.SwapICPToToken(alice, "", 10)
	assert.Nil(t, err, "swap")
	assert.False(t, result.Success, "empty asset accepted")

	result, err = l.SwapTokenToICP(alice, "", 10)
	assert.Nil(t, err, "swap")
	assert.False(t, result.Success, "empty asset accepted")

	_, err = l.TokenBalance(alice, "")
	assert.Equal(t, fault.ErrInvalidAsset, err, "empty asset lookup")

	icp, _ := l.GetICPBalance(alice)
	assert.Equal(t, uint64(100), icp, "icp changed")
}

func TestInvalidIdentity(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	bad := identity.Identity("a:b")

	_, err := l.Deposit(bad, 1)
	assert.Equal(t, fault.ErrInvalidIdentity, err, "deposit")
	_, err = l.SwapICPToToken(bad, "XTK", 1)
	assert.Equal(t, fault.ErrInvalidIdentity, err, "swap in")
	_, err = l.SwapTokenToICP(bad, "XTK", 1)
	assert.Equal(t, fault.ErrInvalidIdentity, err, "swap out")
	_, err = l.GetICPBalance(bad)
	assert.Equal(t, fault.ErrInvalidIdentity, err, "balance")
	_, err = l.Portfolio("")
	assert.Equal(t, fault.ErrInvalidIdentity, err, "portfolio")
	_, err = l.SetDefaultSwapAmount(bad, 1)
	assert.Equal(t, fault.ErrInvalidIdentity, err, "set default")
	_, err = l.Greet(bad, "bob")
	assert.Equal(t, fault.ErrInvalidIdentity, err, "greet")
}

// absence is zero: unknown identities and untouched assets are not errors
func TestAbsenceIsZeroNotNotFound(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	balance, err := l.TokenBalance(alice, "NEVER")
	assert.Nil(t, err, "untouched asset must not be ErrTokenNotFound")
	assert.Equal(t, uint64(0), balance, "untouched asset")

	portfolio, err := l.Portfolio(alice)
	assert.Nil(t, err, "unknown identity must not be ErrUserNotFound")
	assert.Equal(t, ledger.Portfolio{TokenBalances: []ledger.TokenBalance{}}, *portfolio, "empty portfolio")
}

// total swaps counts ICP to token volume only
func TestTotalSwapsIgnoresSwapOut(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	_, _ = l.Deposit(alice, 100)
	_, _ = l.SwapICPToToken(alice, "XTK", 40)
	_, _ = l.SwapTokenToICP(alice, "XTK", 15)

	portfolio, err := l.Portfolio(alice)
	assert.Nil(t, err, "portfolio")
	assert.Equal(t, uint64(40), portfolio.TotalSwaps, "swap out changed total swaps")
	assert.Equal(t, uint64(75), portfolio.ICPBalance, "icp")
	assert.Equal(t, []ledger.TokenBalance{{Asset: "XTK", Balance: 25}}, portfolio.TokenBalances, "tokens")
}

func TestOverflowIsRejected(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	result, err := l.Deposit(alice, math.MaxUint64)
	assert.Nil(t, err, "deposit")
	assert.True(t, result.Success, "maximum deposit failed")

	result, err = l.Deposit(alice, 1)
	assert.Nil(t, err, "overflow must not be an error")
	assert.False(t, result.Success, "overflow accepted")
	assert.Equal(t, uint64(math.MaxUint64), result.NewICPBalance, "icp")

	portfolio, _ := l.Portfolio(alice)
	assert.Equal(t, uint64(math.MaxUint64), portfolio.ICPBalance, "icp changed")
	assert.Equal(t, uint64(math.MaxUint64), portfolio.TotalDeposits, "deposits changed")

	// the token balance cannot overflow into the ICP balance either
	_, _ = l.SwapICPToToken(alice, "XTK", 1)
	result, err = l.SwapTokenToICP(alice, "XTK", 1)
	assert.Nil(t, err, "swap out")
	assert.True(t, result.Success, "swap back failed: %s", result.Message)
}

func TestTotalsSaturate(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	_, _ = l.Deposit(alice, math.MaxUint64)
	_, _ = l.SwapICPToToken(alice, "XTK", math.MaxUint64)
	_, _ = l.SwapTokenToICP(alice, "XTK", math.MaxUint64)

	result, err := l.SwapICPToToken(alice, "XTK", 1)
	assert.Nil(t, err, "swap in")
	assert.True(t, result.Success, "payable swap refused: %s", result.Message)
	assert.Equal(t, uint64(math.MaxUint64-1), result.NewICPBalance, "icp")

	_, _ = l.SwapICPToToken(alice, "XTK", math.MaxUint64-1)
	result, err = l.Deposit(alice, 3)
	assert.Nil(t, err, "deposit")
	assert.True(t, result.Success, "payable deposit refused: %s", result.Message)
	assert.Equal(t, uint64(3), result.NewICPBalance, "icp")

	portfolio, _ := l.Portfolio(alice)
	assert.Equal(t, uint64(math.MaxUint64), portfolio.TotalSwaps, "swaps not saturated")
	assert.Equal(t, uint64(math.MaxUint64), portfolio.TotalDeposits, "deposits not saturated")
	assert.Equal(t, []ledger.TokenBalance{{Asset: "XTK", Balance: math.MaxUint64}}, portfolio.TokenBalances, "tokens")
}

func TestTokenEntriesCount(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	assert.Equal(t, uint64(0), l.TokenEntriesCount(), "empty")

	_, _ = l.Deposit(alice, 10)
	_, _ = l.SwapICPToToken(alice, "ABC", 2)
	_, _ = l.SwapICPToToken(alice, "XTK", 3)
	assert.Equal(t, uint64(2), l.TokenEntriesCount(), "two entries")

	// a balance returned to zero is removed
	_, _ = l.SwapTokenToICP(alice, "ABC", 2)
	assert.Equal(t, uint64(1), l.TokenEntriesCount(), "zero entry counted")
}

func TestAccount(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	_, err := l.Account(alice)
	assert.Equal(t, fault.ErrUserNotFound, err, "absent account found")

	_, err = l.Account(identity.Identity("a:b"))
	assert.Equal(t, fault.ErrInvalidIdentity, err, "invalid identity")

	// reads never create the record
	_, _ = l.GetICPBalance(alice)
	_, err = l.Account(alice)
	assert.Equal(t, fault.ErrUserNotFound, err, "getter created an account")

	_, _ = l.Deposit(alice, 8)
	_, _ = l.SetDefaultSwapAmount(alice, 2)
	record, err := l.Account(alice)
	assert.Nil(t, err, "account")
	assert.Equal(t, uint64(8), record.ICPBalance, "icp")
	assert.Equal(t, uint64(8), record.TotalDeposits, "deposits")
	assert.Equal(t, uint64(2), record.DefaultSwapAmount, "default")
}

func TestPortfolio(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	bob := identity.Identity("bob")

	_, _ = l.SetDefaultSwapAmount(alice, 5)
	_, _ = l.Deposit(alice, 100)
	_, _ = l.SwapICPToToken(alice, "ZED", 10)
	_, _ = l.SwapICPToToken(alice, "ABC", 20)
	_, _ = l.Deposit(bob, 7)
	_, _ = l.SwapICPToToken(bob, "ABC", 7)

	portfolio, err := l.Portfolio(alice)
	assert.Nil(t, err, "portfolio")
	assert.Equal(t, ledger.Portfolio{
		ICPBalance:        70,
		DefaultSwapAmount: 5,
		TokenBalances: []ledger.TokenBalance{
			{Asset: "ABC", Balance: 20},
			{Asset: "ZED", Balance: 10},
		},
		TotalDeposits: 100,
		TotalSwaps:    30,
	}, *portfolio, "alice")

	portfolio, err = l.Portfolio(bob)
	assert.Nil(t, err, "portfolio")
	assert.Equal(t, uint64(0), portfolio.ICPBalance, "bob icp")
	assert.Equal(t, []ledger.TokenBalance{{Asset: "ABC", Balance: 7}}, portfolio.TokenBalances, "bob tokens")

	assert.Equal(t, uint64(2), l.UsersCount(), "users count")
}

func TestGreet(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	_, _ = l.Deposit(alice, 12)
	_, _ = l.SetDefaultSwapAmount(alice, 3)

	s, err := l.Greet(alice, "Alice")
	assert.Nil(t, err, "greet")
	assert.Equal(t, "Hello, Alice! Your ICP balance: 12 ICP, Default swap amount: 3 ICP", s, "greeting")
}

func TestGettersAreIdempotent(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	_, _ = l.Deposit(alice, 9)
	_, _ = l.SwapICPToToken(alice, "XTK", 4)

	before, _ := l.Portfolio(alice)
	for i := 0; i < 3; i += 1 {
		_, _ = l.GetDefaultSwapAmount(alice)
		_, _ = l.TokenBalance(alice, "XTK")
		_, _ = l.TokenBalance(alice, "OTHER")
		_, _ = l.GetICPBalance(alice)
		_, _ = l.Greet(alice, "x")
	}
	after, _ := l.Portfolio(alice)
	assert.Equal(t, before, after, "getter changed state")
	assert.Equal(t, uint64(1), storage.Pool.TokenBalances.Count(), "getter created a token entry")
}

func TestStorageFaultIsAnError(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	storage.Pool.Accounts.Put(alice.Bytes(), []byte{0x02, 0x00})

	_, err := l.Deposit(alice, 1)
	assert.ErrorIs(t, err, fault.ErrUnsupportedRecordVersion, "deposit over corrupt record")

	_, err = l.Portfolio(alice)
	assert.ErrorIs(t, err, fault.ErrUnsupportedRecordVersion, "portfolio over corrupt record")

	// the failed call must not leave the transaction open
	result, err := l.Deposit("bob", 1)
	assert.Nil(t, err, "next operation")
	assert.True(t, result.Success, "next operation failed")
}

func TestTransactionInUse(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	defer trx.Abort()

	_, err = l.Deposit(alice, 1)
	assert.Equal(t, fault.ErrTransactionInUse, err, "transaction was not exclusive")
}

// icp plus all token balances always equals total deposits
func TestConservation(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	r := rand.New(rand.NewSource(42))
	assets := []string{"AAA", "BBB", "CCC"}

	for i := 0; i < 300; i += 1 {
		asset := assets[r.Intn(len(assets))]
		amount := uint64(r.Intn(50))
		var err error
		switch r.Intn(3) {
		case 0:
			_, err = l.Deposit(alice, amount)
		case 1:
			_, err = l.SwapICPToToken(alice, asset, amount)
		default:
			_, err = l.SwapTokenToICP(alice, asset, amount)
		}
		assert.Nil(t, err, "%d: operation error", i)

		portfolio, err := l.Portfolio(alice)
		assert.Nil(t, err, "%d: portfolio", i)

		total := portfolio.ICPBalance
		for _, b := range portfolio.TokenBalances {
			assert.NotEqual(t, uint64(0), b.Balance, "%d: zero balance listed", i)
			total += b.Balance
		}
		if !assert.Equal(t, portfolio.TotalDeposits, total, "%d: value not conserved", i) {
			return
		}
	}
}

func TestConcurrentDeposits(t *testing.T) {
	l := newLedger(t)
	defer teardown(t)

	const workers = 8
	const deposits = 25

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < deposits; i += 1 {
				_, _ = l.Deposit(alice, 1)
				_, _ = l.SwapICPToToken(alice, fmt.Sprintf("T%d", w), 1)
			}
		}(w)
	}
	wg.Wait()

	portfolio, err := l.Portfolio(alice)
	assert.Nil(t, err, "portfolio")
	assert.Equal(t, uint64(workers*deposits), portfolio.TotalDeposits, "lost deposit")

	total := portfolio.ICPBalance
	for _, b := range portfolio.TokenBalances {
		total += b.Balance
	}
	assert.Equal(t, portfolio.TotalDeposits, total, "value not conserved")
}
