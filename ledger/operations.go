// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"
	"math"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/bitmark-inc/swiped/accountrecord"
	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/identity"
	"github.com/bitmark-inc/swiped/storage"
	"github.com/bitmark-inc/swiped/tokens"
)

// SetDefaultSwapAmount - store the preferred swap amount, zero is allowed
func (l *Ledger) SetDefaultSwapAmount(id identity.Identity, amount uint64) (uint64, error) {
	if !id.IsValid() {
		return 0, fault.ErrInvalidIdentity
	}

	l.Lock()
	defer l.Unlock()

	err := l.transaction(func(trx storage.Transaction) (bool, error) {
		record, err := l.accounts.GetOrDefault(trx, id)
		if nil != err {
			return false, err
		}
		record.DefaultSwapAmount = amount
		l.accounts.Put(trx, id, record)
		return true, nil
	})
	if nil != err {
		return 0, err
	}

	l.log.Infof("%s: default swap amount: %d", id, amount)
	return amount, nil
}

// GetDefaultSwapAmount - zero if never set
func (l *Ledger) GetDefaultSwapAmount(id identity.Identity) (uint64, error) {
	record, err := l.read(id)
	if nil != err {
		return 0, err
	}
	return record.DefaultSwapAmount, nil
}

// GetICPBalance - zero for an unknown identity
func (l *Ledger) GetICPBalance(id identity.Identity) (uint64, error) {
	record, err := l.read(id)
	if nil != err {
		return 0, err
	}
	return record.ICPBalance, nil
}

// Deposit - credit ICP
func (l *Ledger) Deposit(id identity.Identity, amount uint64) (*TransactionResult, error) {
	if !id.IsValid() {
		return nil, fault.ErrInvalidIdentity
	}
	if 0 == amount {
		return failed(depositZeroMessage, 0, nil), nil
	}

	l.Lock()
	defer l.Unlock()

	var result *TransactionResult
	err := l.transaction(func(trx storage.Transaction) (bool, error) {
		record, err := l.accounts.GetOrDefault(trx, id)
		if nil != err {
			return false, err
		}

		icp, err := smath.Add64(record.ICPBalance, amount)
		if nil != err {
			l.log.Warnf("%s: deposit: %d: %s", id, amount, fault.ErrBalanceOverflow)
			result = failed(overflowMessage, record.ICPBalance, nil)
			return false, nil
		}

		record.ICPBalance = icp
		record.TotalDeposits = saturatingAdd(record.TotalDeposits, amount)
		l.accounts.Put(trx, id, record)

		result = succeeded(depositedMessage(amount), icp, nil)
		return true, nil
	})
	if nil != err {
		return nil, err
	}

	if result.Success {
		l.log.Infof("%s: deposit: %d  icp: %d", id, amount, result.NewICPBalance)
	}
	return result, nil
}

// SwapICPToToken - convert ICP into an equal amount of the asset
func (l *Ledger) SwapICPToToken(id identity.Identity, asset string, amount uint64) (*TransactionResult, error) {
	if !id.IsValid() {
		return nil, fault.ErrInvalidIdentity
	}
	if 0 == amount {
		return failed(swapZeroMessage, 0, nil), nil
	}
	key, err := tokens.NewKey(id, asset)
	if nil != err {
		return failed(fmt.Sprintf(invalidAssetFormat, asset), 0, nil), nil
	}

	l.Lock()
	defer l.Unlock()

	var result *TransactionResult
	err = l.transaction(func(trx storage.Transaction) (bool, error) {
		record, err := l.accounts.GetOrDefault(trx, id)
		if nil != err {
			return false, err
		}

		if record.ICPBalance < amount {
			result = failed(insufficientICPMessage(record.ICPBalance, amount), record.ICPBalance, nil)
			return false, nil
		}

		balance, err := l.tokens.Get(trx, key)
		if nil != err {
			return false, err
		}

		// cannot underflow, checked above
		icp, _ := smath.Sub(record.ICPBalance, amount)
		newBalance, err := smath.Add64(balance, amount)
		if nil != err {
			l.log.Warnf("%s: swap in: %s: %d: %s", id, asset, amount, fault.ErrBalanceOverflow)
			result = failed(overflowMessage, record.ICPBalance, pointer(balance))
			return false, nil
		}

		record.ICPBalance = icp
		record.TotalSwaps = saturatingAdd(record.TotalSwaps, amount)
		l.accounts.Put(trx, id, record)
		l.tokens.Put(trx, key, newBalance)

		result = succeeded(swappedInMessage(amount, asset), icp, pointer(newBalance))
		return true, nil
	})
	if nil != err {
		return nil, err
	}

	if result.Success {
		l.log.Infof("%s: swap in: %s: %d  icp: %d  token: %d", id, asset, amount, result.NewICPBalance, *result.NewTokenBalance)
	}
	return result, nil
}

// SwapTokenToICP - convert an amount of the asset back into ICP
//
// total swaps counts ICP to token volume only and is not changed here
func (l *Ledger) SwapTokenToICP(id identity.Identity, asset string, amount uint64) (*TransactionResult, error) {
	if !id.IsValid() {
		return nil, fault.ErrInvalidIdentity
	}
	if 0 == amount {
		return failed(swapZeroMessage, 0, nil), nil
	}
	key, err := tokens.NewKey(id, asset)
	if nil != err {
		return failed(fmt.Sprintf(invalidAssetFormat, asset), 0, nil), nil
	}

	l.Lock()
	defer l.Unlock()

	var result *TransactionResult
	err = l.transaction(func(trx storage.Transaction) (bool, error) {
		balance, err := l.tokens.Get(trx, key)
		if nil != err {
			return false, err
		}

		if balance < amount {
			result = failed(insufficientTokenMessage(asset, balance, amount), 0, pointer(balance))
			return false, nil
		}

		record, err := l.accounts.GetOrDefault(trx, id)
		if nil != err {
			return false, err
		}

		// cannot underflow, checked above
		newBalance, _ := smath.Sub(balance, amount)
		icp, err := smath.Add64(record.ICPBalance, amount)
		if nil != err {
			l.log.Warnf("%s: swap out: %s: %d: %s", id, asset, amount, fault.ErrBalanceOverflow)
			result = failed(overflowMessage, record.ICPBalance, pointer(balance))
			return false, nil
		}

		record.ICPBalance = icp
		l.accounts.Put(trx, id, record)
		l.tokens.Put(trx, key, newBalance)

		result = succeeded(swappedOutMessage(amount, asset), icp, pointer(newBalance))
		return true, nil
	})
	if nil != err {
		return nil, err
	}

	if result.Success {
		l.log.Infof("%s: swap out: %s: %d  icp: %d  token: %d", id, asset, amount, result.NewICPBalance, *result.NewTokenBalance)
	}
	return result, nil
}

// Portfolio - account record and every non-zero token balance
func (l *Ledger) Portfolio(id identity.Identity) (*Portfolio, error) {
	if !id.IsValid() {
		return nil, fault.ErrInvalidIdentity
	}

	l.Lock()
	defer l.Unlock()

	var portfolio *Portfolio
	err := l.transaction(func(trx storage.Transaction) (bool, error) {
		record, err := l.accounts.GetOrDefault(trx, id)
		if nil != err {
			return false, err
		}
		balances, err := l.tokens.ListFor(id)
		if nil != err {
			return false, err
		}

		portfolio = &Portfolio{
			ICPBalance:        record.ICPBalance,
			DefaultSwapAmount: record.DefaultSwapAmount,
			TokenBalances:     sortedBalances(balances),
			TotalDeposits:     record.TotalDeposits,
			TotalSwaps:        record.TotalSwaps,
		}
		return false, nil
	})
	if nil != err {
		return nil, err
	}
	return portfolio, nil
}

// TokenBalance - zero if the asset was never held
func (l *Ledger) TokenBalance(id identity.Identity, asset string) (uint64, error) {
	key, err := tokens.NewKey(id, asset)
	if nil != err {
		return 0, err
	}

	l.Lock()
	defer l.Unlock()

	balance := uint64(0)
	err = l.transaction(func(trx storage.Transaction) (bool, error) {
		n, err := l.tokens.Get(trx, key)
		balance = n
		return false, err
	})
	return balance, err
}

// UsersCount - number of identities with a stored account record
func (l *Ledger) UsersCount() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.accounts.Count()
}

// TokenEntriesCount - number of stored non-zero token balances
func (l *Ledger) TokenEntriesCount() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.tokens.Count()
}

// Account - the stored record of an identity
//
// unlike the balance getters an identity that was never written is
// reported as not found
func (l *Ledger) Account(id identity.Identity) (*accountrecord.AccountRecord, error) {
	if !id.IsValid() {
		return nil, fault.ErrInvalidIdentity
	}

	l.Lock()
	defer l.Unlock()

	var record *accountrecord.AccountRecord
	err := l.transaction(func(trx storage.Transaction) (bool, error) {
		if !l.accounts.Has(trx, id) {
			return false, fault.ErrUserNotFound
		}
		r, err := l.accounts.GetOrDefault(trx, id)
		record = r
		return false, err
	})
	if nil != err {
		return nil, err
	}
	return record, nil
}

// Greet - greeting including the current balances
func (l *Ledger) Greet(id identity.Identity, name string) (string, error) {
	record, err := l.read(id)
	if nil != err {
		return "", err
	}
	return greeting(name, record.ICPBalance, record.DefaultSwapAmount), nil
}

// fetch the account record without changing anything
func (l *Ledger) read(id identity.Identity) (*accountrecord.AccountRecord, error) {
	if !id.IsValid() {
		return nil, fault.ErrInvalidIdentity
	}

	l.Lock()
	defer l.Unlock()

	var record *accountrecord.AccountRecord
	err := l.transaction(func(trx storage.Transaction) (bool, error) {
		r, err := l.accounts.GetOrDefault(trx, id)
		record = r
		return false, err
	})
	if nil != err {
		return nil, err
	}
	return record, nil
}

// lifetime totals stop at the maximum, only balances are overflow checked
func saturatingAdd(a uint64, b uint64) uint64 {
	n, err := smath.Add64(a, b)
	if nil != err {
		return math.MaxUint64
	}
	return n
}
