// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/accountrecord"
	"github.com/bitmark-inc/swiped/accounts"
	"github.com/bitmark-inc/swiped/identity"
	"github.com/bitmark-inc/swiped/storage"
	"github.com/bitmark-inc/swiped/tokens"
)

// Handles - storage pools used by the ledger
type Handles struct {
	Accounts      storage.Handle
	TokenBalances storage.Handle
}

// Service - the operations offered to the RPC layer
type Service interface {
	SetDefaultSwapAmount(identity.Identity, uint64) (uint64, error)
	GetDefaultSwapAmount(identity.Identity) (uint64, error)
	Deposit(identity.Identity, uint64) (*TransactionResult, error)
	GetICPBalance(identity.Identity) (uint64, error)
	SwapICPToToken(identity.Identity, string, uint64) (*TransactionResult, error)
	SwapTokenToICP(identity.Identity, string, uint64) (*TransactionResult, error)
	Portfolio(identity.Identity) (*Portfolio, error)
	TokenBalance(identity.Identity, string) (uint64, error)
	UsersCount() uint64
	TokenEntriesCount() uint64
	Account(identity.Identity) (*accountrecord.AccountRecord, error)
	Greet(identity.Identity, string) (string, error)
}

// Ledger - serialised access to both tables
type Ledger struct {
	sync.Mutex

	log      *logger.L
	accounts *accounts.Table
	tokens   *tokens.Table
	begin    func() (storage.Transaction, error)
}

// New - create the ledger over the given pools
func New(handles Handles) *Ledger {
	return &Ledger{
		log:      logger.New("ledger"),
		accounts: accounts.New(handles.Accounts),
		tokens:   tokens.New(handles.TokenBalances),
		begin:    storage.NewDBTransaction,
	}
}

// run f in a transaction, committing only when f asks for it
//
// caller must hold the lock
func (l *Ledger) transaction(f func(trx storage.Transaction) (bool, error)) error {
	trx, err := l.begin()
	if nil != err {
		return err
	}

	commit, err := f(trx)
	if nil != err {
		trx.Abort()
		l.log.Errorf("transaction aborted: %s", err)
		return err
	}
	if !commit {
		trx.Abort()
		return nil
	}

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("commit failed: %s", err)
	}
	return err
}
