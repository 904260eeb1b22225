// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokens - per (owner, asset) token balances
//
// A balance is an 8 byte big endian value stored under
// owner ++ ':' ++ asset.  A zero balance is never stored; writing zero
// removes the entry, so an absent entry reads as zero.
package tokens

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/identity"
	"github.com/bitmark-inc/swiped/storage"
)

const balanceLength = 8

// Table - token balances stored in a single pool
type Table struct {
	handle storage.Handle
}

// New - table over the given pool
func New(handle storage.Handle) *Table {
	return &Table{
		handle: handle,
	}
}

// Get - balance for key, zero if absent
func (t *Table) Get(trx storage.Transaction, key Key) (uint64, error) {
	n, _, err := trx.GetN(t.handle, key.Bytes())
	if nil != err {
		return 0, fmt.Errorf("token balance: %q: %w", key.Bytes(), fault.ErrTokenBalanceLength)
	}
	return n, nil
}

// Put - set balance for key, zero removes the entry
func (t *Table) Put(trx storage.Transaction, key Key, amount uint64) {
	if 0 == amount {
		trx.Delete(t.handle, key.Bytes())
		return
	}
	trx.PutN(t.handle, key.Bytes(), amount)
}

// ListFor - all non-zero balances of an owner by asset id
func (t *Table) ListFor(owner identity.Identity) (map[string]uint64, error) {
	balances := make(map[string]uint64)

	cursor := t.handle.NewPrefixCursor(OwnerPrefix(owner))
	err := cursor.Map(func(k []byte, value []byte) error {
		key, err := ParseKey(k)
		if nil != err {
			return fmt.Errorf("token key: %q: %w", k, err)
		}
		if key.Owner != owner {
			return fmt.Errorf("token key: %q: %w", k, fault.ErrWrongTokenKeySeparator)
		}
		amount, err := decode(k, value)
		if nil != err {
			return err
		}
		balances[key.Asset] = amount
		return nil
	})
	if nil != err {
		return nil, err
	}
	return balances, nil
}

// Count - number of stored balances
func (t *Table) Count() uint64 {
	return t.handle.Count()
}

func decode(key []byte, buffer []byte) (uint64, error) {
	if balanceLength != len(buffer) {
		return 0, fmt.Errorf("token balance: %q: %w", key, fault.ErrTokenBalanceLength)
	}
	return binary.BigEndian.Uint64(buffer), nil
}
