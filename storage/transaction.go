// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/fault"
)

// Transaction - buffered writes across pools, committed as a single batch
type Transaction interface {
	Begin() error
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool, error)
	Has(Handle, []byte) bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

// TransactionImpl - the LevelDB batch behind a Transaction
type TransactionImpl struct {
	sync.Mutex
	inUse bool
	batch *leveldb.Batch
	cache Cache
}

func newTransaction() *TransactionImpl {
	return &TransactionImpl{
		inUse: false,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

// Begin - mark the transaction as in use
func (t *TransactionImpl) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}
	t.inUse = true
	t.batch.Reset()
	t.cache.Clear()

	return nil
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionImpl) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Put - add a write to the batch
func (t *TransactionImpl) Put(handle Handle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	if !t.inUse {
		logger.Panicf("transaction.Put: %s: %s", handle.Name(), fault.ErrTransactionNotStarted)
	}

	dbKey := handle.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.cache.Set(dbPut, string(dbKey), stored)
	t.batch.Put(dbKey, stored)
}

// PutN - add a big endian uint64 write to the batch
func (t *TransactionImpl) PutN(handle Handle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

// Delete - add a delete to the batch
func (t *TransactionImpl) Delete(handle Handle, key []byte) {
	t.Lock()
	defer t.Unlock()
	if !t.inUse {
		logger.Panicf("transaction.Delete: %s: %s", handle.Name(), fault.ErrTransactionNotStarted)
	}

	dbKey := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(dbKey), nil)
	t.batch.Delete(dbKey)
}

// Get - read a value, pending writes take priority over the database
func (t *TransactionImpl) Get(handle Handle, key []byte) []byte {
	t.Lock()
	dbKey := string(handle.prefixKey(key))
	if value, found := t.cache.Get(dbKey); found {
		t.Unlock()
		return value
	}
	deleted := t.cache.IsDeleted(dbKey)
	t.Unlock()

	if deleted {
		return nil
	}
	return handle.Get(key)
}

// GetN - read a big endian uint64 value
//
// second parameter is false if record was not found
// a stored value that is not exactly 8 bytes gives ErrValueLength
func (t *TransactionImpl) GetN(handle Handle, key []byte) (uint64, bool, error) {
	buffer := t.Get(handle, key)
	if nil == buffer {
		return 0, false, nil
	}
	if 8 != len(buffer) {
		return 0, true, fault.ErrValueLength
	}
	return binary.BigEndian.Uint64(buffer), true, nil
}

// Has - check if a key exists including pending writes
func (t *TransactionImpl) Has(handle Handle, key []byte) bool {
	return nil != t.Get(handle, key)
}

// Commit - write the whole batch synchronously and end the transaction
func (t *TransactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotStarted
	}

	defer t.reset()

	if 0 == t.batch.Len() {
		return nil
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}
	return poolData.database.Write(t.batch, syncWrite)
}

// Abort - discard all pending writes and end the transaction
func (t *TransactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *TransactionImpl) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
