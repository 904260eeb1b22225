// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - access to a single pool
type Handle interface {
	Get([]byte) []byte
	Has([]byte) bool
	Put([]byte, []byte)
	Delete([]byte)
	Count() uint64
	NewFetchCursor() *FetchCursor
	NewPrefixCursor([]byte) *FetchCursor
	Name() string

	prefixKey([]byte) []byte
}

// PoolHandle - the structure behind each exported pool
type PoolHandle struct {
	name   string
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Name - the field name of the pool, for logging
func (p *PoolHandle) Name() string {
	return p.name
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// the full key range of the pool
func (p *PoolHandle) maxRange() ldb_util.Range {
	return ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		logger.Panic("pool.Put nil database")
		return
	}
	err := poolData.database.Put(p.prefixKey(key), value, syncWrite)
	logger.PanicIfError("pool.Put", err)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		logger.Panic("pool.Delete nil database")
		return
	}
	err := poolData.database.Delete(p.prefixKey(key), syncWrite)
	logger.PanicIfError("pool.Delete", err)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil
	}
	value, err := poolData.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return false
	}
	value, err := poolData.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// Count - number of keys in the pool
func (p *PoolHandle) Count() uint64 {
	maxRange := p.maxRange()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return 0
	}

	iter := poolData.database.NewIterator(&maxRange, nil)
	n := uint64(0)
	for iter.Next() {
		n += 1
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.Count", err)
	return n
}

// contents of iterator slices must not be modified, and are
// only valid until the next call to Next
func copyElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
