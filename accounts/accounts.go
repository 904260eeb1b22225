// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accounts - identity to account record table
//
// An identity with no stored record has the all-zero default record.
// Records are never deleted once written.
package accounts

import (
	"fmt"

	"github.com/bitmark-inc/swiped/accountrecord"
	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/identity"
	"github.com/bitmark-inc/swiped/storage"
)

// Table - account records stored in a single pool
type Table struct {
	handle storage.Handle
}

// Entry - one row of a listing
type Entry struct {
	Identity identity.Identity           `json:"identity"`
	Record   *accountrecord.AccountRecord `json:"record"`
}

// New - table over the given pool
func New(handle storage.Handle) *Table {
	return &Table{
		handle: handle,
	}
}

// GetOrDefault - fetch a record, the zero record if absent
//
// an undecodable record is an error
func (t *Table) GetOrDefault(trx storage.Transaction, id identity.Identity) (*accountrecord.AccountRecord, error) {
	packed := trx.Get(t.handle, id.Bytes())
	if nil == packed {
		return &accountrecord.AccountRecord{}, nil
	}
	record, err := accountrecord.Packed(packed).Unpack()
	if nil != err {
		return nil, fmt.Errorf("account: %q: %w", id, err)
	}
	return record, nil
}

// Has - true if a record was ever written for the identity
func (t *Table) Has(trx storage.Transaction, id identity.Identity) bool {
	return trx.Has(t.handle, id.Bytes())
}

// Put - replace the whole record
func (t *Table) Put(trx storage.Transaction, id identity.Identity, record *accountrecord.AccountRecord) {
	trx.Put(t.handle, id.Bytes(), record.Pack())
}

// Count - number of stored records
func (t *Table) Count() uint64 {
	return t.handle.Count()
}

// List - up to count records in identity order, starting at start
//
// an empty start lists from the beginning
func (t *Table) List(start identity.Identity, count int) ([]Entry, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	cursor := t.handle.NewFetchCursor()
	if "" != start {
		cursor.Seek(start.Bytes())
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		record, err := accountrecord.Packed(e.Value).Unpack()
		if nil != err {
			return nil, fmt.Errorf("account: %q: %w", e.Key, err)
		}
		entries = append(entries, Entry{
			Identity: identity.Identity(e.Key),
			Record:   record,
		})
	}
	return entries, nil
}
