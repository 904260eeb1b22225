// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accountrecord - the per-identity account record and its
// binary encoding
//
// Packed layout (each field a Varint64):
//
//   version ++ default swap amount ++ icp balance ++ total deposits ++ total swaps
//
// The leading version allows later layouts to be added alongside
// version 1; an unknown version is never guessed at.
package accountrecord

import (
	"github.com/bitmark-inc/swiped/fault"
)

// versions of the packed layout
const (
	Version1       = 1
	CurrentVersion = Version1
)

// AccountRecord - per identity balances and preferences
type AccountRecord struct {
	DefaultSwapAmount uint64 `json:"defaultSwapAmount"`
	ICPBalance        uint64 `json:"icpBalance"`
	TotalDeposits     uint64 `json:"totalDeposits"`
	TotalSwaps        uint64 `json:"totalSwaps"`
}

// Packed - packed account record
type Packed []byte

// Pack - encode the record in the current layout
func (record *AccountRecord) Pack() Packed {
	buffer := make([]byte, 0, 1+4*varint64MaximumBytes)
	buffer = appendVarint64(buffer, CurrentVersion)
	buffer = appendVarint64(buffer, record.DefaultSwapAmount)
	buffer = appendVarint64(buffer, record.ICPBalance)
	buffer = appendVarint64(buffer, record.TotalDeposits)
	buffer = appendVarint64(buffer, record.TotalSwaps)
	return buffer
}

// Unpack - decode a packed record
//
// the whole buffer must be consumed
func (packed Packed) Unpack() (*AccountRecord, error) {
	version, n := readVarint64(packed)
	if 0 == n {
		return nil, fault.ErrRecordCorrupt
	}

	switch version {
	case Version1:
		return unpackVersion1(packed[n:])
	default:
		return nil, fault.ErrUnsupportedRecordVersion
	}
}

func unpackVersion1(buffer []byte) (*AccountRecord, error) {
	record := &AccountRecord{}

	fields := []*uint64{
		&record.DefaultSwapAmount,
		&record.ICPBalance,
		&record.TotalDeposits,
		&record.TotalSwaps,
	}

	n := 0
	for _, f := range fields {
		value, count := readVarint64(buffer[n:])
		if 0 == count {
			return nil, fault.ErrRecordCorrupt
		}
		*f = value
		n += count
	}

	if n != len(buffer) {
		return nil, fault.ErrRecordCorrupt
	}
	return record, nil
}
