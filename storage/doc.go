// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a single LevelDB database split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. identity     = caller identity as UTF-8 text, never contains ':'
// 4. asset        = asset identifier as UTF-8 text, never empty
// 5. amount       = big endian uint64 (8 bytes)
//
// Version:
//
//   0x00 ++ "VERSION"          - database layout version
//                                data: big endian uint32 (4 bytes)
//
// Accounts:
//
//   0 ++ identity              - account record
//                                data: packed account record (see accountrecord)
//
// Token balances:
//
//   1 ++ identity ++ ':' ++ asset
//                              - token balance, never stored when zero
//                                data: amount
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
