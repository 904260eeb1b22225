// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - balance operations over the account table and the
// token balances
//
// Every operation holds a single process-wide lock and runs in one
// storage transaction.  All reads happen before any write and the
// writes of both tables are committed together, so no reader ever sees
// an ICP balance changed without the matching token balance.
//
// ICP converts to any token at a fixed 1:1 rate.
//
// Precondition failures (zero amount, insufficient balance, invalid
// asset, overflow) are reported as an unsuccessful TransactionResult
// and leave the state untouched.  An error return means the storage
// could not be read or written and the transaction was abandoned.
package ledger
