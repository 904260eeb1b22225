// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances shared by the ledger, storage and rpc
//
// Each error is a single comparable value of one class type, so callers
// test either for the exact error or for its class with IsErrX.
// Ledger precondition failures such as an insufficient balance are
// reported as failed results and never appear here as returned errors.
package fault
