// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mocks

//go:generate mockgen -source=../../ledger/ledger.go -destination=ledger.go -package=mocks
