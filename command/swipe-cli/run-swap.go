// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/swiped/command/swipe-cli/rpccalls"
	"github.com/bitmark-inc/swiped/ledger"
)

type swapFunc func(client *rpccalls.Client, asset string, amount uint64) (*ledger.TransactionResult, error)

func runSwapIn(c *cli.Context) error {
	return runSwap(c, (*rpccalls.Client).SwapICPToToken)
}

func runSwapOut(c *cli.Context) error {
	return runSwap(c, (*rpccalls.Client).SwapTokenToICP)
}

func runSwap(c *cli.Context, swap swapFunc) error {

	asset, err := checkAsset(c.String("asset"))
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "asset: %s\n", asset)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	response, err := swap(client, asset, amount)
	if nil != err {
		return err
	}

	return printResult(m.w, response)
}
