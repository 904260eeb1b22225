// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDeposit(c *cli.Context) error {

	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deposit(amount)
	if nil != err {
		return err
	}

	return printResult(m.w, response)
}

func runBalance(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetICPBalance()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPortfolio(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Portfolio()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTokenBalance(c *cli.Context) error {

	asset, err := checkAsset(c.String("asset"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TokenBalance(asset)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSetDefault(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetDefaultSwapAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGetDefault(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetDefaultSwapAmount()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// zero is rejected by swiped as well, but fail early
func checkAmount(amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, fmt.Errorf("invalid amount: %d", amount)
	}
	return amount, nil
}

func checkAsset(asset string) (string, error) {
	if "" == asset {
		return "", fmt.Errorf("asset is required")
	}
	return asset, nil
}
