// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runUsers(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UsersCount()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runWhoami(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Whoami()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGreet(c *cli.Context) error {

	name := c.String("name")
	if "" == name {
		name = c.GlobalString("caller")
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Greet(name)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
