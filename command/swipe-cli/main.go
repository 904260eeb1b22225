// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/swiped/identity"
)

type metadata struct {
	connect string
	caller  identity.Identity
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "swipe-cli"
	app.Usage = "client for the swiped ledger daemon"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	amountFlag := cli.Uint64Flag{
		Name:  "amount, a",
		Value: 0,
		Usage: "*`AMOUNT` to transfer",
	}
	assetFlag := cli.StringFlag{
		Name:  "asset, t",
		Value: "",
		Usage: "*token `ASSET` identifier",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " connect to swiped at `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "caller, i",
			Value:  "",
			Usage:  " caller `IDENTITY`",
			EnvVar: "SWIPE_CALLER",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "deposit",
			Usage:     "credit ICP to the caller",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{amountFlag},
			Action:    runDeposit,
		},
		{
			Name:   "balance",
			Usage:  "display ICP balance",
			Action: runBalance,
		},
		{
			Name:      "swap-in",
			Usage:     "convert ICP into tokens",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag, amountFlag},
			Action:    runSwapIn,
		},
		{
			Name:      "swap-out",
			Usage:     "convert tokens back into ICP",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag, amountFlag},
			Action:    runSwapOut,
		},
		{
			Name:   "portfolio",
			Usage:  "display all balances and totals",
			Action: runPortfolio,
		},
		{
			Name:      "token",
			Usage:     "display a single token balance",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runTokenBalance,
		},
		{
			Name:      "set-default",
			Usage:     "store the preferred swap amount",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*default swap `AMOUNT`",
				},
			},
			Action: runSetDefault,
		},
		{
			Name:   "get-default",
			Usage:  "display the preferred swap amount",
			Action: runGetDefault,
		},
		{
			Name:   "users",
			Usage:  "display number of accounts",
			Action: runUsers,
		},
		{
			Name:   "whoami",
			Usage:  "display the identity seen by swiped",
			Action: runWhoami,
		},
		{
			Name:  "greet",
			Usage: "display a greeting with balances",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " `NAME` to greet",
				},
			},
			Action: runGreet,
		},
		{
			Name:   "info",
			Usage:  "display swiped status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display swipe-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// check the global options
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("connect: address is required")
		}

		// info is the only call that carries no caller
		caller := identity.Identity("")
		if "info" != command {
			id, err := identity.New(c.GlobalString("caller"))
			if nil != err {
				return fmt.Errorf("caller: %q: %w", c.GlobalString("caller"), err)
			}
			caller = id
		}

		if verbose {
			fmt.Fprintf(e, "connect: %s\n", connect)
			fmt.Fprintf(e, "caller: %q\n", caller)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			caller:  caller,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
