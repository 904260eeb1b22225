// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/accounts"
	"github.com/bitmark-inc/swiped/identity"
	"github.com/bitmark-inc/swiped/ledger"
	"github.com/bitmark-inc/swiped/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	defaultDumpCount = 100
	maximumDumpCount = 10000
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "users", "dump-accounts", "accounts", "dump-account", "account", "dump-tokens", "tokens":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "fingerprint", "fp":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - display the SHA3-256 fingerprint of the RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  users                               - display the number of account records\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-accounts [ID [COUNT]] (accounts) - dump account records as JSON starting at ID\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-account ID             (account) - dump the stored record of ID as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-tokens ID             (tokens) - dump the portfolio of ID as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		if err := printJSON(os.Stdout, options); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	case "fingerprint", "fp":
		fingerprint, err := certificateFingerprint(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate: %q  error: %s", options.ClientRPC.Certificate, err)
		}
		fmt.Printf("rpc fingerprint: %x\n", fingerprint)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools are enabled so these commands can
// read the databases
func processDataCommand(log *logger.L, arguments []string, service ledger.Service) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "users":
		fmt.Printf("%d\n", service.UsersCount())

	case "dump-accounts", "accounts":
		start := identity.Identity("")
		if len(arguments) > 0 {
			id, err := identity.New(arguments[0])
			if nil != err {
				exitwithstatus.Message("error in identity: %q  error: %s", arguments[0], err)
			}
			start = id
		}

		count, err := parseCount(arguments)
		if nil != err {
			exitwithstatus.Message("error in count: %s", err)
		}

		entries, err := accounts.New(storage.Pool.Accounts).List(start, count)
		if nil != err {
			log.Errorf("dump accounts error: %s", err)
			exitwithstatus.Message("dump accounts error: %s", err)
		}
		if err := printJSON(os.Stdout, entries); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	case "dump-account", "account":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing identity argument")
		}
		id, err := identity.New(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in identity: %q  error: %s", arguments[0], err)
		}
		record, err := service.Account(id)
		if nil != err {
			exitwithstatus.Message("dump account: %q  error: %s", id, err)
		}
		if err := printJSON(os.Stdout, record); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	case "dump-tokens", "tokens":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing identity argument")
		}
		id, err := identity.New(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in identity: %q  error: %s", arguments[0], err)
		}
		portfolio, err := service.Portfolio(id)
		if nil != err {
			log.Errorf("dump tokens error: %s", err)
			exitwithstatus.Message("dump tokens error: %s", err)
		}
		if err := printJSON(os.Stdout, portfolio); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// optional second argument of dump-accounts
func parseCount(arguments []string) (int, error) {
	if len(arguments) < 2 {
		return defaultDumpCount, nil
	}
	n, err := strconv.Atoi(arguments[1])
	if nil != err {
		return 0, err
	}
	if n < 1 || n > maximumDumpCount {
		return 0, fmt.Errorf("count: %d must be in range 1..%d", n, maximumDumpCount)
	}
	return n, nil
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

// indented JSON followed by a newline
func printJSON(w io.Writer, data interface{}) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); nil != err {
		return err
	}
	out.WriteString("\n")
	_, err = out.WriteTo(w)
	return err
}
