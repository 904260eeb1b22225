// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/swiped/ledger"
)

// print out json, asset names are shown without HTML escaping
func printJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}

// print a transaction result, a refused transaction becomes the
// command error so the exit status is non-zero
func printResult(handle io.Writer, result *ledger.TransactionResult) error {
	if err := printJson(handle, result); nil != err {
		return err
	}
	if !result.Success {
		return fmt.Errorf("transaction refused: %s", result.Message)
	}
	return nil
}
