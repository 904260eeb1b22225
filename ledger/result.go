// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"
	"sort"
)

// TransactionResult - outcome of a state changing operation
type TransactionResult struct {
	Success         bool    `json:"success"`
	Message         string  `json:"message"`
	NewICPBalance   uint64  `json:"newICPBalance"`
	NewTokenBalance *uint64 `json:"newTokenBalance,omitempty"`
}

// TokenBalance - one entry of a portfolio
type TokenBalance struct {
	Asset   string `json:"asset"`
	Balance uint64 `json:"balance"`
}

// Portfolio - complete state of one identity
type Portfolio struct {
	ICPBalance        uint64         `json:"icpBalance"`
	DefaultSwapAmount uint64         `json:"defaultSwapAmount"`
	TokenBalances     []TokenBalance `json:"tokenBalances"`
	TotalDeposits     uint64         `json:"totalDeposits"`
	TotalSwaps        uint64         `json:"totalSwaps"`
}

// result messages
const (
	depositZeroMessage = "Deposit amount must be greater than 0"
	swapZeroMessage    = "Swap amount must be greater than 0"
	invalidAssetFormat = "Invalid token id: %q"
	overflowMessage    = "Balance overflow, operation not performed"
)

func succeeded(message string, icp uint64, token *uint64) *TransactionResult {
	return &TransactionResult{
		Success:         true,
		Message:         message,
		NewICPBalance:   icp,
		NewTokenBalance: token,
	}
}

func failed(message string, icp uint64, token *uint64) *TransactionResult {
	return &TransactionResult{
		Success:         false,
		Message:         message,
		NewICPBalance:   icp,
		NewTokenBalance: token,
	}
}

func depositedMessage(amount uint64) string {
	return fmt.Sprintf("Successfully deposited %d ICP", amount)
}

func swappedInMessage(amount uint64, asset string) string {
	return fmt.Sprintf("Successfully swapped %d ICP to %d %s tokens", amount, amount, asset)
}

func swappedOutMessage(amount uint64, asset string) string {
	return fmt.Sprintf("Successfully swapped %d %s tokens to %d ICP", amount, asset, amount)
}

func insufficientICPMessage(available uint64, required uint64) string {
	return fmt.Sprintf("Insufficient ICP balance. Available: %d, Required: %d", available, required)
}

func insufficientTokenMessage(asset string, available uint64, required uint64) string {
	return fmt.Sprintf("Insufficient %s token balance. Available: %d, Required: %d", asset, available, required)
}

func greeting(name string, icp uint64, defaultSwap uint64) string {
	return fmt.Sprintf("Hello, %s! Your ICP balance: %d ICP, Default swap amount: %d ICP", name, icp, defaultSwap)
}

// portfolio token balances in asset order
func sortedBalances(balances map[string]uint64) []TokenBalance {
	result := make([]TokenBalance, 0, len(balances))
	for asset, balance := range balances {
		result = append(result, TokenBalance{
			Asset:   asset,
			Balance: balance,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Asset < result[j].Asset
	})
	return result
}

func pointer(n uint64) *uint64 {
	return &n
}
