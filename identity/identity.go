// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - the caller identity supplied by the RPC boundary
//
// An identity is opaque text.  Its only structural rule is that it can
// never contain Separator, which lets the token ledger build a
// composite key by appending Separator and the asset id.
package identity

import (
	"unicode"
	"unicode/utf8"

	"github.com/bitmark-inc/swiped/fault"
)

// Separator - appended to an identity to form a token ledger key
const Separator = ':'

// MaximumLength - in bytes of the textual form
const MaximumLength = 128

// Identity - a validated caller identity
type Identity string

// New - validate a textual identity
func New(s string) (Identity, error) {
	if err := check(s); nil != err {
		return "", err
	}
	return Identity(s), nil
}

func check(s string) error {
	if 0 == len(s) || len(s) > MaximumLength {
		return fault.ErrInvalidIdentity
	}
	if !utf8.ValidString(s) {
		return fault.ErrInvalidIdentity
	}
	for _, r := range s {
		if Separator == r || unicode.IsSpace(r) || unicode.IsControl(r) {
			return fault.ErrInvalidIdentity
		}
	}
	return nil
}

// IsValid - true if the identity was obtained from New or passes the same checks
func (id Identity) IsValid() bool {
	return nil == check(string(id))
}

// String - the textual form
func (id Identity) String() string {
	return string(id)
}

// Bytes - raw bytes used as an account table key
func (id Identity) Bytes() []byte {
	return []byte(id)
}

// MarshalText - for JSON
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id), nil
}

// UnmarshalText - for JSON, rejects invalid identities
func (id *Identity) UnmarshalText(s []byte) error {
	i, err := New(string(s))
	if nil != err {
		return err
	}
	*id = i
	return nil
}
