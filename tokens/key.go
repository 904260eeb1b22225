// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"bytes"
	"unicode/utf8"

	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/identity"
)

// Key - (owner, asset) pair identifying one balance
type Key struct {
	Owner identity.Identity
	Asset string
}

// NewKey - validated key
func NewKey(owner identity.Identity, asset string) (Key, error) {
	if !owner.IsValid() {
		return Key{}, fault.ErrInvalidIdentity
	}
	if err := CheckAsset(asset); nil != err {
		return Key{}, err
	}
	return Key{
		Owner: owner,
		Asset: asset,
	}, nil
}

// CheckAsset - asset ids are non-empty UTF-8 of any length
func CheckAsset(asset string) error {
	if 0 == len(asset) || !utf8.ValidString(asset) {
		return fault.ErrInvalidAsset
	}
	return nil
}

// Bytes - owner ++ ':' ++ asset
func (k Key) Bytes() []byte {
	buffer := make([]byte, 0, len(k.Owner)+1+len(k.Asset))
	buffer = append(buffer, k.Owner...)
	buffer = append(buffer, identity.Separator)
	return append(buffer, k.Asset...)
}

// ParseKey - split at the first separator
//
// the owner can never contain the separator so the first one is the split point
func ParseKey(b []byte) (Key, error) {
	i := bytes.IndexByte(b, identity.Separator)
	if i < 0 {
		return Key{}, fault.ErrWrongTokenKeySeparator
	}
	return NewKey(identity.Identity(b[:i]), string(b[i+1:]))
}

// OwnerPrefix - common prefix of every key of one owner
func OwnerPrefix(owner identity.Identity) []byte {
	buffer := make([]byte, 0, len(owner)+1)
	buffer = append(buffer, owner...)
	return append(buffer, identity.Separator)
}
