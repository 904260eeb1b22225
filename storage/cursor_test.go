// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/storage"
)

func TestPrefixCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TokenBalances

	for _, k := range []string{"alice:BTC", "alice:ETH", "alice2:BTC", "alic:ZZZ", "bob:BTC"} {
		p.Put([]byte(k), []byte{0, 0, 0, 0, 0, 0, 0, 1})
	}

	cursor := p.NewPrefixCursor([]byte("alice:"))
	data, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(data), "wrong number of elements")
	assert.Equal(t, []byte("alice:BTC"), data[0].Key, "first key")
	assert.Equal(t, []byte("alice:ETH"), data[1].Key, "second key")

	// exhausted
	data, err = cursor.Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 0, len(data), "cursor not exhausted")

	keys := []string{}
	err = p.NewPrefixCursor([]byte("bob:")).Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, []string{"bob:BTC"}, keys, "map keys")
}

func TestCursorPaging(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	// keys that are prefixes of each other must all be visited
	all := []string{"a", "a\x00", "a\x00\x00", "ab", "b"}
	for _, k := range all {
		p.Put([]byte(k), []byte("x"))
	}

	cursor := p.NewFetchCursor()
	seen := []string{}
	for {
		data, err := cursor.Fetch(2)
		assert.Nil(t, err, "fetch")
		if 0 == len(data) {
			break
		}
		for _, e := range data {
			seen = append(seen, string(e.Key))
		}
	}
	assert.Equal(t, all, seen, "paging skipped or repeated keys")
}

func TestCursorMapStopsOnError(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	for i := 0; i < 5; i += 1 {
		p.Put([]byte(fmt.Sprintf("key-%d", i)), []byte("x"))
	}

	stop := fmt.Errorf("stop")
	n := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 3 == n {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "wrong error")
	assert.Equal(t, 3, n, "map did not stop")
}

func TestCursorInvalid(t *testing.T) {
	var cursor *storage.FetchCursor

	_, err := cursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor fetch")

	err = cursor.Map(func(key []byte, value []byte) error { return nil })
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor map")

	setup(t)
	defer teardown(t)

	_, err = storage.Pool.TestData.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}
