// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountrecord

// maximum bytes used by one packed value
//
// bytes 1..8 carry 7 bits each with the top bit as a continuation
// flag, byte 9 carries the remaining 8 bits
const varint64MaximumBytes = 9

// append value in Varint64 form
func appendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// read one Varint64 from the start of buffer
//
// returns the value and the number of bytes consumed, 0, 0 if
// truncated or not in the shortest form (a zero final byte after a
// continuation byte)
func readVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	shift := uint(0)

	for i, b := range buffer {
		if varint64MaximumBytes-1 == i {
			if 0 == b {
				return 0, 0
			}
			return value | uint64(b)<<shift, i + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			if 0 == b && i > 0 {
				return 0, 0
			}
			return value, i + 1
		}
		shift += 7
	}
	return 0, 0
}
