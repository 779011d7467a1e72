// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/hivenode/hived/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, low group first, high bit set on all but the
// last byte; the ninth byte carries a full eight bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for n := 1; n < Varint64MaximumBytes; n += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for i, b := range buffer {
		if i == Varint64MaximumBytes-1 {
			return result | uint64(b)<<shift, i + 1
		}
		result |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return result, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// Packer - accumulate the binary form of a stored record
type Packer struct {
	buffer []byte
}

// NewPacker - create a packer with some initial capacity
func NewPacker(capacity int) *Packer {
	return &Packer{
		buffer: make([]byte, 0, capacity),
	}
}

// Uint8 - append a single byte
func (p *Packer) Uint8(value uint8) *Packer {
	p.buffer = append(p.buffer, value)
	return p
}

// Bool - append a boolean as 0x00 or 0x01
func (p *Packer) Bool(value bool) *Packer {
	if value {
		return p.Uint8(1)
	}
	return p.Uint8(0)
}

// Uint16 - append big endian
func (p *Packer) Uint16(value uint16) *Packer {
	p.buffer = binary.BigEndian.AppendUint16(p.buffer, value)
	return p
}

// Uint32 - append big endian
func (p *Packer) Uint32(value uint32) *Packer {
	p.buffer = binary.BigEndian.AppendUint32(p.buffer, value)
	return p
}

// Uint64 - append big endian
func (p *Packer) Uint64(value uint64) *Packer {
	p.buffer = binary.BigEndian.AppendUint64(p.buffer, value)
	return p
}

// Varint - append a Varint64
func (p *Packer) Varint(value uint64) *Packer {
	p.buffer = append(p.buffer, ToVarint64(value)...)
	return p
}

// Fixed - append bytes whose length is implied by the record layout
func (p *Packer) Fixed(data []byte) *Packer {
	p.buffer = append(p.buffer, data...)
	return p
}

// Bytes - append a varint length followed by the bytes
func (p *Packer) Bytes(data []byte) *Packer {
	return p.Varint(uint64(len(data))).Fixed(data)
}

// Packed - the accumulated bytes
func (p *Packer) Packed() []byte {
	return p.buffer
}

// Unpacker - sequential reader over a stored record
//
// the first failure is retained and all later reads return zero
// values, so a decoder can read every field and check Finish once
type Unpacker struct {
	buffer []byte
	err    error
}

// NewUnpacker - start reading a record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

func (u *Unpacker) take(n int) []byte {
	if nil != u.err {
		return nil
	}
	if n < 0 || len(u.buffer) < n {
		u.err = fault.ErrRecordTruncated
		return nil
	}
	b := u.buffer[:n]
	u.buffer = u.buffer[n:]
	return b
}

// Uint8 - read a single byte
func (u *Unpacker) Uint8() uint8 {
	b := u.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// Bool - read a boolean, anything other than 0x00 or 0x01 is an error
func (u *Unpacker) Bool() bool {
	b := u.take(1)
	if nil == b {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		u.err = fault.ErrInvalidBoolean
		return false
	}
}

// Uint16 - read big endian
func (u *Unpacker) Uint16() uint16 {
	b := u.take(2)
	if nil == b {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// Uint32 - read big endian
func (u *Unpacker) Uint32() uint32 {
	b := u.take(4)
	if nil == b {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// Uint64 - read big endian
func (u *Unpacker) Uint64() uint64 {
	b := u.take(8)
	if nil == b {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// Varint - read a Varint64
func (u *Unpacker) Varint() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := FromVarint64(u.buffer)
	if 0 == n {
		u.err = fault.ErrRecordTruncated
		return 0
	}
	u.buffer = u.buffer[n:]
	return value
}

// Count - read a varint element count that cannot exceed the
// remaining bytes when each element occupies at least size bytes
func (u *Unpacker) Count(size int) int {
	n := u.Varint()
	if nil != u.err {
		return 0
	}
	if size < 1 {
		size = 1
	}
	if n > uint64(len(u.buffer)/size) {
		u.err = fault.ErrRecordTruncated
		return 0
	}
	return int(n)
}

// Fixed - fill data from the record
func (u *Unpacker) Fixed(data []byte) {
	b := u.take(len(data))
	if nil != b {
		copy(data, b)
	}
}

// Bytes - read a varint length followed by that many bytes
//
// the result is a copy, nil when the length is zero
func (u *Unpacker) Bytes() []byte {
	n := u.Count(1)
	if 0 == n {
		return nil
	}
	b := u.take(n)
	if nil == b {
		return nil
	}
	result := make([]byte, n)
	copy(result, b)
	return result
}

// Finish - report the first error, or trailing data
func (u *Unpacker) Finish() error {
	if nil != u.err {
		return u.err
	}
	if 0 != len(u.buffer) {
		return fault.ErrRecordTrailingBytes
	}
	return nil
}
