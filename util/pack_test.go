// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xfffffffffffffffe, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		suffix := []byte{0xff, 0x97, 0x23}
		b := append(append([]byte{}, item.encoded...), suffix...)

		result, count := util.FromVarint64(b)
		if result != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d", i, b, result, count, item.value, len(item.encoded))
		}
	}

	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestPackUnpack(t *testing.T) {
	packed := util.NewPacker(32).
		Uint8(7).
		Bool(true).
		Uint16(0x1234).
		Uint32(0xdeadbeef).
		Uint64(1 << 40).
		Varint(300).
		Fixed([]byte{1, 2, 3}).
		Bytes([]byte("hive")).
		Packed()

	u := util.NewUnpacker(packed)
	assert.Equal(t, uint8(7), u.Uint8(), "wrong uint8")
	assert.True(t, u.Bool(), "wrong bool")
	assert.Equal(t, uint16(0x1234), u.Uint16(), "wrong uint16")
	assert.Equal(t, uint32(0xdeadbeef), u.Uint32(), "wrong uint32")
	assert.Equal(t, uint64(1<<40), u.Uint64(), "wrong uint64")
	assert.Equal(t, uint64(300), u.Varint(), "wrong varint")

	fixed := make([]byte, 3)
	u.Fixed(fixed)
	assert.Equal(t, []byte{1, 2, 3}, fixed, "wrong fixed")
	assert.Equal(t, []byte("hive"), u.Bytes(), "wrong bytes")
	assert.Nil(t, u.Finish(), "wrong finish")
}

func TestUnpackEmptyBytes(t *testing.T) {
	u := util.NewUnpacker(util.NewPacker(0).Bytes(nil).Bytes([]byte{}).Packed())
	assert.Nil(t, u.Bytes(), "nil not restored")
	assert.Nil(t, u.Bytes(), "empty not restored as nil")
	assert.Nil(t, u.Finish(), "wrong finish")
}

func TestUnpackTruncated(t *testing.T) {
	u := util.NewUnpacker([]byte{0x01, 0x02})
	_ = u.Uint32()
	assert.Equal(t, uint64(0), u.Uint64(), "read after error must be zero")
	assert.Equal(t, fault.ErrRecordTruncated, u.Finish(), "wrong error")
}

func TestUnpackTrailing(t *testing.T) {
	u := util.NewUnpacker([]byte{0x01, 0x02})
	_ = u.Uint8()
	assert.Equal(t, fault.ErrRecordTrailingBytes, u.Finish(), "wrong error")
}

func TestUnpackInvalidBool(t *testing.T) {
	u := util.NewUnpacker([]byte{0x02})
	_ = u.Bool()
	assert.Equal(t, fault.ErrInvalidBoolean, u.Finish(), "wrong error")
}

func TestUnpackCountLargerThanBuffer(t *testing.T) {
	u := util.NewUnpacker(util.ToVarint64(1000))
	assert.Equal(t, 0, u.Count(4), "count must be rejected")
	assert.Equal(t, fault.ErrRecordTruncated, u.Finish(), "wrong error")
}
