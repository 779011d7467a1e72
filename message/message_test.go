// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/util"
)

func TestMessageRestoresAllFields(t *testing.T) {
	m := message.Message{
		NetworkID: 14379272398717627559,
		Parents:   []message.ID{{1}, {2}, {3}},
		Index:     []byte("hive"),
		Payload:   []byte{0xca, 0xfe},
		Nonce:     42,
	}

	var restored message.Message
	err := restored.Unpack(m.Pack())
	assert.Nil(t, err, "wrong unpack error")
	assert.Equal(t, m, restored, "wrong message")
}

func TestMessageRestoresEmptyFields(t *testing.T) {
	m := message.Message{
		NetworkID: 1,
		Nonce:     2,
	}

	var restored message.Message
	err := restored.Unpack(m.Pack())
	assert.Nil(t, err, "wrong unpack error")
	assert.Equal(t, m, restored, "wrong message")
	assert.Nil(t, restored.Parents, "parents not nil")
	assert.Nil(t, restored.Index, "index not nil")
	assert.Nil(t, restored.Payload, "payload not nil")
}

func TestMessageRejectsTooManyParents(t *testing.T) {
	p := util.NewPacker(0).Uint64(1).Varint(message.MaximumParents + 1)
	for i := 0; i <= message.MaximumParents; i += 1 {
		p.Fixed(bytes.Repeat([]byte{byte(i)}, message.IDLength))
	}
	p.Bytes(nil).Bytes(nil).Uint64(0)

	var m message.Message
	assert.Equal(t, fault.ErrTooManyParents, m.Unpack(p.Packed()), "wrong error")
}

func TestMessageRejectsTruncation(t *testing.T) {
	packed := message.Message{Parents: []message.ID{{9}}}.Pack()

	var m message.Message
	err := m.Unpack(packed[:len(packed)-1])
	assert.Equal(t, fault.ErrRecordTruncated, err, "wrong error")
}

func TestMetadataFlags(t *testing.T) {
	md := message.Metadata{
		Flags:            message.FlagSolid | message.FlagReferenced,
		MilestoneIndex:   17,
		ArrivalTimestamp: 1600000000,
	}

	var restored message.Metadata
	assert.Nil(t, restored.Unpack(md.Pack()), "wrong unpack error")
	assert.True(t, restored.Has(message.FlagSolid), "solid flag lost")
	assert.True(t, restored.Has(message.FlagReferenced), "referenced flag lost")
	assert.False(t, restored.Has(message.FlagMilestone), "unexpected milestone flag")
	assert.Equal(t, md, restored, "wrong metadata")
}

func TestOutputIDLayout(t *testing.T) {
	o := message.OutputID{
		TransactionID: message.TransactionID{0xaa},
		Index:         0x0102,
	}
	packed := o.Pack()
	assert.Equal(t, message.OutputIDLength, len(packed), "wrong length")
	assert.Equal(t, []byte{0x01, 0x02}, packed[message.TransactionIDLength:], "index must be big endian")

	var restored message.OutputID
	assert.Nil(t, restored.Unpack(packed), "wrong unpack error")
	assert.Equal(t, o, restored, "wrong output id")

	assert.Equal(t, fault.ErrRecordTrailingBytes, restored.Unpack(append(packed, 0)), "wrong error")
}

func TestMilestoneIndexSortsBigEndian(t *testing.T) {
	a := message.MilestoneIndex(255).Pack()
	b := message.MilestoneIndex(256).Pack()
	assert.Equal(t, -1, bytes.Compare(a, b), "keys must sort by index")
}

func TestPadIndex(t *testing.T) {
	padded := message.PadIndex([]byte("abc"))
	assert.Equal(t, []byte("abc"), padded[:3], "wrong prefix")
	assert.Equal(t, make([]byte, message.IndexationPaddedIndexLength-3), padded[3:], "wrong padding")
}

func TestComputeID(t *testing.T) {
	m := message.Message{
		NetworkID: 1,
		Parents:   []message.ID{{1}, {2}},
		Index:     []byte("index"),
		Payload:   []byte("payload"),
		Nonce:     99,
	}

	id := m.ComputeID()
	assert.Equal(t, id, m.ComputeID(), "not deterministic")
	assert.NotEqual(t, message.ID{}, id, "zero id")

	m.Nonce += 1
	assert.NotEqual(t, id, m.ComputeID(), "nonce not covered")
}
