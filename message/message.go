// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"golang.org/x/crypto/blake2b"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/util"
)

// MaximumParents - a message references at most this many parents
const MaximumParents = 8

// Message - a vertex of the tangle
//
// Index is the indexation key of the payload, empty when the message
// carries no indexation
type Message struct {
	NetworkID uint64
	Parents   []ID
	Index     []byte
	Payload   []byte
	Nonce     uint64
}

// Pack - stored form
//
//	network id ++ parent count(varint) ++ parents ++ index(varint bytes) ++ payload(varint bytes) ++ nonce
func (m Message) Pack() []byte {
	p := util.NewPacker(8 + 1 + len(m.Parents)*IDLength + len(m.Index) + len(m.Payload) + 16)
	p.Uint64(m.NetworkID)
	p.Varint(uint64(len(m.Parents)))
	for _, parent := range m.Parents {
		p.Fixed(parent[:])
	}
	p.Bytes(m.Index)
	p.Bytes(m.Payload)
	p.Uint64(m.Nonce)
	return p.Packed()
}

// Unpack - restore from stored form
func (m *Message) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	m.NetworkID = u.Uint64()

	n := u.Count(IDLength)
	if n > MaximumParents {
		return fault.ErrTooManyParents
	}
	m.Parents = nil
	if n > 0 {
		m.Parents = make([]ID, n)
	}
	for i := range m.Parents {
		u.Fixed(m.Parents[i][:])
	}
	m.Index = u.Bytes()
	m.Payload = u.Bytes()
	m.Nonce = u.Uint64()
	return u.Finish()
}

// ComputeID - identifier of a message, the BLAKE2b-256 digest of its
// stored form
func (m Message) ComputeID() ID {
	return ID(blake2b.Sum256(m.Pack()))
}
