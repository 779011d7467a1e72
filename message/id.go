// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/hex"
	"fmt"

	"github.com/hivenode/hived/util"
)

// sizes of the fixed length identifiers
const (
	IDLength                    = 32
	TransactionIDLength         = 32
	OutputIndexLength           = 2
	OutputIDLength              = TransactionIDLength + OutputIndexLength
	Ed25519AddressLength        = 32
	IndexationPaddedIndexLength = 64
	MilestoneIndexLength        = 4
)

// ID - message identifier
type ID [IDLength]byte

// TransactionID - transaction identifier
type TransactionID [TransactionIDLength]byte

// Ed25519Address - address derived from an Ed25519 public key
type Ed25519Address [Ed25519AddressLength]byte

// IndexationPaddedIndex - indexation key padded to a fixed length so
// that it can serve as a key prefix
type IndexationPaddedIndex [IndexationPaddedIndexLength]byte

// OutputID - a transaction output reference
type OutputID struct {
	TransactionID TransactionID
	Index         uint16
}

// MilestoneIndex - sequence number of a milestone
type MilestoneIndex uint32

// PadIndex - zero fill an indexation key, longer keys are truncated
func PadIndex(index []byte) IndexationPaddedIndex {
	var padded IndexationPaddedIndex
	copy(padded[:], index)
	return padded
}

// String - hex form
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Pack - stored form
func (id ID) Pack() []byte {
	return append([]byte{}, id[:]...)
}

// Unpack - restore from stored form
func (id *ID) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	u.Fixed(id[:])
	return u.Finish()
}

// String - hex form
func (id TransactionID) String() string {
	return hex.EncodeToString(id[:])
}

// String - hex form
func (a Ed25519Address) String() string {
	return hex.EncodeToString(a[:])
}

// Pack - stored form
func (a Ed25519Address) Pack() []byte {
	return append([]byte{}, a[:]...)
}

// Unpack - restore from stored form
func (a *Ed25519Address) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	u.Fixed(a[:])
	return u.Finish()
}

// Pack - stored form
func (p IndexationPaddedIndex) Pack() []byte {
	return append([]byte{}, p[:]...)
}

// String - <transaction id>:<index>
func (o OutputID) String() string {
	return fmt.Sprintf("%s:%d", o.TransactionID, o.Index)
}

// Pack - stored form
func (o OutputID) Pack() []byte {
	return util.NewPacker(OutputIDLength).
		Fixed(o.TransactionID[:]).
		Uint16(o.Index).
		Packed()
}

// Unpack - restore from stored form
func (o *OutputID) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	u.Fixed(o.TransactionID[:])
	o.Index = u.Uint16()
	return u.Finish()
}

// Pack - stored form, big endian so that keys sort by index
func (m MilestoneIndex) Pack() []byte {
	return util.NewPacker(MilestoneIndexLength).Uint32(uint32(m)).Packed()
}

// Unpack - restore from stored form
func (m *MilestoneIndex) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	*m = MilestoneIndex(u.Uint32())
	return u.Finish()
}
