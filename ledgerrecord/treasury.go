// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/util"
)

// MilestoneIDLength - size of a milestone payload identifier
const MilestoneIDLength = 32

// TreasuryOutputLength - size of the stored form
const TreasuryOutputLength = MilestoneIDLength + 8

// MilestoneID - identifier of a milestone payload
type MilestoneID [MilestoneIDLength]byte

// TreasuryOutput - treasury funds created by a milestone
type TreasuryOutput struct {
	MilestoneID MilestoneID
	Amount      uint64
}

// Receipt - migration receipt included in a milestone
type Receipt struct {
	MigratedAt    message.MilestoneIndex
	Final         bool
	IncludedIn    message.MilestoneIndex
	TransactionID message.TransactionID
}

// Pack - stored form
func (t TreasuryOutput) Pack() []byte {
	return util.NewPacker(TreasuryOutputLength).
		Fixed(t.MilestoneID[:]).
		Uint64(t.Amount).
		Packed()
}

// Unpack - restore from stored form
func (t *TreasuryOutput) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	unpackTreasuryOutput(u, t)
	return u.Finish()
}

func unpackTreasuryOutput(u *util.Unpacker, t *TreasuryOutput) {
	u.Fixed(t.MilestoneID[:])
	t.Amount = u.Uint64()
}

// Pack - stored form
func (r Receipt) Pack() []byte {
	return util.NewPacker(2*message.MilestoneIndexLength + 1 + message.TransactionIDLength).
		Uint32(uint32(r.MigratedAt)).
		Bool(r.Final).
		Uint32(uint32(r.IncludedIn)).
		Fixed(r.TransactionID[:]).
		Packed()
}

// Unpack - restore from stored form
func (r *Receipt) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	r.MigratedAt = message.MilestoneIndex(u.Uint32())
	r.Final = u.Bool()
	r.IncludedIn = message.MilestoneIndex(u.Uint32())
	u.Fixed(r.TransactionID[:])
	return u.Finish()
}
