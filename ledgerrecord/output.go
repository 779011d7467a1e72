// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/util"
)

// OutputKind - type of a transaction output
type OutputKind uint8

// output kinds
const (
	SignatureLockedSingle OutputKind = iota
	SignatureLockedDustAllowance
)

// Output - funds locked to an address
type Output struct {
	Kind    OutputKind
	Address message.Ed25519Address
	Amount  uint64
}

// CreatedOutput - an output and the message whose transaction created it
type CreatedOutput struct {
	MessageID message.ID
	Output    Output
}

// ConsumedOutput - the transaction that spent an output and when it
// was confirmed
type ConsumedOutput struct {
	Target         message.TransactionID
	MilestoneIndex message.MilestoneIndex
}

// Unspent - marker of an unspent output
type Unspent message.OutputID

// LedgerIndex - milestone up to which the ledger is applied
type LedgerIndex message.MilestoneIndex

const (
	createdOutputLength  = message.IDLength + 1 + message.Ed25519AddressLength + 8
	consumedOutputLength = message.TransactionIDLength + message.MilestoneIndexLength
)

// Pack - stored form
func (c CreatedOutput) Pack() []byte {
	return util.NewPacker(createdOutputLength).
		Fixed(c.MessageID[:]).
		Uint8(uint8(c.Output.Kind)).
		Fixed(c.Output.Address[:]).
		Uint64(c.Output.Amount).
		Packed()
}

// Unpack - restore from stored form
func (c *CreatedOutput) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	u.Fixed(c.MessageID[:])
	c.Output.Kind = OutputKind(u.Uint8())
	u.Fixed(c.Output.Address[:])
	c.Output.Amount = u.Uint64()
	if err := u.Finish(); nil != err {
		return err
	}
	if c.Output.Kind > SignatureLockedDustAllowance {
		return fault.ErrInvalidOutputKind
	}
	return nil
}

// Pack - stored form
func (c ConsumedOutput) Pack() []byte {
	return util.NewPacker(consumedOutputLength).
		Fixed(c.Target[:]).
		Uint32(uint32(c.MilestoneIndex)).
		Packed()
}

// Unpack - restore from stored form
func (c *ConsumedOutput) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	u.Fixed(c.Target[:])
	c.MilestoneIndex = message.MilestoneIndex(u.Uint32())
	return u.Finish()
}

// OutputID - the referenced output
func (u Unspent) OutputID() message.OutputID {
	return message.OutputID(u)
}

// Pack - stored form
func (u Unspent) Pack() []byte {
	return message.OutputID(u).Pack()
}

// Unpack - restore from stored form
func (u *Unspent) Unpack(buffer []byte) error {
	return (*message.OutputID)(u).Unpack(buffer)
}

// Pack - stored form
func (l LedgerIndex) Pack() []byte {
	return message.MilestoneIndex(l).Pack()
}

// Unpack - restore from stored form
func (l *LedgerIndex) Unpack(buffer []byte) error {
	return (*message.MilestoneIndex)(l).Unpack(buffer)
}
