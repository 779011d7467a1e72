// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tanglerecord - milestone related records of the tangle
package tanglerecord

import (
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/util"
)

// Milestone - the message carrying a milestone and its timestamp
type Milestone struct {
	MessageID message.ID
	Timestamp uint64
}

// SolidEntryPoint - a message treated as solid without its past cone
type SolidEntryPoint message.ID

// UnconfirmedMessage - a message not referenced by a milestone
type UnconfirmedMessage message.ID

// Pack - stored form
func (m Milestone) Pack() []byte {
	return util.NewPacker(message.IDLength + 8).
		Fixed(m.MessageID[:]).
		Uint64(m.Timestamp).
		Packed()
}

// Unpack - restore from stored form
func (m *Milestone) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	u.Fixed(m.MessageID[:])
	m.Timestamp = u.Uint64()
	return u.Finish()
}

// MessageID - the underlying message
func (s SolidEntryPoint) MessageID() message.ID {
	return message.ID(s)
}

// Pack - stored form
func (s SolidEntryPoint) Pack() []byte {
	return message.ID(s).Pack()
}

// Unpack - restore from stored form
func (s *SolidEntryPoint) Unpack(buffer []byte) error {
	return (*message.ID)(s).Unpack(buffer)
}

// MessageID - the underlying message
func (m UnconfirmedMessage) MessageID() message.ID {
	return message.ID(m)
}

// Pack - stored form
func (m UnconfirmedMessage) Pack() []byte {
	return message.ID(m).Pack()
}

// Unpack - restore from stored form
func (m *UnconfirmedMessage) Unpack(buffer []byte) error {
	return (*message.ID)(m).Unpack(buffer)
}
