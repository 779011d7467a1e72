// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/hivenode/hived/util"
)

// Flags - message state bits
type Flags uint8

// individual flags
const (
	FlagSolid Flags = 1 << iota
	FlagMilestone
	FlagReferenced
	FlagValid
	FlagRequested
)

const metadataLength = 1 + MilestoneIndexLength + 3*8

// Metadata - node local information about a message
type Metadata struct {
	Flags                   Flags
	MilestoneIndex          MilestoneIndex
	ArrivalTimestamp        uint64
	SolidificationTimestamp uint64
	ConfirmationTimestamp   uint64
}

// Has - test a flag
func (m Metadata) Has(flag Flags) bool {
	return 0 != m.Flags&flag
}

// Pack - stored form
func (m Metadata) Pack() []byte {
	return util.NewPacker(metadataLength).
		Uint8(uint8(m.Flags)).
		Uint32(uint32(m.MilestoneIndex)).
		Uint64(m.ArrivalTimestamp).
		Uint64(m.SolidificationTimestamp).
		Uint64(m.ConfirmationTimestamp).
		Packed()
}

// Unpack - restore from stored form
func (m *Metadata) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	m.Flags = Flags(u.Uint8())
	m.MilestoneIndex = MilestoneIndex(u.Uint32())
	m.ArrivalTimestamp = u.Uint64()
	m.SolidificationTimestamp = u.Uint64()
	m.ConfirmationTimestamp = u.Uint64()
	return u.Finish()
}
