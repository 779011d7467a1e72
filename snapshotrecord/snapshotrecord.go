// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snapshotrecord - description of the snapshot a node started from
package snapshotrecord

import (
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/util"
)

// Info - snapshot description
//
//	network id ++ snapshot index ++ entry point index ++ pruning index ++ timestamp
type Info struct {
	NetworkID       uint64
	SnapshotIndex   message.MilestoneIndex
	EntryPointIndex message.MilestoneIndex
	PruningIndex    message.MilestoneIndex
	Timestamp       uint64
}

// Pack - stored form
func (i Info) Pack() []byte {
	return util.NewPacker(8 + 3*message.MilestoneIndexLength + 8).
		Uint64(i.NetworkID).
		Uint32(uint32(i.SnapshotIndex)).
		Uint32(uint32(i.EntryPointIndex)).
		Uint32(uint32(i.PruningIndex)).
		Uint64(i.Timestamp).
		Packed()
}

// Unpack - restore from stored form
func (i *Info) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	i.NetworkID = u.Uint64()
	i.SnapshotIndex = message.MilestoneIndex(u.Uint32())
	i.EntryPointIndex = message.MilestoneIndex(u.Uint32())
	i.PruningIndex = message.MilestoneIndex(u.Uint32())
	i.Timestamp = u.Uint64()
	return u.Finish()
}
