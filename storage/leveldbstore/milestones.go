// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/snapshotrecord"
	"github.com/hivenode/hived/tanglerecord"
)

func (s *Storage) FetchMilestone(index message.MilestoneIndex) (*tanglerecord.Milestone, error) {
	return fetch[tanglerecord.Milestone](s, s.pool.Milestones, index.Pack())
}

func (s *Storage) InsertMilestone(index message.MilestoneIndex, milestone tanglerecord.Milestone) error {
	return insert(s, s.pool.Milestones, index.Pack(), milestone.Pack())
}

func (s *Storage) TruncateMilestones() error {
	return truncate(s, s.pool.Milestones)
}

func (s *Storage) FetchSolidEntryPoint(sep tanglerecord.SolidEntryPoint) (*message.MilestoneIndex, error) {
	return fetch[message.MilestoneIndex](s, s.pool.SolidEntryPoints, sep.Pack())
}

func (s *Storage) InsertSolidEntryPoint(sep tanglerecord.SolidEntryPoint, index message.MilestoneIndex) error {
	return insert(s, s.pool.SolidEntryPoints, sep.Pack(), index.Pack())
}

func (s *Storage) TruncateSolidEntryPoints() error {
	return truncate(s, s.pool.SolidEntryPoints)
}

// FetchUnconfirmedMessages - messages left unconfirmed at a milestone
func (s *Storage) FetchUnconfirmedMessages(index message.MilestoneIndex) ([]tanglerecord.UnconfirmedMessage, error) {
	return fetchByPrefix[tanglerecord.UnconfirmedMessage](s, s.pool.UnconfirmedMessages, index.Pack())
}

func (s *Storage) InsertUnconfirmedMessage(index message.MilestoneIndex, m tanglerecord.UnconfirmedMessage) error {
	return insert(s, s.pool.UnconfirmedMessages, join(index.Pack(), m.Pack()), nil)
}

func (s *Storage) TruncateUnconfirmedMessages() error {
	return truncate(s, s.pool.UnconfirmedMessages)
}

func (s *Storage) FetchSnapshotInfo() (*snapshotrecord.Info, error) {
	return fetch[snapshotrecord.Info](s, s.pool.SnapshotInfo, nil)
}

func (s *Storage) InsertSnapshotInfo(info snapshotrecord.Info) error {
	return insert(s, s.pool.SnapshotInfo, nil, info.Pack())
}

func (s *Storage) TruncateSnapshotInfo() error {
	return truncate(s, s.pool.SnapshotInfo)
}
