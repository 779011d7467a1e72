// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/snapshotrecord"
	"github.com/hivenode/hived/tanglerecord"
)

// milestone index → milestone

type FetchMilestone interface {
	FetchMilestone(index message.MilestoneIndex) (*tanglerecord.Milestone, error)
}

type InsertMilestone interface {
	InsertMilestone(index message.MilestoneIndex, milestone tanglerecord.Milestone) error
}

type TruncateMilestones interface {
	TruncateMilestones() error
}

// solid entry point → milestone index

type FetchSolidEntryPoint interface {
	FetchSolidEntryPoint(sep tanglerecord.SolidEntryPoint) (*message.MilestoneIndex, error)
}

type InsertSolidEntryPoint interface {
	InsertSolidEntryPoint(sep tanglerecord.SolidEntryPoint, index message.MilestoneIndex) error
}

type TruncateSolidEntryPoints interface {
	TruncateSolidEntryPoints() error
}

// (milestone index, unconfirmed message) → (), fetched by milestone index

type FetchUnconfirmedMessages interface {
	FetchUnconfirmedMessages(index message.MilestoneIndex) ([]tanglerecord.UnconfirmedMessage, error)
}

type InsertUnconfirmedMessage interface {
	InsertUnconfirmedMessage(index message.MilestoneIndex, m tanglerecord.UnconfirmedMessage) error
}

type TruncateUnconfirmedMessages interface {
	TruncateUnconfirmedMessages() error
}

// () → snapshot info

type FetchSnapshotInfo interface {
	FetchSnapshotInfo() (*snapshotrecord.Info, error)
}

type InsertSnapshotInfo interface {
	InsertSnapshotInfo(info snapshotrecord.Info) error
}

type TruncateSnapshotInfo interface {
	TruncateSnapshotInfo() error
}
