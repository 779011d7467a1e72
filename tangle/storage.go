// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tangle - message graph storage
package tangle

import (
	"github.com/hivenode/hived/storage/access"
)

// StorageBackend - everything the message graph reads and writes
type StorageBackend interface {
	access.FetchMessage
	access.InsertMessage
	access.TruncateMessages

	access.FetchMetadata
	access.InsertMetadata
	access.TruncateMetadata

	access.FetchApprovers
	access.InsertApprover
	access.TruncateApprovers

	access.FetchIndexation
	access.InsertIndexation
	access.TruncateIndexation

	access.FetchMilestone
	access.InsertMilestone
	access.TruncateMilestones

	access.FetchSolidEntryPoint

	access.FetchUnconfirmedMessages
	access.InsertUnconfirmedMessage
	access.TruncateUnconfirmedMessages
}
