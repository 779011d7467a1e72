// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/hivenode/hived/message"
)

// message id → message

type FetchMessage interface {
	FetchMessage(id message.ID) (*message.Message, error)
}

type InsertMessage interface {
	InsertMessage(id message.ID, m message.Message) error
}

type TruncateMessages interface {
	TruncateMessages() error
}

// message id → metadata

type FetchMetadata interface {
	FetchMetadata(id message.ID) (*message.Metadata, error)
}

type InsertMetadata interface {
	InsertMetadata(id message.ID, metadata message.Metadata) error
}

type TruncateMetadata interface {
	TruncateMetadata() error
}

// (parent, child) → (), fetched by parent

type FetchApprovers interface {
	FetchApprovers(parent message.ID) ([]message.ID, error)
}

type InsertApprover interface {
	InsertApprover(parent message.ID, child message.ID) error
}

type TruncateApprovers interface {
	TruncateApprovers() error
}

// (padded index, message id) → (), fetched by padded index

type FetchIndexation interface {
	FetchIndexation(index message.IndexationPaddedIndex) ([]message.ID, error)
}

type InsertIndexation interface {
	InsertIndexation(index message.IndexationPaddedIndex, id message.ID) error
}

type TruncateIndexation interface {
	TruncateIndexation() error
}
