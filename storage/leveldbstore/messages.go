// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"github.com/hivenode/hived/message"
)

// FetchMessage - read a message
func (s *Storage) FetchMessage(id message.ID) (*message.Message, error) {
	return fetch[message.Message](s, s.pool.Messages, id.Pack())
}

// InsertMessage - store a message
func (s *Storage) InsertMessage(id message.ID, m message.Message) error {
	return insert(s, s.pool.Messages, id.Pack(), m.Pack())
}

// TruncateMessages - remove all messages
func (s *Storage) TruncateMessages() error {
	return truncate(s, s.pool.Messages)
}

// FetchMetadata - read a message's metadata
func (s *Storage) FetchMetadata(id message.ID) (*message.Metadata, error) {
	return fetch[message.Metadata](s, s.pool.Metadata, id.Pack())
}

// InsertMetadata - store a message's metadata
func (s *Storage) InsertMetadata(id message.ID, metadata message.Metadata) error {
	return insert(s, s.pool.Metadata, id.Pack(), metadata.Pack())
}

// TruncateMetadata - remove all metadata
func (s *Storage) TruncateMetadata() error {
	return truncate(s, s.pool.Metadata)
}

// FetchApprovers - the children that reference parent
func (s *Storage) FetchApprovers(parent message.ID) ([]message.ID, error) {
	return fetchByPrefix[message.ID](s, s.pool.Approvers, parent.Pack())
}

// InsertApprover - record that child references parent
func (s *Storage) InsertApprover(parent message.ID, child message.ID) error {
	return insert(s, s.pool.Approvers, join(parent.Pack(), child.Pack()), nil)
}

// TruncateApprovers - remove all approver edges
func (s *Storage) TruncateApprovers() error {
	return truncate(s, s.pool.Approvers)
}

// FetchIndexation - the messages carrying an index
func (s *Storage) FetchIndexation(index message.IndexationPaddedIndex) ([]message.ID, error) {
	return fetchByPrefix[message.ID](s, s.pool.Indexation, index.Pack())
}

// InsertIndexation - record that a message carries an index
func (s *Storage) InsertIndexation(index message.IndexationPaddedIndex, id message.ID) error {
	return insert(s, s.pool.Indexation, join(index.Pack(), id.Pack()), nil)
}

// TruncateIndexation - remove all indexation entries
func (s *Storage) TruncateIndexation() error {
	return truncate(s, s.pool.Indexation)
}
