// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tangle

import (
	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/tanglerecord"
)

// StoreMessage - store a message with its metadata and graph edges
//
// returns false if the message was already stored, in which case
// nothing is written
func StoreMessage(store StorageBackend, id message.ID, m message.Message, metadata message.Metadata) (bool, error) {
	existing, err := store.FetchMessage(id)
	if nil != err {
		return false, err
	}
	if nil != existing {
		return false, nil
	}

	if len(m.Parents) > message.MaximumParents {
		return false, fault.ErrTooManyParents
	}

	err = store.InsertMessage(id, m)
	if nil != err {
		return false, err
	}
	err = store.InsertMetadata(id, metadata)
	if nil != err {
		return false, err
	}
	for _, parent := range m.Parents {
		err = store.InsertApprover(parent, id)
		if nil != err {
			return false, err
		}
	}
	if len(m.Index) > 0 {
		err = store.InsertIndexation(message.PadIndex(m.Index), id)
		if nil != err {
			return false, err
		}
	}
	return true, nil
}

// AttachMessage - store a message under its computed identifier
func AttachMessage(store StorageBackend, m message.Message, metadata message.Metadata) (message.ID, bool, error) {
	id := m.ComputeID()
	stored, err := StoreMessage(store, id, m, metadata)
	return id, stored, err
}

// Approvers - messages that reference id
func Approvers(store StorageBackend, id message.ID) ([]message.ID, error) {
	return store.FetchApprovers(id)
}

// MessagesByIndex - messages carrying an index
func MessagesByIndex(store StorageBackend, index []byte) ([]message.ID, error) {
	return store.FetchIndexation(message.PadIndex(index))
}

// IsSolidEntryPoint - true with the milestone index if id is an entry point
func IsSolidEntryPoint(store StorageBackend, id message.ID) (bool, message.MilestoneIndex, error) {
	index, err := store.FetchSolidEntryPoint(tanglerecord.SolidEntryPoint(id))
	if nil != err || nil == index {
		return false, 0, err
	}
	return true, *index, nil
}

// StoreMilestone - record a milestone and mark its message
func StoreMilestone(store StorageBackend, index message.MilestoneIndex, milestone tanglerecord.Milestone) error {
	metadata, err := store.FetchMetadata(milestone.MessageID)
	if nil != err {
		return err
	}
	if nil != metadata {
		metadata.Flags |= message.FlagMilestone
		metadata.MilestoneIndex = index
		err = store.InsertMetadata(milestone.MessageID, *metadata)
		if nil != err {
			return err
		}
	}
	return store.InsertMilestone(index, milestone)
}

// MarkUnconfirmed - note a message left unconfirmed by a milestone
func MarkUnconfirmed(store StorageBackend, index message.MilestoneIndex, id message.ID) error {
	return store.InsertUnconfirmedMessage(index, tanglerecord.UnconfirmedMessage(id))
}

// UnconfirmedMessages - messages left unconfirmed by a milestone
func UnconfirmedMessages(store StorageBackend, index message.MilestoneIndex) ([]message.ID, error) {
	ms, err := store.FetchUnconfirmedMessages(index)
	if nil != err {
		return nil, err
	}
	ids := make([]message.ID, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.MessageID())
	}
	return ids, nil
}

// Reset - empty every graph partition
func Reset(store StorageBackend) error {
	truncate := []func() error{
		store.TruncateMessages,
		store.TruncateMetadata,
		store.TruncateApprovers,
		store.TruncateIndexation,
		store.TruncateMilestones,
		store.TruncateUnconfirmedMessages,
	}
	for _, f := range truncate {
		if err := f(); nil != err {
			return err
		}
	}
	return nil
}
