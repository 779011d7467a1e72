// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"github.com/bitmark-inc/logger"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/ledger"
	"github.com/hivenode/hived/ledgerrecord"
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/snapshotrecord"
	"github.com/hivenode/hived/tanglerecord"
)

// SolidEntryPoint - an entry point and the milestone that confirmed it
type SolidEntryPoint struct {
	MessageID message.ID
	Index     message.MilestoneIndex
}

// Output - an unspent output carried by a snapshot
type Output struct {
	ID     message.OutputID
	Output ledgerrecord.CreatedOutput
}

// Snapshot - the decoded content of a snapshot file
type Snapshot struct {
	Info             snapshotrecord.Info
	LedgerIndex      ledgerrecord.LedgerIndex
	SolidEntryPoints []SolidEntryPoint
	Outputs          []Output
	Treasury         *ledgerrecord.TreasuryOutput
}

// Import - load a snapshot into an empty ledger
//
// the snapshot info is written last, so a store holding it has a
// complete import; without it any ledger content is the remains of a
// failed import and is cleared first
func Import(store StorageBackend, s *Snapshot) error {
	log := logger.New("snapshot")

	existing, err := store.FetchSnapshotInfo()
	if nil != err {
		return err
	}
	if nil != existing {
		log.Warnf("snapshot already imported: index: %d", existing.SnapshotIndex)
		return fault.ErrSnapshotExists
	}

	log.Infof("import: snapshot index: %d  entry points: %d  outputs: %d", s.Info.SnapshotIndex, len(s.SolidEntryPoints), len(s.Outputs))

	err = ledger.Reset(store)
	if nil != err {
		return err
	}

	err = ResetSolidEntryPoints(store, s.SolidEntryPoints)
	if nil != err {
		return err
	}

	for _, o := range s.Outputs {
		err = ledger.CreateOutput(store, o.ID, o.Output)
		if nil != err {
			log.Errorf("import output: %s  error: %s", o.ID, err)
			return err
		}
	}

	if nil != s.Treasury {
		err = store.InsertTreasuryOutput(false, *s.Treasury)
		if nil != err {
			return err
		}
	}

	err = store.InsertLedgerIndex(s.LedgerIndex)
	if nil != err {
		return err
	}
	err = store.InsertSnapshotInfo(s.Info)
	if nil != err {
		return err
	}

	err = store.Flush()
	if nil != err {
		return err
	}

	log.Infof("import complete: ledger index: %d", s.LedgerIndex)
	return nil
}

// ResetSolidEntryPoints - replace every entry point
func ResetSolidEntryPoints(store StorageBackend, entryPoints []SolidEntryPoint) error {
	err := store.TruncateSolidEntryPoints()
	if nil != err {
		return err
	}
	for _, sep := range entryPoints {
		err = store.InsertSolidEntryPoint(tanglerecord.SolidEntryPoint(sep.MessageID), sep.Index)
		if nil != err {
			return err
		}
	}
	return nil
}

// Status - the stored snapshot info and ledger index, nil if absent
func Status(store StorageBackend) (*snapshotrecord.Info, *ledgerrecord.LedgerIndex, error) {
	info, err := store.FetchSnapshotInfo()
	if nil != err {
		return nil, nil, err
	}
	index, err := store.FetchLedgerIndex()
	if nil != err {
		return nil, nil, err
	}
	return info, index, nil
}
