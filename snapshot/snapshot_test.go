// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/fixtures"
	"github.com/hivenode/hived/ledger"
	"github.com/hivenode/hived/ledgerrecord"
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/snapshot"
	"github.com/hivenode/hived/snapshotrecord"
	"github.com/hivenode/hived/storage/leveldbstore"
	"github.com/hivenode/hived/tanglerecord"
)

var _ snapshot.StorageBackend = (*leveldbstore.Storage)(nil)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func sample() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Info: snapshotrecord.Info{
			NetworkID:       1,
			SnapshotIndex:   100,
			EntryPointIndex: 100,
			PruningIndex:    90,
			Timestamp:       1600000000,
		},
		LedgerIndex: 100,
		SolidEntryPoints: []snapshot.SolidEntryPoint{
			{MessageID: fixtures.MessageID(1), Index: 99},
			{MessageID: fixtures.MessageID(2), Index: 100},
		},
		Outputs: []snapshot.Output{
			{ID: fixtures.OutputID(1, 0), Output: fixtures.CreatedOutput(1, 2000000)},
			{ID: fixtures.OutputID(2, 0), Output: fixtures.CreatedOutput(2, 3000000)},
		},
		Treasury: &ledgerrecord.TreasuryOutput{MilestoneID: ledgerrecord.MilestoneID{1}, Amount: 500},
	}
}

func TestImport(t *testing.T) {
	config := leveldbstore.DefaultConfig(filepath.Join(t.TempDir(), "snapshot.leveldb"))

	s, err := leveldbstore.Start(config)
	assert.Nil(t, err, "wrong start error")

	err = snapshot.Import(s, sample())
	assert.Nil(t, err, "wrong import error")
	assert.Nil(t, s.Shutdown(), "wrong shutdown error")

	// everything survives a restart
	s, err = leveldbstore.Start(config)
	assert.Nil(t, err, "wrong restart error")
	defer s.Shutdown()

	info, index, err := snapshot.Status(s)
	assert.Nil(t, err, "wrong status error")
	assert.Equal(t, sample().Info, *info, "wrong info")
	assert.Equal(t, ledgerrecord.LedgerIndex(100), *index, "wrong ledger index")

	sepIndex, err := s.FetchSolidEntryPoint(tanglerecord.SolidEntryPoint(fixtures.MessageID(2)))
	assert.Nil(t, err, "wrong fetch error")
	assert.Equal(t, message.MilestoneIndex(100), *sepIndex, "wrong entry point")

	unspent, err := ledger.UnspentOutputs(s, fixtures.Address(2))
	assert.Nil(t, err, "wrong unspent error")
	assert.Equal(t, []message.OutputID{fixtures.OutputID(2, 0)}, unspent, "wrong unspent")

	balance, err := ledger.Balance(s, fixtures.Address(1))
	assert.Nil(t, err, "wrong balance error")
	assert.Equal(t, uint64(2000000), balance.Amount, "wrong balance")

	treasury, err := s.FetchTreasuryOutputs(false)
	assert.Nil(t, err, "wrong treasury error")
	assert.Equal(t, []ledgerrecord.TreasuryOutput{*sample().Treasury}, treasury, "wrong treasury")
}

func TestImportTwice(t *testing.T) {
	s, err := leveldbstore.Start(leveldbstore.DefaultConfig(""))
	assert.Nil(t, err, "wrong start error")
	defer s.Shutdown()

	assert.Nil(t, snapshot.Import(s, sample()), "wrong import error")

	err = snapshot.Import(s, sample())
	assert.True(t, errors.Is(err, fault.ErrSnapshotExists), "second import accepted")
}

// fails the first ledger index write
type failingStore struct {
	*leveldbstore.Storage
	failed bool
}

var errDiskFull = errors.New("disk full")

func (f *failingStore) InsertLedgerIndex(index ledgerrecord.LedgerIndex) error {
	if !f.failed {
		f.failed = true
		return errDiskFull
	}
	return f.Storage.InsertLedgerIndex(index)
}

func TestImportRetryAfterFailure(t *testing.T) {
	s, err := leveldbstore.Start(leveldbstore.DefaultConfig(""))
	assert.Nil(t, err, "wrong start error")
	defer s.Shutdown()

	store := &failingStore{Storage: s}

	err = snapshot.Import(store, sample())
	assert.Equal(t, errDiskFull, err, "wrong first import error")

	info, _, err := snapshot.Status(store)
	assert.Nil(t, err, "wrong status error")
	assert.Nil(t, info, "info written by failed import")

	assert.Nil(t, snapshot.Import(store, sample()), "wrong retry error")

	balance, err := ledger.Balance(store, fixtures.Address(1))
	assert.Nil(t, err, "wrong balance error")
	assert.Equal(t, uint64(2000000), balance.Amount, "balance credited twice")

	unspent, err := ledger.UnspentOutputs(store, fixtures.Address(2))
	assert.Nil(t, err, "wrong unspent error")
	assert.Equal(t, []message.OutputID{fixtures.OutputID(2, 0)}, unspent, "wrong unspent")

	treasury, err := store.FetchTreasuryOutputs(false)
	assert.Nil(t, err, "wrong treasury error")
	assert.Equal(t, 1, len(treasury), "treasury duplicated")
}

func TestResetSolidEntryPoints(t *testing.T) {
	s, err := leveldbstore.Start(leveldbstore.DefaultConfig(""))
	assert.Nil(t, err, "wrong start error")
	defer s.Shutdown()

	assert.Nil(t, snapshot.ResetSolidEntryPoints(s, sample().SolidEntryPoints))

	replacement := []snapshot.SolidEntryPoint{{MessageID: fixtures.MessageID(9), Index: 200}}
	assert.Nil(t, snapshot.ResetSolidEntryPoints(s, replacement))

	old, err := s.FetchSolidEntryPoint(tanglerecord.SolidEntryPoint(fixtures.MessageID(1)))
	assert.Nil(t, err, "wrong fetch error")
	assert.Nil(t, old, "old entry point kept")

	index, err := s.FetchSolidEntryPoint(tanglerecord.SolidEntryPoint(fixtures.MessageID(9)))
	assert.Nil(t, err, "wrong fetch error")
	assert.Equal(t, message.MilestoneIndex(200), *index, "wrong entry point")
}

func TestStatusEmpty(t *testing.T) {
	s, err := leveldbstore.Start(leveldbstore.DefaultConfig(""))
	assert.Nil(t, err, "wrong start error")
	defer s.Shutdown()

	info, index, err := snapshot.Status(s)
	assert.Nil(t, err, "wrong status error")
	assert.Nil(t, info, "info on empty store")
	assert.Nil(t, index, "index on empty store")
}
