// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/fixtures"
	"github.com/hivenode/hived/storage/backend"
)

func TestInspect(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	assert.Nil(t, s.InsertMessage(fixtures.MessageID(1), fixtures.Message(1)))
	assert.Nil(t, s.InsertMessage(fixtures.MessageID(2), fixtures.Message(2)))
	assert.Nil(t, s.Shutdown(), "wrong shutdown error")

	// a descriptor this build does not declare
	db, err := leveldb.OpenFile(config.Path, nil)
	assert.Nil(t, err, "wrong open error")
	assert.Nil(t, db.Put(catalogRecordKey("retired"), []byte{'z', 0}, nil))
	assert.Nil(t, db.Close())

	r, err := Inspect(config, true)
	assert.Nil(t, err, "wrong inspect error")
	assert.True(t, r.HasVersion, "version missing")
	assert.Equal(t, CurrentVersion, r.Version, "wrong version")
	assert.Equal(t, backend.Healthy, *r.Health, "wrong health")
	assert.Equal(t, 17, len(r.Partitions), "wrong partitions")
	assert.Empty(t, r.Missing, "wrong missing")
	assert.Equal(t, []PartitionInfo{{Name: "retired", Prefix: 'z'}}, r.Undeclared, "wrong undeclared")
	assert.Equal(t, 2, r.EntryCounts["message_id_to_message"], "wrong message count")
	assert.Equal(t, 0, r.EntryCounts["address_to_balance"], "wrong balance count")

	// inspection leaves a healthy store startable
	s, err = Start(config)
	assert.Nil(t, err, "wrong start after inspect")
	assert.Nil(t, s.Shutdown())
}

func TestInspectIdleStore(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	assert.Nil(t, crash(s))

	r, err := Inspect(config, false)
	assert.Nil(t, err, "wrong inspect error")
	assert.Equal(t, backend.Idle, *r.Health, "wrong health")
	assert.Nil(t, r.EntryCounts, "entries counted")
}

func TestInspectRequiresPath(t *testing.T) {
	_, err := Inspect(DefaultConfig(""), false)
	assert.Equal(t, fault.ErrStoragePathRequired, err, "wrong error")
}

func TestStatisticsCollector(t *testing.T) {
	config := DefaultConfig("")
	config.EnableStatistics = true

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	defer s.Shutdown()

	assert.Nil(t, s.InsertLedgerIndex(1))
	assert.Nil(t, s.Flush())

	c := s.Collector()
	if assert.NotNil(t, c, "no collector") {
		assert.True(t, testutil.CollectAndCount(c) > 0, "no metrics")
		assert.Equal(t, 1, testutil.CollectAndCount(c, "hived_storage_alive_snapshots"), "wrong snapshot metric count")
	}
}

func TestStatisticsDisabled(t *testing.T) {
	s := startMemory(t)
	assert.Nil(t, s.Collector(), "collector without statistics")
}
