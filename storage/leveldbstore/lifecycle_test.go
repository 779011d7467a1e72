// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/fixtures"
	"github.com/hivenode/hived/ledgerrecord"
	"github.com/hivenode/hived/storage/backend"
)

func TestStartFreshWritesVersionAndCatalog(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")

	version, found, err := s.Version()
	assert.Nil(t, err, "wrong version error")
	assert.True(t, found, "version not written")
	assert.Equal(t, CurrentVersion, version, "wrong version")

	health, err := s.Health()
	assert.Nil(t, err, "wrong health error")
	if assert.NotNil(t, health, "health not written") {
		assert.Equal(t, backend.Idle, *health, "wrong health after start")
	}

	catalog, err := readCatalog(s.db)
	assert.Nil(t, err, "wrong catalog error")
	assert.Equal(t, len(s.list), len(catalog), "wrong catalog size")

	assert.Nil(t, s.Shutdown(), "wrong shutdown error")
}

func TestFullCycle(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")

	err = s.SetHealth(backend.Idle)
	assert.Nil(t, err, "wrong set health error")
	health, err := s.Health()
	assert.Nil(t, err, "wrong health error")
	assert.Equal(t, backend.Idle, *health, "wrong health")

	err = s.InsertMessage(fixtures.MessageID(1), fixtures.Message(1))
	assert.Nil(t, err, "wrong insert error")

	assert.Nil(t, s.Shutdown(), "wrong shutdown error")

	// shutdown left the store healthy
	db, err := leveldb.OpenFile(config.Path, nil)
	assert.Nil(t, err, "wrong open error")
	stored, err := readHealth(db)
	assert.Nil(t, err, "wrong read health error")
	assert.Equal(t, backend.Healthy, *stored, "shutdown did not write healthy")
	assert.Nil(t, db.Close())

	s, err = Start(config)
	assert.Nil(t, err, "wrong restart error")

	health, err = s.Health()
	assert.Nil(t, err, "wrong health error")
	assert.Equal(t, backend.Idle, *health, "wrong health after restart")

	m, err := s.FetchMessage(fixtures.MessageID(1))
	assert.Nil(t, err, "wrong fetch error")
	assert.Equal(t, fixtures.Message(1), *m, "message lost across restart")

	assert.Nil(t, s.Shutdown(), "wrong shutdown error")
}

func TestStartRefusesIdleStorage(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	assert.Nil(t, crash(s), "wrong close error")

	_, err = Start(config)
	assert.True(t, errors.Is(err, fault.ErrUnhealthyStorage), "wrong error: %v", err)

	var unhealthy *backend.UnhealthyStorageError
	if assert.True(t, errors.As(err, &unhealthy), "wrong error type") {
		assert.Equal(t, backend.Idle, unhealthy.Health, "wrong stored health")
	}

	// refusal is repeatable: nothing was changed
	_, err = Start(config)
	assert.True(t, errors.Is(err, fault.ErrUnhealthyStorage), "wrong error: %v", err)
}

func TestStartVersionMismatch(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	assert.Nil(t, s.Shutdown(), "wrong shutdown error")

	_, err = start(config, CurrentVersion+1)
	var mismatch *backend.VersionMismatchError
	if assert.True(t, errors.As(err, &mismatch), "wrong error: %v", err) {
		assert.Equal(t, CurrentVersion, mismatch.Stored, "wrong stored version")
		assert.Equal(t, CurrentVersion+1, mismatch.Expected, "wrong expected version")
	}
	assert.True(t, errors.Is(err, fault.ErrVersionMismatch), "not classified")

	// no writes: version kept and store still healthy
	db, err := leveldb.OpenFile(config.Path, nil)
	assert.Nil(t, err, "wrong open error")
	version, _, err := readVersion(db)
	assert.Nil(t, err, "wrong read version error")
	assert.Equal(t, CurrentVersion, version, "version was overwritten")
	health, err := readHealth(db)
	assert.Nil(t, err, "wrong read health error")
	assert.Equal(t, backend.Healthy, *health, "health was overwritten")
	assert.Nil(t, db.Close())
}

func TestStartCorruptSystemRecord(t *testing.T) {
	records := []struct {
		name  string
		key   byte
		value []byte
		tag   byte
		empty bool
	}{
		{"health with version tag", healthKey, []byte{versionTag, 0}, versionTag, false},
		{"version with health tag", versionKey, append([]byte{healthTag}, make([]byte, 8)...), healthTag, false},
		{"empty health", healthKey, []byte{}, 0, true},
		{"empty version", versionKey, []byte{}, 0, true},
	}

	for _, item := range records {
		config := testConfig(t)

		s, err := Start(config)
		assert.Nil(t, err, "%s: wrong start error", item.name)
		assert.Nil(t, s.Shutdown(), "%s: wrong shutdown error", item.name)

		db, err := leveldb.OpenFile(config.Path, nil)
		assert.Nil(t, err, "%s: wrong open error", item.name)
		err = db.Put(systemKey(item.key), item.value, nil)
		assert.Nil(t, err, "%s: wrong put error", item.name)
		assert.Nil(t, db.Close())

		_, err = Start(config)
		assert.True(t, errors.Is(err, fault.ErrCorruptSystemRecord), "%s: wrong error: %v", item.name, err)

		var corrupt *backend.CorruptRecordError
		if assert.True(t, errors.As(err, &corrupt), "%s: wrong error type", item.name) {
			assert.Equal(t, item.key, corrupt.Key, "%s: wrong key", item.name)
			assert.Equal(t, item.tag, corrupt.Tag, "%s: wrong tag", item.name)
			assert.Equal(t, item.empty, corrupt.Empty, "%s: wrong empty", item.name)
		}
	}
}

func TestStartShortVersionRecord(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	assert.Nil(t, s.Shutdown(), "wrong shutdown error")

	db, err := leveldb.OpenFile(config.Path, nil)
	assert.Nil(t, err, "wrong open error")
	err = db.Put(systemKey(versionKey), []byte{versionTag, 0, 0, 1}, nil)
	assert.Nil(t, err, "wrong put error")
	assert.Nil(t, db.Close())

	_, err = Start(config)
	assert.True(t, errors.Is(err, fault.ErrDecodeFailed), "wrong error: %v", err)
	assert.True(t, errors.Is(err, fault.ErrRecordTruncated), "cause lost: %v", err)

	var decode *backend.DecodeError
	if assert.True(t, errors.As(err, &decode), "wrong error type") {
		assert.Equal(t, systemPartitionName, decode.Partition, "wrong partition")
	}
}

func TestStartMissingPartition(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	assert.Nil(t, s.Shutdown(), "wrong shutdown error")

	db, err := leveldb.OpenFile(config.Path, nil)
	assert.Nil(t, err, "wrong open error")
	err = db.Delete(catalogRecordKey("address_to_balance"), nil)
	assert.Nil(t, err, "wrong delete error")
	assert.Nil(t, db.Close())

	config.CreateMissingPartitions = false
	_, err = Start(config)
	assert.Equal(t, fault.ErrMissingPartition, err, "wrong error")

	config.CreateMissingPartitions = true
	s, err = Start(config)
	assert.Nil(t, err, "wrong start error")
	catalog, err := readCatalog(s.db)
	assert.Nil(t, err, "wrong catalog error")
	assert.Equal(t, len(s.list), len(catalog), "partition not recreated")
	assert.Nil(t, s.Shutdown(), "wrong shutdown error")
}

func TestStartPartitionMismatch(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	assert.Nil(t, s.Shutdown(), "wrong shutdown error")

	db, err := leveldb.OpenFile(config.Path, nil)
	assert.Nil(t, err, "wrong open error")
	err = db.Put(catalogRecordKey("ledger_index"), []byte{'Z', 0}, nil)
	assert.Nil(t, err, "wrong put error")
	assert.Nil(t, db.Close())

	_, err = Start(config)
	assert.Equal(t, fault.ErrPartitionMismatch, err, "wrong error")
}

func TestStartMissingDirectory(t *testing.T) {
	config := testConfig(t)
	config.CreateIfMissing = false

	_, err := Start(config)
	assert.NotNil(t, err, "opened a missing store")
}

func TestStartInvalidCompression(t *testing.T) {
	config := DefaultConfig("")
	config.Compression = "zstd"

	_, err := Start(config)
	assert.Equal(t, fault.ErrInvalidCompression, err, "wrong error")
}

func TestClosedStorage(t *testing.T) {
	s, err := Start(DefaultConfig(""))
	assert.Nil(t, err, "wrong start error")
	assert.Nil(t, s.Shutdown(), "wrong shutdown error")

	assert.Equal(t, fault.ErrStorageClosed, s.Shutdown(), "second shutdown")
	assert.Equal(t, fault.ErrStorageClosed, s.Flush(), "flush")
	assert.Equal(t, fault.ErrStorageClosed, s.SetHealth(backend.Idle), "set health")

	_, err = s.Health()
	assert.Equal(t, fault.ErrStorageClosed, err, "health")
	_, _, err = s.Size()
	assert.Equal(t, fault.ErrStorageClosed, err, "size")
	_, _, err = s.Version()
	assert.Equal(t, fault.ErrStorageClosed, err, "version")

	_, err = s.FetchMessage(fixtures.MessageID(1))
	assert.Equal(t, fault.ErrStorageClosed, err, "fetch")
	assert.Equal(t, fault.ErrStorageClosed, s.InsertUnspent(ledgerrecord.Unspent(fixtures.OutputID(1, 0))), "insert")
	assert.Equal(t, fault.ErrStorageClosed, s.TruncateBalances(), "truncate")
}

func TestSizeAfterFlush(t *testing.T) {
	config := testConfig(t)

	s, err := Start(config)
	assert.Nil(t, err, "wrong start error")
	defer s.Shutdown()

	for i := 0; i < 100; i += 1 {
		err := s.InsertMessage(fixtures.MessageID(byte(i)), fixtures.Message(byte(i)))
		assert.Nil(t, err, "wrong insert error")
	}
	assert.Nil(t, s.Flush(), "wrong flush error")

	size, ok, err := s.Size()
	assert.Nil(t, err, "wrong size error")
	assert.True(t, ok, "size not reported")
	assert.True(t, size > 0, "size not counted")
}

func TestSetHealthRejectsUnknown(t *testing.T) {
	s := startMemory(t)
	assert.Equal(t, fault.ErrInvalidHealth, s.SetHealth(backend.Health(7)), "wrong error")
}
