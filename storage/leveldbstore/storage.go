// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/storage/backend"
)

const logTag = "storage"

// Storage - the single owner of an opened engine
//
// all capability methods may be called concurrently; the engine does
// its own locking
type Storage struct {
	log        *logger.L
	db         *leveldb.DB
	pool       *partitions
	list       []*partition
	closed     atomic.Bool
	statistics prometheus.Collector
}

var _ backend.StorageBackend = (*Storage)(nil)

// Start - open the engine, check the catalog, version and health then
// mark the storage Idle
func Start(config StorageConfig) (*Storage, error) {
	return start(config, CurrentVersion)
}

func start(config StorageConfig, version uint64) (*Storage, error) {
	log := logger.New(logTag)

	options, err := config.options(false)
	if nil != err {
		return nil, err
	}

	pool, list, err := partitionTable()
	if nil != err {
		return nil, err
	}

	db, err := openDB(config.Path, options)
	if nil != err {
		log.Errorf("open: %q  error: %s", config.Path, err)
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log.Infof("opened: %q", config.Path)

	storedVersion, found, err := readVersion(db)
	if nil != err {
		log.Criticalf("read version error: %s", err)
		return nil, err
	}
	if found && version != storedVersion {
		log.Criticalf("storage version: %d  expected: %d", storedVersion, version)
		return nil, &backend.VersionMismatchError{Stored: storedVersion, Expected: version}
	}

	health, err := readHealth(db)
	if nil != err {
		log.Criticalf("read health error: %s", err)
		return nil, err
	}
	if nil != health && backend.Idle == *health {
		log.Criticalf("storage health: %s  previous run did not shut down", *health)
		return nil, &backend.UnhealthyStorageError{Health: *health}
	}

	batch, missing, err := checkCatalog(db, list, !found, config.CreateMissingPartitions)
	if nil != err {
		log.Criticalf("partition catalog error: %s", err)
		return nil, err
	}
	if !found {
		batch.Put(systemKey(versionKey), versionRecord(version))
	}
	if batch.Len() > 0 {
		err = db.Write(batch, syncWrite)
		if nil != err {
			return nil, err
		}
		log.Infof("created partitions: %v", missing)
	}

	err = writeHealth(db, backend.Idle)
	if nil != err {
		return nil, err
	}

	s := &Storage{
		log:  log,
		db:   db,
		pool: pool,
		list: list,
	}
	if config.EnableStatistics {
		s.statistics = newCollector(db)
	}

	ok = true
	log.Infof("started: version: %d", version)
	return s, nil
}

// empty path selects memory storage
func openDB(path string, options *opt.Options) (*leveldb.DB, error) {
	if "" == path {
		return leveldb.Open(storage.NewMemStorage(), options)
	}
	return leveldb.OpenFile(path, options)
}

// report an error once the storage is shut down
func (s *Storage) live() error {
	if s.closed.Load() {
		return fault.ErrStorageClosed
	}
	return nil
}

// Shutdown - mark Healthy, flush and release the engine
//
// the caller must ensure no other calls are in progress
func (s *Storage) Shutdown() error {
	if !s.closed.CompareAndSwap(false, true) {
		return fault.ErrStorageClosed
	}

	s.log.Info("shutting down…")

	err := writeHealth(s.db, backend.Healthy)
	if nil == err {
		err = s.flush()
	}
	closeErr := s.db.Close()
	if nil == err {
		err = closeErr
	}
	if nil != err {
		s.log.Errorf("shutdown error: %s", err)
		return err
	}

	s.log.Info("shutdown complete")
	s.log.Flush()
	return nil
}

// Flush - force buffered writes to disk
func (s *Storage) Flush() error {
	if err := s.live(); nil != err {
		return err
	}
	return s.flush()
}

// a synchronous write makes the journal durable, then compacting the
// system range rotates the memory table into a table file
func (s *Storage) flush() error {
	health, err := readHealth(s.db)
	if nil != err {
		return err
	}
	h := backend.Idle
	if nil != health {
		h = *health
	}
	err = writeHealth(s.db, h)
	if nil != err {
		return err
	}
	return s.db.CompactRange(util.Range{
		Start: []byte{systemPrefix},
		Limit: []byte{systemPrefix + 1},
	})
}

// Size - bytes held in table files
func (s *Storage) Size() (uint64, bool, error) {
	if err := s.live(); nil != err {
		return 0, false, err
	}
	var stats leveldb.DBStats
	err := s.db.Stats(&stats)
	if nil != err {
		return 0, false, err
	}
	size := stats.LevelSizes.Sum()
	if size < 0 {
		return 0, false, nil
	}
	return uint64(size), true, nil
}

// Health - the stored health flag
func (s *Storage) Health() (*backend.Health, error) {
	if err := s.live(); nil != err {
		return nil, err
	}
	return readHealth(s.db)
}

// SetHealth - durably store the health flag
func (s *Storage) SetHealth(health backend.Health) error {
	if err := s.live(); nil != err {
		return err
	}
	s.log.Debugf("set health: %s", health)
	return writeHealth(s.db, health)
}

// Version - the stored encoding version
func (s *Storage) Version() (uint64, bool, error) {
	if err := s.live(); nil != err {
		return 0, false, err
	}
	return readVersion(s.db)
}

// Partitions - the declared partitions
func (s *Storage) Partitions() []PartitionInfo {
	info := make([]PartitionInfo, 0, len(s.list))
	for _, p := range s.list {
		info = append(info, p.info())
	}
	return info
}

// Collector - engine statistics for prometheus, nil unless enabled
func (s *Storage) Collector() prometheus.Collector {
	return s.statistics
}
