// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/storage/backend"
)

// Report - state of a store examined without starting it
type Report struct {
	Path        string          `json:"path"`
	Version     uint64          `json:"version"`
	HasVersion  bool            `json:"hasVersion"`
	Health      *backend.Health `json:"health"`
	Size        uint64          `json:"size"`
	Partitions  []PartitionInfo `json:"partitions"`
	Undeclared  []PartitionInfo `json:"undeclared"`
	Missing     []string        `json:"missing"`
	EntryCounts map[string]int  `json:"entryCounts,omitempty"`
}

// Inspect - open a store read-only and report on it
//
// nothing is written, so a store that failed the health check can
// still be examined; counting entries scans every partition
func Inspect(config StorageConfig, countEntries bool) (*Report, error) {
	if "" == config.Path {
		return nil, fault.ErrStoragePathRequired
	}

	options, err := config.options(true)
	if nil != err {
		return nil, err
	}
	_, list, err := partitionTable()
	if nil != err {
		return nil, err
	}

	db, err := leveldb.OpenFile(config.Path, options)
	if nil != err {
		return nil, err
	}
	defer db.Close()

	r := &Report{
		Path:       config.Path,
		Partitions: make([]PartitionInfo, 0, len(list)),
		Undeclared: make([]PartitionInfo, 0),
		Missing:    make([]string, 0),
	}

	r.Version, r.HasVersion, err = readVersion(db)
	if nil != err {
		return nil, err
	}
	r.Health, err = readHealth(db)
	if nil != err {
		return nil, err
	}

	catalog, err := readCatalog(db)
	if nil != err {
		return nil, err
	}
	stored := make(map[string]PartitionInfo, len(catalog))
	for _, c := range catalog {
		stored[c.Name] = c
	}
	declared := make(map[string]struct{}, len(list))
	for _, p := range list {
		declared[p.name] = struct{}{}
		if _, ok := stored[p.name]; ok {
			r.Partitions = append(r.Partitions, p.info())
		} else {
			r.Missing = append(r.Missing, p.name)
		}
	}
	for _, c := range catalog {
		if _, ok := declared[c.Name]; !ok {
			r.Undeclared = append(r.Undeclared, c)
		}
	}

	var stats leveldb.DBStats
	err = db.Stats(&stats)
	if nil != err {
		return nil, err
	}
	if size := stats.LevelSizes.Sum(); size > 0 {
		r.Size = uint64(size)
	}

	if countEntries {
		r.EntryCounts = make(map[string]int, len(list))
		for _, p := range list {
			n, err := countPartition(db, p.prefix)
			if nil != err {
				return nil, err
			}
			r.EntryCounts[p.name] = n
		}
	}

	return r, nil
}

func countPartition(db *leveldb.DB, prefix byte) (int, error) {
	iter := db.NewIterator(util.BytesPrefix([]byte{prefix}), nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		n += 1
	}
	return n, iter.Error()
}
