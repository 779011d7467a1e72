// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/hivenode/hived/fault"
)

// catalog records live in the system prefix: 0x00 'P' name → prefix hint
const catalogKey byte = 'P'

func catalogRecordKey(name string) []byte {
	return append([]byte{systemPrefix, catalogKey}, name...)
}

// encoded descriptor
func (p *partition) descriptor() []byte {
	return []byte{p.prefix, byte(p.hint)}
}

// compare the stored catalog with the declared partitions
//
// returns a batch holding any descriptors that must be added; fresh
// stores always get all of them, existing stores only if allowed
func checkCatalog(db getter, list []*partition, fresh bool, createMissing bool) (*leveldb.Batch, []string, error) {
	batch := new(leveldb.Batch)
	missing := make([]string, 0, len(list))

	for _, p := range list {
		stored, err := db.Get(catalogRecordKey(p.name), nil)
		if leveldb.ErrNotFound == err {
			if !fresh && !createMissing {
				return nil, nil, fault.ErrMissingPartition
			}
			batch.Put(catalogRecordKey(p.name), p.descriptor())
			missing = append(missing, p.name)
			continue
		} else if nil != err {
			return nil, nil, err
		}

		expected := p.descriptor()
		if len(stored) != len(expected) || stored[0] != expected[0] || stored[1] != expected[1] {
			return nil, nil, fault.ErrPartitionMismatch
		}
	}
	return batch, missing, nil
}

// all descriptors stored in the catalog, including ones this build
// does not declare
func readCatalog(db *leveldb.DB) ([]PartitionInfo, error) {
	iter := db.NewIterator(util.BytesPrefix([]byte{systemPrefix, catalogKey}), nil)
	defer iter.Release()

	catalog := make([]PartitionInfo, 0, 32)
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()
		if 2 != len(value) {
			return nil, fault.ErrPartitionMismatch
		}
		catalog = append(catalog, PartitionInfo{
			Name:   string(key[2:]),
			Prefix: value[0],
			Hint:   int(value[1]),
		})
	}
	return catalog, iter.Error()
}
