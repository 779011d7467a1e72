// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/hivenode/hived/storage/backend"
)

// deletes per batch when truncating
const truncateBatchSize = 4096

// a value type that can be decoded in place
type unpacker[T any] interface {
	*T
	Unpack(buffer []byte) error
}

// read and decode a single value
//
// nil with no error if the key is absent
func fetch[T any, PT unpacker[T]](s *Storage, p *partition, key []byte) (*T, error) {
	if err := s.live(); nil != err {
		return nil, err
	}
	k, err := p.key(key)
	if nil != err {
		return nil, err
	}
	value, err := s.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}
	var item T
	err = PT(&item).Unpack(value)
	if nil != err {
		return nil, &backend.DecodeError{Partition: p.name, Err: err}
	}
	return &item, nil
}

// decode the key suffix of every entry under a fixed length key prefix
func fetchByPrefix[T any, PT unpacker[T]](s *Storage, p *partition, keyPrefix []byte) ([]T, error) {
	if err := s.live(); nil != err {
		return nil, err
	}
	k, err := p.keyPrefix(keyPrefix)
	if nil != err {
		return nil, err
	}

	iter := s.db.NewIterator(util.BytesPrefix(k), nil)
	defer iter.Release()

	items := make([]T, 0, 8)
	for iter.Next() {
		var item T
		err := PT(&item).Unpack(iter.Key()[len(k):])
		if nil != err {
			return nil, &backend.DecodeError{Partition: p.name, Err: err}
		}
		items = append(items, item)
	}
	return items, iter.Error()
}

func has(s *Storage, p *partition, key []byte) (bool, error) {
	if err := s.live(); nil != err {
		return false, err
	}
	k, err := p.key(key)
	if nil != err {
		return false, err
	}
	return s.db.Has(k, nil)
}

func insert(s *Storage, p *partition, key []byte, value []byte) error {
	if err := s.live(); nil != err {
		return err
	}
	k, err := p.key(key)
	if nil != err {
		return err
	}
	return s.db.Put(k, value, nil)
}

func remove(s *Storage, p *partition, key []byte) error {
	if err := s.live(); nil != err {
		return err
	}
	k, err := p.key(key)
	if nil != err {
		return err
	}
	return s.db.Delete(k, nil)
}

// delete every key of a partition
//
// not atomic: a failure may leave part of the partition in place
func truncate(s *Storage, p *partition) error {
	if err := s.live(); nil != err {
		return err
	}

	iter := s.db.NewIterator(util.BytesPrefix([]byte{p.prefix}), nil)
	defer iter.Release()

	batch := new(leveldb.Batch)
	count := 0
	for iter.Next() {
		batch.Delete(iter.Key())
		if batch.Len() >= truncateBatchSize {
			if err := s.db.Write(batch, nil); nil != err {
				return err
			}
			count += batch.Len()
			batch.Reset()
		}
	}
	if err := iter.Error(); nil != err {
		return err
	}
	if batch.Len() > 0 {
		if err := s.db.Write(batch, nil); nil != err {
			return err
		}
		count += batch.Len()
	}

	s.log.Debugf("truncate: %s  deleted: %d", p.name, count)
	return nil
}

// compose a key from fixed length parts
func join(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	key := make([]byte, 0, n)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}
