// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/storage/backend"
)

// CurrentVersion - version of the stored encoding
const CurrentVersion uint64 = 1

// system record keys, within the system prefix
const (
	versionKey byte = 0x00
	healthKey  byte = 0x01
)

// system record tags
const (
	versionTag byte = 0x00
	healthTag  byte = 0x01
)

const systemPartitionName = "system"

var syncWrite = &opt.WriteOptions{Sync: true}

type getter interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
}

type putter interface {
	Put(key []byte, value []byte, wo *opt.WriteOptions) error
}

func systemKey(key byte) []byte {
	return []byte{systemPrefix, key}
}

// read the payload of a system record
//
// nil payload with no error if the record is absent
func readSystem(db getter, key byte, tag byte) ([]byte, error) {
	value, err := db.Get(systemKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}
	if 0 == len(value) {
		return nil, &backend.CorruptRecordError{Key: key, Empty: true}
	}
	if tag != value[0] {
		return nil, &backend.CorruptRecordError{Key: key, Tag: value[0]}
	}
	return value[1:], nil
}

func readVersion(db getter) (uint64, bool, error) {
	payload, err := readSystem(db, versionKey, versionTag)
	if nil != err {
		return 0, false, err
	}
	if nil == payload {
		return 0, false, nil
	}
	if 8 != len(payload) {
		return 0, false, &backend.DecodeError{Partition: systemPartitionName, Err: fault.ErrRecordTruncated}
	}
	return binary.BigEndian.Uint64(payload), true, nil
}

func versionRecord(version uint64) []byte {
	return binary.BigEndian.AppendUint64([]byte{versionTag}, version)
}

func readHealth(db getter) (*backend.Health, error) {
	payload, err := readSystem(db, healthKey, healthTag)
	if nil != err || nil == payload {
		return nil, err
	}
	var health backend.Health
	err = health.Unpack(payload)
	if nil != err {
		return nil, &backend.DecodeError{Partition: systemPartitionName, Err: err}
	}
	return &health, nil
}

// health is always written synchronously
func writeHealth(db putter, health backend.Health) error {
	switch health {
	case backend.Healthy, backend.Idle:
	default:
		return fault.ErrInvalidHealth
	}
	return db.Put(systemKey(healthKey), append([]byte{healthTag}, health.Pack()...), syncWrite)
}
