// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"strings"

	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/hivenode/hived/fault"
)

const (
	mebibyte = 1024 * 1024

	bloomFilterBits = 10

	CompressionNone   = "none"
	CompressionSnappy = "snappy"
)

// StorageConfig - engine tuning, fixed once the storage is started
//
// zero integer values leave the engine default in place
type StorageConfig struct {
	Path                    string `gluamapper:"path" json:"path"`
	CreateIfMissing         bool   `gluamapper:"create_if_missing" json:"create_if_missing"`
	CreateMissingPartitions bool   `gluamapper:"create_missing_partitions" json:"create_missing_partitions"`
	EnableStatistics        bool   `gluamapper:"enable_statistics" json:"enable_statistics"`

	// block cache size in MiB, non-zero also adds a bloom filter
	OptimizeForPointLookup int `gluamapper:"optimize_for_point_lookup" json:"optimize_for_point_lookup"`

	WriteBufferSize        int    `gluamapper:"write_buffer_size" json:"write_buffer_size"`
	BlockCacheSize         int    `gluamapper:"block_cache_size" json:"block_cache_size"`
	BlockSize              int    `gluamapper:"block_size" json:"block_size"`
	CompactionTableSize    int    `gluamapper:"compaction_table_size" json:"compaction_table_size"`
	CompactionL0Trigger    int    `gluamapper:"compaction_l0_trigger" json:"compaction_l0_trigger"`
	WriteL0SlowdownTrigger int    `gluamapper:"write_l0_slowdown_trigger" json:"write_l0_slowdown_trigger"`
	WriteL0PauseTrigger    int    `gluamapper:"write_l0_pause_trigger" json:"write_l0_pause_trigger"`
	OpenFilesCacheCapacity int    `gluamapper:"open_files_cache_capacity" json:"open_files_cache_capacity"`
	Compression            string `gluamapper:"compression" json:"compression"`
	DisableSeeksCompaction bool   `gluamapper:"disable_seeks_compaction" json:"disable_seeks_compaction"`
	UnorderedWrite         bool   `gluamapper:"unordered_write" json:"unordered_write"`
	NoSync                 bool   `gluamapper:"no_sync" json:"no_sync"`
}

// DefaultConfig - configuration for a node database at path
func DefaultConfig(path string) StorageConfig {
	return StorageConfig{
		Path:                    path,
		CreateIfMissing:         true,
		CreateMissingPartitions: true,
		EnableStatistics:        false,
		OptimizeForPointLookup:  0,
		WriteBufferSize:         64 * mebibyte,
		Compression:             CompressionSnappy,
		DisableSeeksCompaction:  true,
	}
}

// convert to engine options
func (c StorageConfig) options(readOnly bool) (*opt.Options, error) {
	o := &opt.Options{
		ErrorIfMissing:         readOnly || !c.CreateIfMissing,
		ReadOnly:               readOnly,
		WriteBuffer:            c.WriteBufferSize,
		BlockCacheCapacity:     c.BlockCacheSize,
		BlockSize:              c.BlockSize,
		CompactionTableSize:    c.CompactionTableSize,
		CompactionL0Trigger:    c.CompactionL0Trigger,
		WriteL0SlowdownTrigger: c.WriteL0SlowdownTrigger,
		WriteL0PauseTrigger:    c.WriteL0PauseTrigger,
		OpenFilesCacheCapacity: c.OpenFilesCacheCapacity,
		DisableSeeksCompaction: c.DisableSeeksCompaction,
		NoWriteMerge:           c.UnorderedWrite,
		NoSync:                 c.NoSync,
	}

	switch strings.ToLower(c.Compression) {
	case "", CompressionSnappy:
		o.Compression = opt.SnappyCompression
	case CompressionNone:
		o.Compression = opt.NoCompression
	default:
		return nil, fault.ErrInvalidCompression
	}

	if c.OptimizeForPointLookup > 0 {
		o.BlockCacheCapacity = c.OptimizeForPointLookup * mebibyte
		o.Filter = filter.NewBloomFilter(bloomFilterBits)
	}

	return o, nil
}
