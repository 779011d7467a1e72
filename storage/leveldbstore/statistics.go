// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/syndtr/goleveldb/leveldb"
)

const metricsNamespace = "hived_storage"

// statistics collector reading the engine's counters on each scrape
type collector struct {
	db *leveldb.DB

	levelSize    *prometheus.Desc
	levelTables  *prometheus.Desc
	ioRead       *prometheus.Desc
	ioWrite      *prometheus.Desc
	writeDelays  *prometheus.Desc
	writePaused  *prometheus.Desc
	blockCache   *prometheus.Desc
	openedTables *prometheus.Desc
	iterators    *prometheus.Desc
	snapshots    *prometheus.Desc
	compactions  *prometheus.Desc
}

func newCollector(db *leveldb.DB) *collector {
	desc := func(name string, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "", name), help, labels, nil)
	}
	return &collector{
		db:           db,
		levelSize:    desc("level_size_bytes", "Size of the table files in each level.", "level"),
		levelTables:  desc("level_tables", "Number of table files in each level.", "level"),
		ioRead:       desc("io_read_bytes_total", "Bytes read from storage."),
		ioWrite:      desc("io_write_bytes_total", "Bytes written to storage."),
		writeDelays:  desc("write_delays_total", "Writes delayed by compaction."),
		writePaused:  desc("write_paused", "1 if writes are paused by compaction."),
		blockCache:   desc("block_cache_bytes", "Size of the block cache."),
		openedTables: desc("opened_tables", "Number of opened table files."),
		iterators:    desc("alive_iterators", "Number of live iterators."),
		snapshots:    desc("alive_snapshots", "Number of live snapshots."),
		compactions:  desc("compactions_total", "Compactions by kind.", "kind"),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.levelSize
	ch <- c.levelTables
	ch <- c.ioRead
	ch <- c.ioWrite
	ch <- c.writeDelays
	ch <- c.writePaused
	ch <- c.blockCache
	ch <- c.openedTables
	ch <- c.iterators
	ch <- c.snapshots
	ch <- c.compactions
}

// a closed engine reports nothing
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	var stats leveldb.DBStats
	if err := c.db.Stats(&stats); nil != err {
		return
	}

	for level, size := range stats.LevelSizes {
		ch <- prometheus.MustNewConstMetric(c.levelSize, prometheus.GaugeValue, float64(size), strconv.Itoa(level))
	}
	for level, count := range stats.LevelTablesCounts {
		ch <- prometheus.MustNewConstMetric(c.levelTables, prometheus.GaugeValue, float64(count), strconv.Itoa(level))
	}

	paused := 0.0
	if stats.WritePaused {
		paused = 1.0
	}

	ch <- prometheus.MustNewConstMetric(c.ioRead, prometheus.CounterValue, float64(stats.IORead))
	ch <- prometheus.MustNewConstMetric(c.ioWrite, prometheus.CounterValue, float64(stats.IOWrite))
	ch <- prometheus.MustNewConstMetric(c.writeDelays, prometheus.CounterValue, float64(stats.WriteDelayCount))
	ch <- prometheus.MustNewConstMetric(c.writePaused, prometheus.GaugeValue, paused)
	ch <- prometheus.MustNewConstMetric(c.blockCache, prometheus.GaugeValue, float64(stats.BlockCacheSize))
	ch <- prometheus.MustNewConstMetric(c.openedTables, prometheus.GaugeValue, float64(stats.OpenedTablesCount))
	ch <- prometheus.MustNewConstMetric(c.iterators, prometheus.GaugeValue, float64(stats.AliveIterators))
	ch <- prometheus.MustNewConstMetric(c.snapshots, prometheus.GaugeValue, float64(stats.AliveSnapshots))

	ch <- prometheus.MustNewConstMetric(c.compactions, prometheus.CounterValue, float64(stats.MemComp), "memory")
	ch <- prometheus.MustNewConstMetric(c.compactions, prometheus.CounterValue, float64(stats.Level0Comp), "level0")
	ch <- prometheus.MustNewConstMetric(c.compactions, prometheus.CounterValue, float64(stats.NonLevel0Comp), "level")
	ch <- prometheus.MustNewConstMetric(c.compactions, prometheus.CounterValue, float64(stats.SeekComp), "seek")
}
