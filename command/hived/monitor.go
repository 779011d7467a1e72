// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/storage/backend"
)

// periodic report of storage size and health
type monitor struct {
	log      *logger.L
	store    backend.StorageBackend
	interval time.Duration

	size   prometheus.Gauge
	health prometheus.Gauge
}

func newMonitor(store backend.StorageBackend, interval time.Duration) *monitor {
	return &monitor{
		log:      logger.New("monitor"),
		store:    store,
		interval: interval,
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hived",
			Subsystem: "monitor",
			Name:      "storage_size_bytes",
			Help:      "on-disk size of the storage at the last check",
		}),
		health: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hived",
			Subsystem: "monitor",
			Name:      "storage_health",
			Help:      "stored health flag at the last check (0 healthy, 1 idle)",
		}),
	}
}

func (m *monitor) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.size, m.health}
}

// Run - background process loop
func (m *monitor) Run(args interface{}, shutdown <-chan struct{}) {
	log := m.log

	log.Info("starting…")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			if err := m.check(); nil != err {
				log.Errorf("check error: %s", err)
			}
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

func (m *monitor) check() error {
	log := m.log

	size, ok, err := m.store.Size()
	if nil != err {
		return err
	}
	if ok {
		m.size.Set(float64(size))
		log.Debugf("size: %d bytes", size)
	}

	health, err := m.store.Health()
	if nil != err {
		return err
	}
	if nil == health {
		return fault.ErrInvalidHealth
	}
	m.health.Set(float64(*health))

	// an open store always carries the idle flag
	if backend.Idle != *health {
		log.Warnf("unexpected health: %s", health)
	}
	return nil
}
