// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"net/http"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hivenode/hived/storage/leveldbstore"
)

// openStorage - bind the optional metrics listener then start the
// storage
//
// the listener is bound first so that a failure leaves the storage
// unopened; nil listener if metrics are not configured
func openStorage(options *Configuration) (*leveldbstore.Storage, net.Listener, error) {
	var listener net.Listener
	if "" != options.Metrics.Listen {
		l, err := net.Listen("tcp", options.Metrics.Listen)
		if nil != err {
			return nil, nil, err
		}
		listener = l
	}

	store, err := leveldbstore.Start(options.Storage)
	if nil != err {
		if nil != listener {
			listener.Close()
		}
		return nil, nil, err
	}
	return store, listener, nil
}

func metricsRegistry(store *leveldbstore.Storage, m *monitor) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(m.collectors()...)
	if c := store.Collector(); nil != c {
		registry.MustRegister(c)
	}
	return registry
}

// serveMetrics - serve /metrics until the listener fails or is closed
//
// runs in its own goroutine so it must never exit the process
func serveMetrics(log *logger.L, listener net.Listener, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Warnf("metrics listener on: %s", listener.Addr())
	err := http.Serve(listener, mux)
	log.Criticalf("metrics error: %s", err)
}
