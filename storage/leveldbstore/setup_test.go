// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hivenode/hived/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

// configuration of a fresh on-disk store
func testConfig(t *testing.T) StorageConfig {
	config := DefaultConfig(filepath.Join(t.TempDir(), "test.leveldb"))
	config.WriteBufferSize = 0
	return config
}

// memory store, shut down when the test ends
func startMemory(t *testing.T) *Storage {
	s, err := Start(DefaultConfig(""))
	if nil != err {
		t.Fatalf("start error: %s", err)
	}
	t.Cleanup(func() {
		_ = s.Shutdown()
	})
	return s
}

// release the engine without the shutdown protocol, as a crash would
func crash(s *Storage) error {
	s.closed.Store(true)
	return s.db.Close()
}
