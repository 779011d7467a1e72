// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package backend - lifecycle contract shared by every storage engine
package backend

//go:generate mockgen -destination=../mocks/mock_backend.go -package=mocks github.com/hivenode/hived/storage/backend StorageBackend

// StorageBackend - lifecycle of an opened storage engine
//
// Start is engine specific (it takes the engine's configuration), so it
// is a constructor function of each engine package rather than a method
// here. After Shutdown returns every other call fails with
// fault.ErrStorageClosed.
type StorageBackend interface {
	// Shutdown flushes pending writes, marks the storage Healthy and
	// releases the engine.
	Shutdown() error

	// Size returns an approximate number of bytes used on disk, with
	// false when the engine cannot tell.
	Size() (uint64, bool, error)

	// Health returns the persisted health flag, nil if none was written.
	Health() (*Health, error)

	// SetHealth durably persists the health flag.
	SetHealth(health Health) error

	// Flush forces buffered writes to disk.
	Flush() error

	// Version returns the persisted storage version.
	Version() (uint64, bool, error)
}
