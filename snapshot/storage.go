// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snapshot - load a ledger snapshot into the storage
package snapshot

import (
	"github.com/hivenode/hived/ledger"
	"github.com/hivenode/hived/storage/access"
	"github.com/hivenode/hived/storage/backend"
)

// StorageBackend - what a snapshot import needs
//
// some members repeat ledger ones, the set is spelled out so the
// snapshot requirements stay visible
type StorageBackend interface {
	backend.StorageBackend
	ledger.StorageBackend

	access.FetchSnapshotInfo
	access.FetchLedgerIndex
	access.InsertSolidEntryPoint
	access.InsertLedgerIndex
	access.InsertCreatedOutput
	access.InsertUnspent
	access.InsertAddressOutput
	access.InsertSnapshotInfo
	access.TruncateSolidEntryPoints
}
