// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - unspent output bookkeeping over the storage
// capabilities
package ledger

import (
	"github.com/hivenode/hived/storage/access"
)

// StorageBackend - everything the ledger reads and writes
type StorageBackend interface {
	access.FetchCreatedOutput
	access.InsertCreatedOutput
	access.TruncateCreatedOutputs

	access.FetchConsumedOutput
	access.InsertConsumedOutput
	access.TruncateConsumedOutputs

	access.FetchUnspent
	access.InsertUnspent
	access.DeleteUnspent
	access.TruncateUnspent

	access.FetchAddressOutputs
	access.InsertAddressOutput
	access.DeleteAddressOutput
	access.TruncateAddressOutputs

	access.FetchLedgerIndex
	access.InsertLedgerIndex
	access.TruncateLedgerIndex

	access.FetchOutputDiff
	access.InsertOutputDiff
	access.TruncateOutputDiffs

	access.FetchBalance
	access.InsertBalance
	access.TruncateBalances

	access.FetchReceipts
	access.InsertReceipt
	access.TruncateReceipts

	access.FetchTreasuryOutputs
	access.InsertTreasuryOutput
	access.TruncateTreasuryOutputs
}
