// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/hivenode/hived/ledgerrecord"
	"github.com/hivenode/hived/message"
)

// output id → created output

type FetchCreatedOutput interface {
	FetchCreatedOutput(id message.OutputID) (*ledgerrecord.CreatedOutput, error)
}

type InsertCreatedOutput interface {
	InsertCreatedOutput(id message.OutputID, output ledgerrecord.CreatedOutput) error
}

type TruncateCreatedOutputs interface {
	TruncateCreatedOutputs() error
}

// output id → consumed output

type FetchConsumedOutput interface {
	FetchConsumedOutput(id message.OutputID) (*ledgerrecord.ConsumedOutput, error)
}

type InsertConsumedOutput interface {
	InsertConsumedOutput(id message.OutputID, output ledgerrecord.ConsumedOutput) error
}

type TruncateConsumedOutputs interface {
	TruncateConsumedOutputs() error
}

// unspent → (), fetch reports presence

type FetchUnspent interface {
	FetchUnspent(unspent ledgerrecord.Unspent) (bool, error)
}

type InsertUnspent interface {
	InsertUnspent(unspent ledgerrecord.Unspent) error
}

type DeleteUnspent interface {
	DeleteUnspent(unspent ledgerrecord.Unspent) error
}

type TruncateUnspent interface {
	TruncateUnspent() error
}

// (address, output id) → (), fetched by address

type FetchAddressOutputs interface {
	FetchAddressOutputs(address message.Ed25519Address) ([]message.OutputID, error)
}

type InsertAddressOutput interface {
	InsertAddressOutput(address message.Ed25519Address, id message.OutputID) error
}

type DeleteAddressOutput interface {
	DeleteAddressOutput(address message.Ed25519Address, id message.OutputID) error
}

type TruncateAddressOutputs interface {
	TruncateAddressOutputs() error
}

// () → ledger index

type FetchLedgerIndex interface {
	FetchLedgerIndex() (*ledgerrecord.LedgerIndex, error)
}

type InsertLedgerIndex interface {
	InsertLedgerIndex(index ledgerrecord.LedgerIndex) error
}

type TruncateLedgerIndex interface {
	TruncateLedgerIndex() error
}

// milestone index → output diff

type FetchOutputDiff interface {
	FetchOutputDiff(index message.MilestoneIndex) (*ledgerrecord.OutputDiff, error)
}

type InsertOutputDiff interface {
	InsertOutputDiff(index message.MilestoneIndex, diff ledgerrecord.OutputDiff) error
}

type TruncateOutputDiffs interface {
	TruncateOutputDiffs() error
}

// address → balance

type FetchBalance interface {
	FetchBalance(address message.Ed25519Address) (*ledgerrecord.Balance, error)
}

type InsertBalance interface {
	InsertBalance(address message.Ed25519Address, balance ledgerrecord.Balance) error
}

type TruncateBalances interface {
	TruncateBalances() error
}

// (milestone index, receipt) → (), fetched by milestone index

type FetchReceipts interface {
	FetchReceipts(index message.MilestoneIndex) ([]ledgerrecord.Receipt, error)
}

type InsertReceipt interface {
	InsertReceipt(index message.MilestoneIndex, receipt ledgerrecord.Receipt) error
}

type TruncateReceipts interface {
	TruncateReceipts() error
}

// (spent, treasury output) → (), fetched by spent flag

type FetchTreasuryOutputs interface {
	FetchTreasuryOutputs(spent bool) ([]ledgerrecord.TreasuryOutput, error)
}

type InsertTreasuryOutput interface {
	InsertTreasuryOutput(spent bool, output ledgerrecord.TreasuryOutput) error
}

type TruncateTreasuryOutputs interface {
	TruncateTreasuryOutputs() error
}
