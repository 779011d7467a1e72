// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"github.com/hivenode/hived/ledgerrecord"
	"github.com/hivenode/hived/message"
)

func (s *Storage) FetchCreatedOutput(id message.OutputID) (*ledgerrecord.CreatedOutput, error) {
	return fetch[ledgerrecord.CreatedOutput](s, s.pool.CreatedOutputs, id.Pack())
}

func (s *Storage) InsertCreatedOutput(id message.OutputID, output ledgerrecord.CreatedOutput) error {
	return insert(s, s.pool.CreatedOutputs, id.Pack(), output.Pack())
}

func (s *Storage) TruncateCreatedOutputs() error {
	return truncate(s, s.pool.CreatedOutputs)
}

func (s *Storage) FetchConsumedOutput(id message.OutputID) (*ledgerrecord.ConsumedOutput, error) {
	return fetch[ledgerrecord.ConsumedOutput](s, s.pool.ConsumedOutputs, id.Pack())
}

func (s *Storage) InsertConsumedOutput(id message.OutputID, output ledgerrecord.ConsumedOutput) error {
	return insert(s, s.pool.ConsumedOutputs, id.Pack(), output.Pack())
}

func (s *Storage) TruncateConsumedOutputs() error {
	return truncate(s, s.pool.ConsumedOutputs)
}

// FetchUnspent - true if the output is in the unspent set
func (s *Storage) FetchUnspent(unspent ledgerrecord.Unspent) (bool, error) {
	return has(s, s.pool.Unspent, unspent.Pack())
}

func (s *Storage) InsertUnspent(unspent ledgerrecord.Unspent) error {
	return insert(s, s.pool.Unspent, unspent.Pack(), nil)
}

func (s *Storage) DeleteUnspent(unspent ledgerrecord.Unspent) error {
	return remove(s, s.pool.Unspent, unspent.Pack())
}

func (s *Storage) TruncateUnspent() error {
	return truncate(s, s.pool.Unspent)
}

// FetchAddressOutputs - every output recorded for an address
func (s *Storage) FetchAddressOutputs(address message.Ed25519Address) ([]message.OutputID, error) {
	return fetchByPrefix[message.OutputID](s, s.pool.AddressOutputs, address.Pack())
}

func (s *Storage) InsertAddressOutput(address message.Ed25519Address, id message.OutputID) error {
	return insert(s, s.pool.AddressOutputs, join(address.Pack(), id.Pack()), nil)
}

func (s *Storage) DeleteAddressOutput(address message.Ed25519Address, id message.OutputID) error {
	return remove(s, s.pool.AddressOutputs, join(address.Pack(), id.Pack()))
}

func (s *Storage) TruncateAddressOutputs() error {
	return truncate(s, s.pool.AddressOutputs)
}

func (s *Storage) FetchLedgerIndex() (*ledgerrecord.LedgerIndex, error) {
	return fetch[ledgerrecord.LedgerIndex](s, s.pool.LedgerIndex, nil)
}

func (s *Storage) InsertLedgerIndex(index ledgerrecord.LedgerIndex) error {
	return insert(s, s.pool.LedgerIndex, nil, index.Pack())
}

func (s *Storage) TruncateLedgerIndex() error {
	return truncate(s, s.pool.LedgerIndex)
}

func (s *Storage) FetchOutputDiff(index message.MilestoneIndex) (*ledgerrecord.OutputDiff, error) {
	return fetch[ledgerrecord.OutputDiff](s, s.pool.OutputDiffs, index.Pack())
}

func (s *Storage) InsertOutputDiff(index message.MilestoneIndex, diff ledgerrecord.OutputDiff) error {
	return insert(s, s.pool.OutputDiffs, index.Pack(), diff.Pack())
}

func (s *Storage) TruncateOutputDiffs() error {
	return truncate(s, s.pool.OutputDiffs)
}

func (s *Storage) FetchBalance(address message.Ed25519Address) (*ledgerrecord.Balance, error) {
	return fetch[ledgerrecord.Balance](s, s.pool.Balances, address.Pack())
}

func (s *Storage) InsertBalance(address message.Ed25519Address, balance ledgerrecord.Balance) error {
	return insert(s, s.pool.Balances, address.Pack(), balance.Pack())
}

func (s *Storage) TruncateBalances() error {
	return truncate(s, s.pool.Balances)
}

// FetchReceipts - receipts included by a milestone
func (s *Storage) FetchReceipts(index message.MilestoneIndex) ([]ledgerrecord.Receipt, error) {
	return fetchByPrefix[ledgerrecord.Receipt](s, s.pool.Receipts, index.Pack())
}

func (s *Storage) InsertReceipt(index message.MilestoneIndex, receipt ledgerrecord.Receipt) error {
	return insert(s, s.pool.Receipts, join(index.Pack(), receipt.Pack()), nil)
}

func (s *Storage) TruncateReceipts() error {
	return truncate(s, s.pool.Receipts)
}

// FetchTreasuryOutputs - treasury outputs that are spent or unspent
func (s *Storage) FetchTreasuryOutputs(spent bool) ([]ledgerrecord.TreasuryOutput, error) {
	return fetchByPrefix[ledgerrecord.TreasuryOutput](s, s.pool.TreasuryOutputs, spentKey(spent))
}

func (s *Storage) InsertTreasuryOutput(spent bool, output ledgerrecord.TreasuryOutput) error {
	return insert(s, s.pool.TreasuryOutputs, join(spentKey(spent), output.Pack()), nil)
}

func (s *Storage) TruncateTreasuryOutputs() error {
	return truncate(s, s.pool.TreasuryOutputs)
}

func spentKey(spent bool) []byte {
	if spent {
		return []byte{1}
	}
	return []byte{0}
}
