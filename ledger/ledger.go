// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/hivenode/hived/fault"
	"github.com/hivenode/hived/ledgerrecord"
	"github.com/hivenode/hived/message"
)

// DustThreshold - single outputs below this amount count as dust
const DustThreshold = 1000000

// the balance change caused by adding (sign 1) or removing (sign -1)
// an output
func balanceDelta(output ledgerrecord.Output, sign int64) (int64, int64, int64) {
	amount := sign * int64(output.Amount)
	switch output.Kind {
	case ledgerrecord.SignatureLockedDustAllowance:
		return amount, amount, 0
	default:
		if output.Amount < DustThreshold {
			return amount, 0, sign
		}
		return amount, 0, 0
	}
}

func updateBalance(store StorageBackend, output ledgerrecord.Output, sign int64) error {
	current, err := store.FetchBalance(output.Address)
	if nil != err {
		return err
	}
	if nil == current {
		current = &ledgerrecord.Balance{}
	}
	return store.InsertBalance(output.Address, current.Apply(balanceDelta(output, sign)))
}

// CreateOutput - add a new unspent output and credit its address
//
// the writes are separate storage operations; a failure part way
// leaves the earlier ones in place
func CreateOutput(store StorageBackend, id message.OutputID, output ledgerrecord.CreatedOutput) error {
	err := store.InsertCreatedOutput(id, output)
	if nil != err {
		return err
	}
	err = store.InsertUnspent(ledgerrecord.Unspent(id))
	if nil != err {
		return err
	}
	err = store.InsertAddressOutput(output.Output.Address, id)
	if nil != err {
		return err
	}
	return updateBalance(store, output.Output, 1)
}

// ConsumeOutput - spend an unspent output and debit its address
func ConsumeOutput(store StorageBackend, id message.OutputID, consumed ledgerrecord.ConsumedOutput) error {
	output, err := store.FetchCreatedOutput(id)
	if nil != err {
		return err
	}
	if nil == output {
		return fault.ErrOutputNotFound
	}

	unspent, err := store.FetchUnspent(ledgerrecord.Unspent(id))
	if nil != err {
		return err
	}
	if !unspent {
		return fault.ErrOutputAlreadySpent
	}

	err = store.InsertConsumedOutput(id, consumed)
	if nil != err {
		return err
	}
	err = store.DeleteUnspent(ledgerrecord.Unspent(id))
	if nil != err {
		return err
	}
	err = store.DeleteAddressOutput(output.Output.Address, id)
	if nil != err {
		return err
	}
	return updateBalance(store, output.Output, -1)
}

// UnspentOutputs - outputs of an address that are still unspent
func UnspentOutputs(store StorageBackend, address message.Ed25519Address) ([]message.OutputID, error) {
	ids, err := store.FetchAddressOutputs(address)
	if nil != err {
		return nil, err
	}
	result := make([]message.OutputID, 0, len(ids))
	for _, id := range ids {
		ok, err := store.FetchUnspent(ledgerrecord.Unspent(id))
		if nil != err {
			return nil, err
		}
		if ok {
			result = append(result, id)
		}
	}
	return result, nil
}

// Balance - an address's balance, zero if never credited
func Balance(store StorageBackend, address message.Ed25519Address) (ledgerrecord.Balance, error) {
	b, err := store.FetchBalance(address)
	if nil != err || nil == b {
		return ledgerrecord.Balance{}, err
	}
	return *b, nil
}

// Confirm - record a milestone's output diff and advance the ledger
// index to it
func Confirm(store StorageBackend, index message.MilestoneIndex, diff ledgerrecord.OutputDiff) error {
	err := store.InsertOutputDiff(index, diff)
	if nil != err {
		return err
	}
	return store.InsertLedgerIndex(ledgerrecord.LedgerIndex(index))
}

// Reset - empty every ledger partition
func Reset(store StorageBackend) error {
	truncate := []func() error{
		store.TruncateCreatedOutputs,
		store.TruncateConsumedOutputs,
		store.TruncateUnspent,
		store.TruncateAddressOutputs,
		store.TruncateLedgerIndex,
		store.TruncateOutputDiffs,
		store.TruncateBalances,
		store.TruncateReceipts,
		store.TruncateTreasuryOutputs,
	}
	for _, f := range truncate {
		if err := f(); nil != err {
			return err
		}
	}
	return nil
}
