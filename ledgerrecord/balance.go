// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/hivenode/hived/util"
)

// Balance - funds held by an address
type Balance struct {
	Amount        uint64
	DustAllowance uint64
	DustOutputs   uint64
}

// Pack - stored form
func (b Balance) Pack() []byte {
	return util.NewPacker(24).
		Uint64(b.Amount).
		Uint64(b.DustAllowance).
		Uint64(b.DustOutputs).
		Packed()
}

// Unpack - restore from stored form
func (b *Balance) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)
	b.Amount = u.Uint64()
	b.DustAllowance = u.Uint64()
	b.DustOutputs = u.Uint64()
	return u.Finish()
}

// Apply - add a signed change to the balance, the result saturates at zero
func (b Balance) Apply(amount int64, dustAllowance int64, dustOutputs int64) Balance {
	return Balance{
		Amount:        addSigned(b.Amount, amount),
		DustAllowance: addSigned(b.DustAllowance, dustAllowance),
		DustOutputs:   addSigned(b.DustOutputs, dustOutputs),
	}
}

func addSigned(value uint64, delta int64) uint64 {
	if delta >= 0 {
		return value + uint64(delta)
	}
	d := uint64(-delta)
	if d > value {
		return 0
	}
	return value - d
}
