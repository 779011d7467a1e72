// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/util"
)

// TreasuryDiff - treasury movement caused by a milestone
type TreasuryDiff struct {
	Created  TreasuryOutput
	Consumed TreasuryOutput
}

// OutputDiff - outputs created and consumed by one milestone
type OutputDiff struct {
	CreatedOutputs  []message.OutputID
	ConsumedOutputs []message.OutputID
	Treasury        *TreasuryDiff
}

// Pack - stored form
func (d OutputDiff) Pack() []byte {
	n := 2 + (len(d.CreatedOutputs)+len(d.ConsumedOutputs))*message.OutputIDLength + 1
	p := util.NewPacker(n)

	p.Varint(uint64(len(d.CreatedOutputs)))
	for _, o := range d.CreatedOutputs {
		p.Fixed(o.Pack())
	}
	p.Varint(uint64(len(d.ConsumedOutputs)))
	for _, o := range d.ConsumedOutputs {
		p.Fixed(o.Pack())
	}

	p.Bool(nil != d.Treasury)
	if nil != d.Treasury {
		p.Fixed(d.Treasury.Created.Pack())
		p.Fixed(d.Treasury.Consumed.Pack())
	}
	return p.Packed()
}

// Unpack - restore from stored form
func (d *OutputDiff) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)

	d.CreatedOutputs = unpackOutputIDs(u)
	d.ConsumedOutputs = unpackOutputIDs(u)

	d.Treasury = nil
	if u.Bool() {
		d.Treasury = &TreasuryDiff{}
		unpackTreasuryOutput(u, &d.Treasury.Created)
		unpackTreasuryOutput(u, &d.Treasury.Consumed)
	}
	return u.Finish()
}

func unpackOutputIDs(u *util.Unpacker) []message.OutputID {
	n := u.Count(message.OutputIDLength)
	ids := make([]message.OutputID, n)
	for i := range ids {
		u.Fixed(ids[i].TransactionID[:])
		ids[i].Index = u.Uint16()
	}
	return ids
}
