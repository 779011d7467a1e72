// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledgerrecord - records kept by the ledger
//
//	created output  = message id ++ kind ++ address ++ amount
//	consumed output = transaction id ++ milestone index
//	output diff     = count ++ created output ids ++ count ++ consumed output ids ++ treasury flag [++ treasury diff]
//	balance         = amount ++ dust allowance ++ dust outputs
//	receipt         = migrated at ++ final ++ included in ++ transaction id
//	treasury output = milestone id ++ amount
package ledgerrecord
