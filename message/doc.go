// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - identifiers and message records
//
// Every type that is stored has a Pack method producing its stored
// form and an Unpack method on the pointer that restores it and
// rejects truncated or over-long input.
//
// Notes:
// 1. ++             = concatenation of byte data
// 2. id             = 32 byte message identifier
// 3. transaction id = 32 byte transaction identifier
// 4. output id      = transaction id ++ big endian uint16 output index (34 bytes)
// 5. address        = 32 byte Ed25519 public key hash
// 6. padded index   = indexation key zero filled to 64 bytes
// 7. milestone      = big endian uint32
package message
