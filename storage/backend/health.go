// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package backend

import (
	"github.com/hivenode/hived/fault"
)

// Health - crash detection flag
//
// Idle is written once the storage is open and Healthy only by a clean
// shutdown; finding Idle at start means the previous run did not shut
// down.
type Health uint8

const (
	Healthy Health = 0
	Idle    Health = 1
)

// String - printable health
func (h Health) String() string {
	switch h {
	case Healthy:
		return "healthy"
	case Idle:
		return "idle"
	default:
		return "unknown"
	}
}

// Pack - single byte encoding
func (h Health) Pack() []byte {
	return []byte{byte(h)}
}

// Unpack - reject anything but a single known byte
func (h *Health) Unpack(buffer []byte) error {
	if len(buffer) != 1 {
		return fault.ErrRecordTruncated
	}
	switch Health(buffer[0]) {
	case Healthy, Idle:
		*h = Health(buffer[0])
		return nil
	default:
		return fault.ErrInvalidHealth
	}
}
