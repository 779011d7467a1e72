// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package backend

import (
	"fmt"

	"github.com/hivenode/hived/fault"
)

// VersionMismatchError - stored version differs from the build's version
type VersionMismatchError struct {
	Stored   uint64
	Expected uint64
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("storage version mismatch: stored: %d  expected: %d", e.Stored, e.Expected)
}

func (e *VersionMismatchError) Unwrap() error { return fault.ErrVersionMismatch }

// UnhealthyStorageError - storage was found Idle at start
type UnhealthyStorageError struct {
	Health Health
}

func (e *UnhealthyStorageError) Error() string {
	return fmt.Sprintf("storage was not shut down cleanly: health: %s", e.Health)
}

func (e *UnhealthyStorageError) Unwrap() error { return fault.ErrUnhealthyStorage }

// CorruptRecordError - a system record carries an unexpected tag, or
// no tag at all when Empty is set
type CorruptRecordError struct {
	Key   byte
	Tag   byte
	Empty bool
}

func (e *CorruptRecordError) Error() string {
	if e.Empty {
		return fmt.Sprintf("corrupt system record: key: 0x%02x  empty value", e.Key)
	}
	return fmt.Sprintf("corrupt system record: key: 0x%02x  tag: 0x%02x", e.Key, e.Tag)
}

func (e *CorruptRecordError) Unwrap() error { return fault.ErrCorruptSystemRecord }

// DecodeError - a stored value could not be decoded
type DecodeError struct {
	Partition string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("partition: %s: %s: %s", e.Partition, fault.ErrDecodeFailed, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{fault.ErrDecodeFailed, e.Err} }
