// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrCorruptSystemRecord     = RecordError("corrupt system record")
	ErrDecodeFailed            = RecordError("stored value cannot be decoded")
	ErrDuplicatePartitionIndex = ExistsError("duplicate partition prefix")
	ErrDuplicatePartitionName  = ExistsError("duplicate partition name")
	ErrInvalidBoolean          = RecordError("invalid boolean value")
	ErrInvalidCompression      = InvalidError("invalid compression")
	ErrInvalidHealth           = InvalidError("invalid storage health")
	ErrInvalidOutputKind       = RecordError("invalid output kind")
	ErrInvalidPartitionPrefix  = InvalidError("invalid partition prefix")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrKeyTooShortForPrefix    = LengthError("key is shorter than partition prefix")
	ErrMissingPartition        = NotFoundError("partition is missing")
	ErrOutputAlreadySpent      = ProcessError("output already spent")
	ErrOutputNotFound          = NotFoundError("output not found")
	ErrPartitionMismatch       = RecordError("partition descriptor mismatch")
	ErrRecordTrailingBytes     = LengthError("record has trailing bytes")
	ErrRecordTruncated         = LengthError("record is truncated")
	ErrSnapshotExists          = ExistsError("snapshot already imported")
	ErrStorageClosed           = ProcessError("storage is closed")
	ErrStoragePathRequired     = InvalidError("storage path is required")
	ErrTooManyParents          = RecordError("too many parents")
	ErrUnhealthyStorage        = ProcessError("storage was not shut down cleanly")
	ErrUnknownPartition        = NotFoundError("unknown partition")
	ErrVersionMismatch         = ProcessError("storage version mismatch")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
