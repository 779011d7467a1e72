// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - storage capabilities
//
// Each interface grants exactly one typed operation on one key/value
// shape:
//
//	Fetch<X>     read a value, nil (or an empty list) when absent
//	Insert<X>    write a value, replacing any previous one
//	Delete<X>    remove one entry
//	Truncate<X>  remove every entry of the shape
//
// A subsystem declares the capabilities it needs by embedding these
// interfaces in its own storage interface; any backend that has all
// the methods satisfies it. Operations on different shapes are not
// atomic with respect to each other.
package access
