// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup and sample records
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/hivenode/hived/ledgerrecord"
	"github.com/hivenode/hived/message"
	"github.com/hivenode/hived/tanglerecord"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// MessageID - an id filled with n
func MessageID(n byte) message.ID {
	var id message.ID
	for i := range id {
		id[i] = n
	}
	return id
}

// Address - an address filled with n
func Address(n byte) message.Ed25519Address {
	var a message.Ed25519Address
	for i := range a {
		a[i] = n
	}
	return a
}

// OutputID - output index of a transaction whose id is filled with n
func OutputID(n byte, index uint16) message.OutputID {
	o := message.OutputID{Index: index}
	for i := range o.TransactionID {
		o.TransactionID[i] = n
	}
	return o
}

// Message - a message with two parents and an index
func Message(n byte) message.Message {
	return message.Message{
		NetworkID: 0x1234,
		Parents:   []message.ID{MessageID(n + 1), MessageID(n + 2)},
		Index:     []byte(fmt.Sprintf("index-%d", n)),
		Payload:   []byte{n, n, n},
		Nonce:     uint64(n) * 7,
	}
}

// CreatedOutput - output of amount to address n
func CreatedOutput(n byte, amount uint64) ledgerrecord.CreatedOutput {
	return ledgerrecord.CreatedOutput{
		MessageID: MessageID(n),
		Output: ledgerrecord.Output{
			Kind:    ledgerrecord.SignatureLockedSingle,
			Address: Address(n),
			Amount:  amount,
		},
	}
}

// Milestone - milestone referencing message n
func Milestone(n byte) tanglerecord.Milestone {
	return tanglerecord.Milestone{
		MessageID: MessageID(n),
		Timestamp: 1600000000 + uint64(n),
	}
}
