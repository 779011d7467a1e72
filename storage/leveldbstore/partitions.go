// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldbstore

import (
	"reflect"
	"strconv"

	"github.com/hivenode/hived/fault"
)

// reserved key prefixes
const (
	systemPrefix   = 0x00
	reservedPrefix = 0xff
)

// partitions - one per stored key/value shape
//
// note all must be exported (i.e. initial capital) or partitionTable
// will fail; a hint is the fixed byte length of the key part that
// prefix fetches select on
type partitions struct {
	Messages            *partition `prefix:"M" name:"message_id_to_message"`
	Metadata            *partition `prefix:"m" name:"message_id_to_metadata"`
	Approvers           *partition `prefix:"A" name:"message_id_to_message_id" hint:"32"`
	Indexation          *partition `prefix:"I" name:"index_to_message_id" hint:"64"`
	CreatedOutputs      *partition `prefix:"O" name:"output_id_to_created_output"`
	ConsumedOutputs     *partition `prefix:"C" name:"output_id_to_consumed_output"`
	Unspent             *partition `prefix:"U" name:"output_id_unspent"`
	AddressOutputs      *partition `prefix:"E" name:"ed25519_address_to_output_id" hint:"32"`
	LedgerIndex         *partition `prefix:"L" name:"ledger_index"`
	Milestones          *partition `prefix:"T" name:"milestone_index_to_milestone"`
	SnapshotInfo        *partition `prefix:"S" name:"snapshot_info"`
	SolidEntryPoints    *partition `prefix:"P" name:"solid_entry_point_to_milestone_index"`
	OutputDiffs         *partition `prefix:"D" name:"milestone_index_to_output_diff"`
	Balances            *partition `prefix:"B" name:"address_to_balance"`
	UnconfirmedMessages *partition `prefix:"u" name:"milestone_index_to_unconfirmed_message" hint:"4"`
	Receipts            *partition `prefix:"R" name:"milestone_index_to_receipt" hint:"4"`
	TreasuryOutputs     *partition `prefix:"Y" name:"spent_to_treasury_output" hint:"1"`
}

type partition struct {
	name   string
	prefix byte
	hint   int
}

// PartitionInfo - public description of a partition
type PartitionInfo struct {
	Name   string `json:"name"`
	Prefix byte   `json:"prefix"`
	Hint   int    `json:"hint"`
}

// build the partition table from the struct tags
//
// every Start builds its own copy so nothing is shared between
// storage instances
func partitionTable() (*partitions, []*partition, error) {
	table := &partitions{}
	list := make([]*partition, 0, reflect.TypeOf(*table).NumField())

	names := make(map[string]struct{})
	prefixes := make(map[byte]struct{})

	v := reflect.ValueOf(table).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i += 1 {
		field := t.Field(i)

		prefixTag := field.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, nil, fault.ErrInvalidPartitionPrefix
		}
		prefix := prefixTag[0]
		if systemPrefix == prefix || reservedPrefix == prefix {
			return nil, nil, fault.ErrInvalidPartitionPrefix
		}
		if _, ok := prefixes[prefix]; ok {
			return nil, nil, fault.ErrDuplicatePartitionIndex
		}
		prefixes[prefix] = struct{}{}

		name := field.Tag.Get("name")
		if "" == name {
			return nil, nil, fault.ErrUnknownPartition
		}
		if _, ok := names[name]; ok {
			return nil, nil, fault.ErrDuplicatePartitionName
		}
		names[name] = struct{}{}

		hint := 0
		if h := field.Tag.Get("hint"); "" != h {
			n, err := strconv.Atoi(h)
			if nil != err || n <= 0 {
				return nil, nil, fault.ErrInvalidPartitionPrefix
			}
			hint = n
		}

		p := &partition{
			name:   name,
			prefix: prefix,
			hint:   hint,
		}
		v.Field(i).Set(reflect.ValueOf(p))
		list = append(list, p)
	}
	return table, list, nil
}

// engine key for a partition key
func (p *partition) key(key []byte) ([]byte, error) {
	if len(key) < p.hint {
		return nil, fault.ErrKeyTooShortForPrefix
	}
	k := make([]byte, 1, len(key)+1)
	k[0] = p.prefix
	return append(k, key...), nil
}

// engine key prefix for a prefix fetch
func (p *partition) keyPrefix(keyPrefix []byte) ([]byte, error) {
	if 0 == p.hint || len(keyPrefix) != p.hint {
		return nil, fault.ErrKeyTooShortForPrefix
	}
	k := make([]byte, 1, len(keyPrefix)+1)
	k[0] = p.prefix
	return append(k, keyPrefix...), nil
}

func (p *partition) info() PartitionInfo {
	return PartitionInfo{
		Name:   p.name,
		Prefix: p.prefix,
		Hint:   p.hint,
	}
}
