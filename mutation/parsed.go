// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mutation

import (
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/recordkey"
)

// DataRecord - a DATA record with its decoded key
type DataRecord struct {
	Key     recordkey.RecordKey
	Value   bytestring.ByteString
	Version bytestring.ByteString
}

// ParsedMutation - a mutation split by record type
//
// records without a value appear only in Dependencies
type ParsedMutation struct {
	Namespace        bytestring.ByteString
	AccountMutations []AccountStatus
	DataRecords      []DataRecord
	Dependencies     []Record
	Hash             bytestring.ByteString
}

// Parse - decode every key and account balance of a mutation
//
// hash is the digest of the packed mutation (see Hash)
func Parse(m *Mutation, hash bytestring.ByteString) (*ParsedMutation, error) {
	parsed := &ParsedMutation{
		Namespace: m.Namespace,
		Hash:      hash,
	}

	for _, r := range m.Records {
		key, err := recordkey.Parse(r.Key)
		if nil != err {
			return nil, err
		}

		if !r.HasValue() {
			parsed.Dependencies = append(parsed.Dependencies, r)
			continue
		}

		switch key.Type() {
		case recordkey.Account:
			// a written balance is never empty, unlike a missing record
			if BalanceSize != r.Value.Len() {
				return nil, fault.ErrBalanceLength
			}
			status, err := AccountStatusFromRecord(key, r)
			if nil != err {
				return nil, err
			}
			parsed.AccountMutations = append(parsed.AccountMutations, status)

		default:
			parsed.DataRecords = append(parsed.DataRecords, DataRecord{
				Key:     key,
				Value:   *r.Value,
				Version: r.Version,
			})
		}
	}
	return parsed, nil
}

// AccountKeys - the binary keys of all account mutations
func (p *ParsedMutation) AccountKeys() []bytestring.ByteString {
	keys := make([]bytestring.ByteString, len(p.AccountMutations))
	for i, a := range p.AccountMutations {
		keys[i] = a.Key.ToBinary()
	}
	return keys
}
