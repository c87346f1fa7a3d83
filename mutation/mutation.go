// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mutation

import (
	"time"

	"github.com/bitmark-inc/ledgerd/bytestring"
)

// Record - a key with an optional new value and the expected version
//
// Value nil: only check the version (read dependency)
// Version empty: the key must not exist yet
type Record struct {
	Key     bytestring.ByteString  `json:"key"`
	Value   *bytestring.ByteString `json:"value,omitempty"`
	Version bytestring.ByteString  `json:"version"`
}

// Mutation - an ordered set of record changes in a namespace
type Mutation struct {
	Namespace bytestring.ByteString `json:"namespace"`
	Records   []Record              `json:"records"`
	Metadata  bytestring.ByteString `json:"metadata"`
}

// SignatureEvidence - a public key and its signature of a mutation
type SignatureEvidence struct {
	PublicKey bytestring.ByteString `json:"public_key"`
	Signature bytestring.ByteString `json:"signature"`
}

// TransactionMetadata - the evidence stored with a transaction
type TransactionMetadata struct {
	Signatures []SignatureEvidence `json:"signatures"`
}

// Transaction - the envelope committed to the store
type Transaction struct {
	Mutation  bytestring.ByteString `json:"mutation"`
	Timestamp time.Time             `json:"timestamp"`
	Metadata  bytestring.ByteString `json:"metadata"`
}

// NewRecord - a record that writes value
func NewRecord(key bytestring.ByteString, value bytestring.ByteString, version bytestring.ByteString) Record {
	return Record{
		Key:     key,
		Value:   &value,
		Version: version,
	}
}

// NewCheckRecord - a record that only asserts the version of key
func NewCheckRecord(key bytestring.ByteString, version bytestring.ByteString) Record {
	return Record{
		Key:     key,
		Version: version,
	}
}

// HasValue - true if the record writes a value
func (r Record) HasValue() bool {
	return nil != r.Value
}

// ValueOrEmpty - the value, empty for a check only record
func (r Record) ValueOrEmpty() bytestring.ByteString {
	if nil == r.Value {
		return bytestring.Empty
	}
	return *r.Value
}
