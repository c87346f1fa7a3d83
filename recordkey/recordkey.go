// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package recordkey - typed, hierarchical keys for ledger records
//
// a key is stored as UTF-8 text:
//
//   <path>:<type>:<name>
//
// a path segment can never contain ':' so the encoding is injective
package recordkey

import (
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledgerpath"
)

// MaxKeySize - largest encoded key accepted in a mutation
const MaxKeySize = 512

const separator = ":"

// RecordType - kind of record addressed by a key
type RecordType int

// the record types
const (
	Account RecordType = iota
	Data
)

var typeNames = map[RecordType]string{
	Account: "ACC",
	Data:    "DATA",
}

// String - the encoded type name
func (t RecordType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "*unknown*"
}

func typeFromName(name string) (RecordType, error) {
	for t, s := range typeNames {
		if s == name {
			return t, nil
		}
	}
	return 0, fault.ErrInvalidRecordType
}

// RecordKey - (type, path, name)
type RecordKey struct {
	recordType RecordType
	path       ledgerpath.Path
	name       string
}

// New - create a record key
//
// the name of an account key must itself be a valid path (the asset)
func New(recordType RecordType, path ledgerpath.Path, name string) (RecordKey, error) {
	if _, ok := typeNames[recordType]; !ok {
		return RecordKey{}, fault.ErrInvalidRecordType
	}
	if !utf8.ValidString(name) {
		return RecordKey{}, fault.ErrInvalidRecordKey
	}
	if Account == recordType {
		asset, err := ledgerpath.Parse(name)
		if nil != err {
			return RecordKey{}, err
		}
		name = asset.FullPath()
	}
	return RecordKey{
		recordType: recordType,
		path:       path,
		name:       name,
	}, nil
}

// NewAccountKey - the key holding the balance of asset in account
func NewAccountKey(account ledgerpath.Path, asset ledgerpath.Path) RecordKey {
	return RecordKey{
		recordType: Account,
		path:       account,
		name:       asset.FullPath(),
	}
}

// ParseAccountKey - create an account key from path text
func ParseAccountKey(account string, asset string) (RecordKey, error) {
	a, err := ledgerpath.Parse(account)
	if nil != err {
		return RecordKey{}, err
	}
	s, err := ledgerpath.Parse(asset)
	if nil != err {
		return RecordKey{}, err
	}
	return NewAccountKey(a, s), nil
}

// Parse - decode the binary form of a key
func Parse(key bytestring.ByteString) (RecordKey, error) {
	text := key.Raw()
	if !utf8.ValidString(text) {
		return RecordKey{}, fault.ErrInvalidRecordKey
	}

	parts := strings.SplitN(text, separator, 3)
	if 3 != len(parts) {
		return RecordKey{}, fault.ErrInvalidRecordKey
	}

	path, err := ledgerpath.Parse(parts[0])
	if nil != err {
		return RecordKey{}, err
	}

	recordType, err := typeFromName(parts[1])
	if nil != err {
		return RecordKey{}, err
	}

	k, err := New(recordType, path, parts[2])
	if nil != err {
		return RecordKey{}, err
	}

	// reject anything that would not re-encode to the same bytes
	if k.String() != text {
		return RecordKey{}, fault.ErrInvalidRecordKey
	}
	return k, nil
}

// Type - the record type
func (k RecordKey) Type() RecordType {
	return k.recordType
}

// Path - the record path (the account for an account key)
func (k RecordKey) Path() ledgerpath.Path {
	return k.path
}

// Name - the record name (the asset path for an account key)
func (k RecordKey) Name() string {
	return k.name
}

// Asset - the asset path of an account key
func (k RecordKey) Asset() (ledgerpath.Path, error) {
	if Account != k.recordType {
		return ledgerpath.Path{}, fault.ErrInvalidRecordType
	}
	return ledgerpath.Parse(k.name)
}

// String - the text form of the key
func (k RecordKey) String() string {
	return k.path.FullPath() + separator + k.recordType.String() + separator + k.name
}

// ToBinary - the encoded form used in records and the store
func (k RecordKey) ToBinary() bytestring.ByteString {
	return bytestring.New([]byte(k.String()))
}

// Equal - equality on the encoded form
func (k RecordKey) Equal(other RecordKey) bool {
	return k.String() == other.String()
}
