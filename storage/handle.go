// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/pkg/errors"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// PoolHandle - the structure for a pool
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess *dataAccess
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - add a key/value pair to the pending batch
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.dataAccess.Put(p.prefixKey(key), value)
}

// Get - read a value for a given key, nil if not found
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	value, err := p.dataAccess.Get(p.prefixKey(key))
	return value, errors.Wrapf(err, "pool: %c get", p.prefix)
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, errors.Errorf("pool: %c truncated record for: %x", p.prefix, key)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	found, err := p.dataAccess.Has(p.prefixKey(key))
	return found, errors.Wrapf(err, "pool: %c has", p.prefix)
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool, error) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	iter, err := p.dataAccess.Iterator(&maxRange)
	if nil != err {
		return Element{}, false, errors.Wrapf(err, "pool: %c last element", p.prefix)
	}

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	return result, found, errors.Wrapf(iter.Error(), "pool: %c last element", p.prefix)
}
