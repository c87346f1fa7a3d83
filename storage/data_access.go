// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// batched writes and cached reads over one database
//
// callers serialise Begin/Put/Commit; reads may run concurrently
type dataAccess struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
	// pending writes, applied to the cache on commit
	pending map[string][]byte
}

func newDataAccess(db *leveldb.DB) *dataAccess {
	return &dataAccess{
		db:      db,
		batch:   new(leveldb.Batch),
		cache:   newCache(),
		pending: make(map[string][]byte),
	}
}

func (d *dataAccess) Begin() {
	d.batch.Reset()
	d.pending = make(map[string][]byte)
}

func (d *dataAccess) Put(key []byte, value []byte) {
	d.batch.Put(key, value)
	d.pending[string(key)] = value
}

// write the batch in a single operation
func (d *dataAccess) Commit() error {
	err := d.db.Write(d.batch, nil)
	if nil == err {
		for k, v := range d.pending {
			d.cache.Set(k, v)
		}
	} else {
		d.cache.Flush()
	}
	d.Begin()
	return err
}

// value of key, nil if not found
func (d *dataAccess) Get(key []byte) ([]byte, error) {
	if value, found := d.cache.Get(string(key)); found {
		return value, nil
	}
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}
	d.cache.Set(string(key), value)
	return value, nil
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	if _, found := d.cache.Get(string(key)); found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// iterate a consistent snapshot of the range
func (d *dataAccess) Iterator(searchRange *ldb_util.Range) (iterator.Iterator, error) {
	snapshot, err := d.db.GetSnapshot()
	if nil != err {
		return nil, err
	}
	iter := snapshot.NewIterator(searchRange, nil)
	iter.SetReleaser(snapshot)
	return iter, nil
}
