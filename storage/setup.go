// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/ledgerd/fault"
)

// the storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Records      *PoolHandle `prefix:"R"`
	Transactions *PoolHandle `prefix:"T"`
	Index        *PoolHandle `prefix:"H"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// LevelDB - RecordStore on a LevelDB database
type LevelDB struct {
	sync.RWMutex
	log    *logger.L
	db     *leveldb.DB
	access *dataAccess
	pool   pools
}

// Open - open (or create) a database file
func Open(fileName string, readOnly bool, log *logger.L) (*LevelDB, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(fileName, opt)
	if nil != err {
		return nil, errors.Wrapf(err, "open database: %s", fileName)
	}
	return initialise(db, readOnly, log)
}

// OpenMemory - a database that is never written to disk
func OpenMemory(log *logger.L) (*LevelDB, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, errors.Wrap(err, "open memory database")
	}
	return initialise(db, false, log)
}

func initialise(db *leveldb.DB, readOnly bool, log *logger.L) (*LevelDB, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, errors.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return nil, fault.ErrNotInitialised
		}
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
		log.Infof("new database version: %d", currentDBVersion)
	}

	s := &LevelDB{
		log:    log,
		db:     db,
		access: newDataAccess(db),
	}
	if err := s.pool.setup(s.access); nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return s, nil
}

// scan each field of the pools structure and assign a handle
func (p *pools) setup(access *dataAccess) error {
	// this will be a struct type
	poolType := reflect.TypeOf(*p)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(p).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return errors.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		h := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(h))
	}
	return nil
}

// Close - release the database
func (s *LevelDB) Close() {
	s.Lock()
	defer s.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, errors.Wrap(err, "read database version")
	}

	if 4 != len(versionValue) {
		return 0, errors.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return errors.Wrap(db.Put(versionKey, currentVersion, nil), "write database version")
}
