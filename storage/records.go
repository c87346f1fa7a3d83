// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/util"
)

// MaximumTransactions - most transactions returned by one GetTransactions
const MaximumTransactions = 500

// GetRecords - current state of each key
func (s *LevelDB) GetRecords(ctx context.Context, keys []bytestring.ByteString) ([]mutation.Record, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}

	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrDatabaseIsNotSet
	}

	records := make([]mutation.Record, 0, len(keys))
	for _, key := range keys {
		r, err := s.getRecord(key)
		if nil != err {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// a missing key has empty value and version
func (s *LevelDB) getRecord(key bytestring.ByteString) (mutation.Record, error) {
	buffer, err := s.pool.Records.Get(key.Bytes())
	if nil != err {
		return mutation.Record{}, err
	}
	if nil == buffer {
		return mutation.NewRecord(key, bytestring.Empty, bytestring.Empty), nil
	}

	value, version, err := unpackRecordValue(buffer)
	if nil != err {
		return mutation.Record{}, errors.Wrapf(err, "record: %q", key.Raw())
	}
	return mutation.NewRecord(key, value, version), nil
}

// AddTransactions - atomically commit a batch of packed transactions
//
// every record version is compared against the store as modified by
// the earlier transactions of the same batch; a written record takes
// the identifier of its transaction as the new version
func (s *LevelDB) AddTransactions(ctx context.Context, transactions []bytestring.ByteString) error {
	if err := ctx.Err(); nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrDatabaseIsNotSet
	}

	sequence, err := s.lastSequence()
	if nil != err {
		return err
	}

	overlay := make(map[bytestring.ByteString]mutation.Record)
	identifiers := make(map[bytestring.ByteString]struct{})

	s.access.Begin()

	for _, packed := range transactions {
		tx, err := mutation.UnpackTransaction(packed.Bytes())
		if nil != err {
			return errors.Wrap(err, "add transactions")
		}
		m, err := mutation.UnpackMutation(tx.Mutation.Bytes())
		if nil != err {
			return errors.Wrap(err, "add transactions")
		}

		txId := mutation.TransactionId(packed.Bytes())
		if _, ok := identifiers[txId]; ok {
			return fault.ErrTransactionExists
		}
		found, err := s.pool.Index.Has(txId.Bytes())
		if nil != err {
			return err
		}
		if found {
			return fault.ErrTransactionExists
		}
		identifiers[txId] = struct{}{}

		for _, r := range m.Records {
			current, ok := overlay[r.Key]
			if !ok {
				current, err = s.getRecord(r.Key)
				if nil != err {
					return err
				}
			}
			if !current.Version.Equal(r.Version) {
				s.log.Debugf("version mismatch: key: %q  expected: %s  actual: %s", r.Key.Raw(), r.Version, current.Version)
				return &ConcurrentMutationError{FailedMutation: r}
			}
		}

		for _, r := range m.Records {
			if !r.HasValue() {
				continue
			}
			written := mutation.NewRecord(r.Key, *r.Value, txId)
			overlay[r.Key] = written
			s.pool.Records.Put(r.Key.Bytes(), packRecordValue(*r.Value, txId))
		}

		sequence += 1
		sequenceBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(sequenceBytes, sequence)

		s.pool.Transactions.Put(sequenceBytes, packed.Bytes())
		s.pool.Index.Put(txId.Bytes(), sequenceBytes)

		s.log.Debugf("transaction: %s  sequence: %d", txId, sequence)
	}

	return errors.Wrap(s.access.Commit(), "commit transactions")
}

// GetLastTransaction - identifier of the most recent transaction
func (s *LevelDB) GetLastTransaction(ctx context.Context) (bytestring.ByteString, error) {
	if err := ctx.Err(); nil != err {
		return bytestring.Empty, err
	}

	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return bytestring.Empty, fault.ErrDatabaseIsNotSet
	}

	last, found, err := s.pool.Transactions.LastElement()
	if nil != err || !found {
		return bytestring.Empty, err
	}
	return mutation.TransactionId(last.Value), nil
}

// GetTransactions - transactions committed after from, in commit order
func (s *LevelDB) GetTransactions(ctx context.Context, from bytestring.ByteString) ([]bytestring.ByteString, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}

	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrDatabaseIsNotSet
	}

	cursor := s.pool.Transactions.NewFetchCursor()
	if !from.IsEmpty() {
		sequence, found, err := s.pool.Index.GetN(from.Bytes())
		if nil != err {
			return nil, err
		}
		if !found {
			return nil, fault.ErrTransactionNotFound
		}
		start := make([]byte, 8)
		binary.BigEndian.PutUint64(start, sequence+1)
		cursor.Seek(start)
	}

	elements, err := cursor.Fetch(MaximumTransactions)
	if nil != err {
		return nil, errors.Wrap(err, "fetch transactions")
	}

	transactions := make([]bytestring.ByteString, 0, len(elements))
	for _, e := range elements {
		transactions = append(transactions, bytestring.New(e.Value))
	}
	return transactions, nil
}

func (s *LevelDB) lastSequence() (uint64, error) {
	last, found, err := s.pool.Transactions.LastElement()
	if nil != err || !found {
		return 0, err
	}
	if 8 != len(last.Key) {
		return 0, fault.ErrCorruptRecord
	}
	return binary.BigEndian.Uint64(last.Key), nil
}

// len value ++ value ++ len version ++ version
func packRecordValue(value bytestring.ByteString, version bytestring.ByteString) []byte {
	buffer := make([]byte, 0, value.Len()+version.Len()+2*util.Varint64MaximumBytes)
	buffer = util.AppendVarint64(buffer, uint64(value.Len()))
	buffer = append(buffer, value.Bytes()...)
	buffer = util.AppendVarint64(buffer, uint64(version.Len()))
	return append(buffer, version.Bytes()...)
}

func unpackRecordValue(buffer []byte) (bytestring.ByteString, bytestring.ByteString, error) {
	value, n := nextBytes(buffer)
	if n <= 0 {
		return bytestring.Empty, bytestring.Empty, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	version, n := nextBytes(buffer)
	if n <= 0 || n != len(buffer) {
		return bytestring.Empty, bytestring.Empty, fault.ErrCorruptRecord
	}
	return value, version, nil
}

// length prefixed bytes and total bytes consumed, zero if truncated
func nextBytes(buffer []byte) (bytestring.ByteString, int) {
	length, n := util.FromVarint64(buffer)
	if 0 == n || length > uint64(len(buffer)-n) {
		return bytestring.Empty, 0
	}
	end := n + int(length)
	return bytestring.New(buffer[n:end]), end
}
