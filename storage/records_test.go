// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/storage"
)

func ctx() context.Context {
	return context.Background()
}

func value(s string) bytestring.ByteString {
	return bytestring.New([]byte(s))
}

func TestGetRecordsMissing(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	key := fixtures.DataKey("/a/", "missing")
	records, err := s.GetRecords(ctx(), []bytestring.ByteString{key})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, key, records[0].Key, "key")
	assert.True(t, records[0].HasValue(), "missing key has an empty value")
	assert.True(t, records[0].ValueOrEmpty().IsEmpty(), "value")
	assert.True(t, records[0].Version.IsEmpty(), "version")
}

func TestAddTransactionsChainsVersions(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	key := fixtures.DataKey("/a/", "x")

	first := pack(t, 1, mutation.NewRecord(key, value("1"), bytestring.Empty))
	firstId := mutation.TransactionId(first.Bytes())
	second := pack(t, 2, mutation.NewRecord(key, value("2"), firstId))
	secondId := mutation.TransactionId(second.Bytes())

	err := s.AddTransactions(ctx(), []bytestring.ByteString{first, second})
	require.NoError(t, err, "batch where the second depends on the first")

	records, err := s.GetRecords(ctx(), []bytestring.ByteString{key})
	require.NoError(t, err)
	assert.Equal(t, "2", records[0].ValueOrEmpty().Raw(), "value")
	assert.Equal(t, secondId, records[0].Version, "version")

	last, err := s.GetLastTransaction(ctx())
	require.NoError(t, err)
	assert.Equal(t, secondId, last, "last transaction")
}

func TestAddTransactionsStaleVersion(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	key := fixtures.DataKey("/a/", "x")
	other := fixtures.DataKey("/a/", "y")

	first := pack(t, 1, mutation.NewRecord(key, value("1"), bytestring.Empty))
	require.NoError(t, s.AddTransactions(ctx(), []bytestring.ByteString{first}))

	// a valid transaction followed by a stale one: nothing is written
	good := pack(t, 2, mutation.NewRecord(other, value("y"), bytestring.Empty))
	stale := mutation.NewRecord(key, value("2"), bytestring.Empty)
	bad := pack(t, 3, stale)

	err := s.AddTransactions(ctx(), []bytestring.ByteString{good, bad})
	require.Error(t, err)

	concurrent, ok := err.(*storage.ConcurrentMutationError)
	require.True(t, ok, "wrong error type: %T", err)
	assert.Equal(t, stale.Key, concurrent.FailedMutation.Key, "failed key")

	records, err := s.GetRecords(ctx(), []bytestring.ByteString{key, other})
	require.NoError(t, err)
	assert.Equal(t, "1", records[0].ValueOrEmpty().Raw(), "unchanged")
	assert.True(t, records[1].Version.IsEmpty(), "good transaction was not committed")

	last, err := s.GetLastTransaction(ctx())
	require.NoError(t, err)
	assert.Equal(t, mutation.TransactionId(first.Bytes()), last, "last transaction")
}

func TestAddTransactionsCheckOnlyRecord(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	key := fixtures.DataKey("/a/", "x")
	dependency := fixtures.DataKey("/a/", "dep")

	first := pack(t, 1, mutation.NewRecord(dependency, value("d"), bytestring.Empty))
	require.NoError(t, s.AddTransactions(ctx(), []bytestring.ByteString{first}))
	firstId := mutation.TransactionId(first.Bytes())

	stale := pack(t, 2,
		mutation.NewCheckRecord(dependency, bytestring.Empty),
		mutation.NewRecord(key, value("x"), bytestring.Empty),
	)
	_, ok := s.AddTransactions(ctx(), []bytestring.ByteString{stale}).(*storage.ConcurrentMutationError)
	assert.True(t, ok, "stale read dependency")

	current := pack(t, 3,
		mutation.NewCheckRecord(dependency, firstId),
		mutation.NewRecord(key, value("x"), bytestring.Empty),
	)
	require.NoError(t, s.AddTransactions(ctx(), []bytestring.ByteString{current}))

	records, err := s.GetRecords(ctx(), []bytestring.ByteString{dependency})
	require.NoError(t, err)
	assert.Equal(t, firstId, records[0].Version, "check only record keeps its version")
}

func TestAddTransactionsDuplicate(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	tx := pack(t, 1, mutation.NewCheckRecord(fixtures.DataKey("/a/", "x"), bytestring.Empty))
	require.NoError(t, s.AddTransactions(ctx(), []bytestring.ByteString{tx}))

	err := s.AddTransactions(ctx(), []bytestring.ByteString{tx})
	assert.Equal(t, fault.ErrTransactionExists, err, "replayed transaction")
}

func TestAddTransactionsInvalid(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	err := s.AddTransactions(ctx(), []bytestring.ByteString{value("junk")})
	assert.Error(t, err, "undecodable transaction")
}

func TestAddTransactionsCancelled(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	c, cancel := context.WithCancel(ctx())
	cancel()

	tx := pack(t, 1, mutation.NewRecord(fixtures.DataKey("/a/", "x"), value("1"), bytestring.Empty))
	err := s.AddTransactions(c, []bytestring.ByteString{tx})
	assert.Equal(t, context.Canceled, err, "cancelled context")
}

func TestAtMostOneCommitPerVersion(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	key := fixtures.DataKey("/a/", "x")
	const writers = 16

	var wg sync.WaitGroup
	results := make(chan error, writers)
	for i := 0; i < writers; i += 1 {
		tx := pack(t, int64(i+1), mutation.NewRecord(key, value("w"), bytestring.Empty))
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.AddTransactions(ctx(), []bytestring.ByteString{tx})
		}()
	}
	wg.Wait()
	close(results)

	committed := 0
	for err := range results {
		if nil == err {
			committed += 1
			continue
		}
		_, ok := err.(*storage.ConcurrentMutationError)
		assert.True(t, ok, "unexpected error: %s", err)
	}
	assert.Equal(t, 1, committed, "exactly one writer wins")
}

func TestGetTransactions(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	empty, err := s.GetTransactions(ctx(), bytestring.Empty)
	require.NoError(t, err)
	assert.Empty(t, empty, "no transactions")

	last, err := s.GetLastTransaction(ctx())
	require.NoError(t, err)
	assert.True(t, last.IsEmpty(), "no last transaction")

	var batch []bytestring.ByteString
	for i := 0; i < 3; i += 1 {
		batch = append(batch, pack(t, int64(i+1), mutation.NewCheckRecord(fixtures.DataKey("/a/", "x"), bytestring.Empty)))
	}
	require.NoError(t, s.AddTransactions(ctx(), batch))

	all, err := s.GetTransactions(ctx(), bytestring.Empty)
	require.NoError(t, err)
	assert.Equal(t, batch, all, "all transactions in order")

	after, err := s.GetTransactions(ctx(), mutation.TransactionId(batch[0].Bytes()))
	require.NoError(t, err)
	assert.Equal(t, batch[1:], after, "transactions after the first")

	_, err = s.GetTransactions(ctx(), value("unknown"))
	assert.Equal(t, fault.ErrTransactionNotFound, err, "unknown transaction")
}

func TestGetTransactionsLimit(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	var batch []bytestring.ByteString
	for i := 0; i < storage.MaximumTransactions+10; i += 1 {
		batch = append(batch, pack(t, int64(i+1), mutation.NewCheckRecord(fixtures.DataKey("/a/", "x"), bytestring.Empty)))
	}
	require.NoError(t, s.AddTransactions(ctx(), batch))

	first, err := s.GetTransactions(ctx(), bytestring.Empty)
	require.NoError(t, err)
	assert.Len(t, first, storage.MaximumTransactions, "capped")

	rest, err := s.GetTransactions(ctx(), mutation.TransactionId(first[len(first)-1].Bytes()))
	require.NoError(t, err)
	assert.Len(t, rest, 10, "remainder")
}
