// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/mutation"
)

// RecordStore - versioned key value records with optimistic concurrency
type RecordStore interface {
	// current state of each key, a missing key has empty value and version
	GetRecords(ctx context.Context, keys []bytestring.ByteString) ([]mutation.Record, error)

	// atomically commit packed transactions in order, or none of them
	// returns *ConcurrentMutationError if any record version is stale
	AddTransactions(ctx context.Context, transactions []bytestring.ByteString) error

	// identifier of the most recent transaction, empty if none
	GetLastTransaction(ctx context.Context) (bytestring.ByteString, error)

	// packed transactions committed after from, from the start if empty
	GetTransactions(ctx context.Context, from bytestring.ByteString) ([]bytestring.ByteString, error)
}

// ConcurrentMutationError - a record version no longer matched the store
type ConcurrentMutationError struct {
	FailedMutation mutation.Record
}

// Error - implement error
func (e *ConcurrentMutationError) Error() string {
	return fmt.Sprintf("version mismatch for record: %q  expected version: %s", e.FailedMutation.Key.Raw(), e.FailedMutation.Version)
}
