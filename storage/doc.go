// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the versioned record store
//
// records are only ever changed by committing transactions; every
// record carries the version it is expected to have, and a batch of
// transactions is written only if all of those versions still hold
//
// The LevelDB implementation keeps a series of pools, each defined by
// a prefix byte obtained from the prefix tag in the struct defining
// the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. sequence     = commit order as big endian uint64 (8 bytes), starting at 1
// 4. txId         = transaction identifier, 32 byte SHA-256(SHA-256(data))
// 5. record key   = encoded record key text
//
// Records:
//
//   R ++ record key            - current state of a record
//                                data: len value ++ value ++ len version ++ version
//
// Transactions:
//
//   T ++ sequence              - committed transactions in order
//                                data: packed transaction
//   H ++ txId                  - index of committed transactions
//                                data: sequence
package storage
