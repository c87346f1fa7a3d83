// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mutation - records, mutations and transactions and their
// deterministic binary encoding
//
// every length and count is a Varint64 (see util):
//
//   Mutation    := len namespace | count | Record* | len metadata
//   Record      := len key | flag [len value] | len version
//   Transaction := len mutation | timestamp (ms) | len metadata
//   Metadata    := count | (len public key | len signature)*
//
// flag is 0x00 for a record that only asserts its version and 0x01
// when a value follows
//
// decoding is strict: truncation, trailing bytes and any encoding
// that would not be reproduced exactly by the packer are rejected
package mutation
