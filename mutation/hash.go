// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mutation

import (
	"github.com/minio/sha256-simd"

	"github.com/bitmark-inc/ledgerd/bytestring"
)

// IdentifierSize - bytes in a transaction identifier
const IdentifierSize = sha256.Size

// TransactionId - double SHA-256 of a packed transaction
func TransactionId(packedTransaction []byte) bytestring.ByteString {
	return doubleSHA256(packedTransaction)
}

// Hash - the digest of a packed mutation that signatures cover
func Hash(packedMutation []byte) bytestring.ByteString {
	return doubleSHA256(packedMutation)
}

func doubleSHA256(data []byte) bytestring.ByteString {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return bytestring.New(second[:])
}
