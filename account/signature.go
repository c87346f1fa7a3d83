// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
)

// Signature - raw signature bytes
//
// ed25519 signatures are 64 bytes, secp256k1 signatures are DER encoded
type Signature []byte

// String - hex form for logging
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}
