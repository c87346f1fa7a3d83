// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
)

type accountTest struct {
	algorithm int
	publicKey []byte
}

// Valid account
var testAccount = []accountTest{
	{
		algorithm: account.ED25519,
		publicKey: decodeHex("55b2988817f7eaec37741b82447163caaa5a9db2b6f0ce722626338e5e3fd7f7"),
	},
	{
		algorithm: account.SECP256K1,
		publicKey: decodeHex("0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"),
	},
	{
		algorithm: account.SECP256K1,
		publicKey: decodeHex("0450863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b23522cd470243453a299fa9e77237716103abc11a1df38855ed6f2ee187e9c582ba6"),
	},
}

// Invalid public keys
var testInvalidAccount = [][]byte{
	{},
	decodeHex("0050863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"),
	decodeHex("0550863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"),
	decodeHex("55b2988817f7eaec37741b82447163caaa5a9db2b6f0ce722626338e5e3fd7"),
}

func TestValid(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBytes(test.publicKey)
		if nil != err {
			t.Errorf("%d: create account from bytes failed: %s", index, err)
			continue
		}
		if acc.KeyType() != test.algorithm {
			t.Errorf("%d: key type: %d  expected: %d", index, acc.KeyType(), test.algorithm)
		}
		if !bytes.Equal(acc.PublicKeyBytes(), test.publicKey) {
			t.Errorf("%d: public key: %x  expected: %x", index, acc.PublicKeyBytes(), test.publicKey)
		}

		// JSON round trip
		buffer, err := json.Marshal(acc)
		if nil != err {
			t.Errorf("%d: marshal JSON error: %s", index, err)
			continue
		}
		var a account.Account
		if err := json.Unmarshal(buffer, &a); nil != err {
			t.Errorf("%d: unmarshal JSON error: %s", index, err)
			continue
		}
		if !bytes.Equal(a.PublicKeyBytes(), test.publicKey) {
			t.Errorf("%d: JSON public key: %x  expected: %x", index, a.PublicKeyBytes(), test.publicKey)
		}
	}
}

func TestInvalid(t *testing.T) {
	for index, pk := range testInvalidAccount {
		_, err := account.AccountFromBytes(pk)
		if fault.ErrInvalidPublicKey != err {
			t.Errorf("%d: public key: %x  error: %v  expected: %s", index, pk, err, fault.ErrInvalidPublicKey)
		}
	}
}

func TestAddress(t *testing.T) {
	acc, err := account.AccountFromBytes(testAccount[2].publicKey)
	if nil != err {
		t.Fatalf("create account error: %s", err)
	}
	expected := "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM"
	if acc.Address() != expected {
		t.Errorf("address: %s  expected: %s", acc.Address(), expected)
	}
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}
