// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
)

var testPrivateKey = []struct {
	algorithm  int
	privateKey []byte
	publicKey  []byte
}{
	{
		algorithm:  account.ED25519,
		privateKey: decodeHex("95b5a80b4cdbe61c0f3f72cc152d4a4f29bcfd39c9a67e2c7bc6e0e14ec7c7ba55b2988817f7eaec37741b82447163caaa5a9db2b6f0ce722626338e5e3fd7f7"),
		publicKey:  decodeHex("55b2988817f7eaec37741b82447163caaa5a9db2b6f0ce722626338e5e3fd7f7"),
	},
	{
		algorithm:  account.SECP256K1,
		privateKey: decodeHex("0000000000000000000000000000000000000000000000000000000000000001"),
		publicKey:  decodeHex("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
	},
}

func TestPrivateKeyFromBytes(t *testing.T) {
	for index, test := range testPrivateKey {
		prv, err := account.PrivateKeyFromBytes(test.algorithm, test.privateKey)
		if nil != err {
			t.Errorf("%d: from bytes error: %s", index, err)
			continue
		}
		if prv.KeyType() != test.algorithm {
			t.Errorf("%d: key type: %d  expected: %d", index, prv.KeyType(), test.algorithm)
		}
		if !bytes.Equal(prv.Account().PublicKeyBytes(), test.publicKey) {
			t.Errorf("%d: public key: %x  expected: %x", index, prv.Account().PublicKeyBytes(), test.publicKey)
		}

		// base58 and JSON round trip
		p2, err := account.PrivateKeyFromBase58(prv.String())
		if nil != err {
			t.Errorf("%d: from base58 error: %s", index, err)
			continue
		}
		if !bytes.Equal(p2.PrivateKeyBytes(), test.privateKey) {
			t.Errorf("%d: base58 private key: %x  expected: %x", index, p2.PrivateKeyBytes(), test.privateKey)
		}

		buffer, err := json.Marshal(prv)
		if nil != err {
			t.Errorf("%d: marshal JSON error: %s", index, err)
			continue
		}
		var p3 account.PrivateKey
		if err := json.Unmarshal(buffer, &p3); nil != err {
			t.Errorf("%d: unmarshal JSON error: %s", index, err)
		}
	}
}

func TestPrivateKeyInvalid(t *testing.T) {
	if _, err := account.PrivateKeyFromBytes(account.ED25519, []byte{1, 2, 3}); fault.ErrInvalidKeyType != err {
		t.Errorf("short ed25519 key error: %v", err)
	}
	if _, err := account.PrivateKeyFromBytes(account.SECP256K1, []byte{1, 2, 3}); fault.ErrInvalidKeyType != err {
		t.Errorf("short secp256k1 key error: %v", err)
	}
	if _, err := account.PrivateKeyFromBytes(99, []byte{1, 2, 3}); fault.ErrInvalidKeyType != err {
		t.Errorf("unknown key type error: %v", err)
	}
	if _, err := account.NewPrivateKey(99); fault.ErrInvalidKeyType != err {
		t.Errorf("unknown key type error: %v", err)
	}
}

func TestSignAndVerify(t *testing.T) {
	digest := sha256.Sum256([]byte("a message to sign"))
	other := sha256.Sum256([]byte("some other message"))

	for _, keyType := range []int{account.ED25519, account.SECP256K1} {
		prv, err := account.NewPrivateKey(keyType)
		if nil != err {
			t.Fatalf("%d: new private key error: %s", keyType, err)
		}
		signature, err := prv.Sign(digest[:])
		if nil != err {
			t.Fatalf("%d: sign error: %s", keyType, err)
		}

		acc := prv.Account()
		if err := acc.CheckSignature(digest[:], signature); nil != err {
			t.Errorf("%d: valid signature rejected: %s", keyType, err)
		}
		if err := acc.CheckSignature(other[:], signature); fault.ErrInvalidSignature != err {
			t.Errorf("%d: signature of other message accepted: %v", keyType, err)
		}

		bad := append(account.Signature{}, signature...)
		bad[len(bad)-1] ^= 0x01
		if err := acc.CheckSignature(digest[:], bad); fault.ErrInvalidSignature != err {
			t.Errorf("%d: corrupt signature accepted: %v", keyType, err)
		}

		// the public key survives a bytes round trip
		a2, err := account.AccountFromBytes(acc.PublicKeyBytes())
		if nil != err {
			t.Fatalf("%d: account from bytes error: %s", keyType, err)
		}
		if err := a2.CheckSignature(digest[:], signature); nil != err {
			t.Errorf("%d: signature rejected after round trip: %s", keyType, err)
		}
	}
}
