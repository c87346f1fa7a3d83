// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/recordkey"
	"github.com/bitmark-inc/ledgerd/validation"
)

// parse a packed mutation and look up current balances
func parse(t *testing.T, packed []byte, balances map[string]int64) (*mutation.ParsedMutation, map[string]mutation.AccountStatus) {
	m, err := mutation.UnpackMutation(packed)
	require.Nil(t, err, "unpack")
	parsed, err := mutation.Parse(m, mutation.Hash(packed))
	require.Nil(t, err, "parse")

	accounts := make(map[string]mutation.AccountStatus)
	for _, a := range parsed.AccountMutations {
		balance, ok := balances[a.Key.Path().FullPath()]
		if !ok {
			continue
		}
		accounts[a.Key.String()] = mutation.AccountStatus{
			Key:     a.Key,
			Balance: balance,
			Version: bytestring.New([]byte("v")),
		}
	}
	return parsed, accounts
}

func TestCheckNamespace(t *testing.T) {
	assert.Nil(t, validation.CheckNamespace(fixtures.Namespace, fixtures.Namespace), "same namespace")
	assert.Equal(t, fault.ErrInvalidNamespace, validation.CheckNamespace(fixtures.Namespace, fixtures.OtherNamespace), "prefix is not equal")
	assert.Equal(t, fault.ErrInvalidNamespace, validation.CheckNamespace(fixtures.Namespace, bytestring.Empty), "empty")
}

func TestCheckBalance(t *testing.T) {
	packed := fixtures.Transfer(fixtures.Namespace, "/a/", "/account/1/", 100, bytestring.Empty, "/account/2/", 100, bytestring.Empty)

	parsed, accounts := parse(t, packed, map[string]int64{"/account/1/": 90, "/account/2/": 110})
	assert.Nil(t, validation.CheckBalance(parsed, accounts), "balanced")

	parsed, accounts = parse(t, packed, map[string]int64{"/account/1/": 100, "/account/2/": 110})
	assert.Equal(t, fault.ErrUnbalancedTransaction, validation.CheckBalance(parsed, accounts), "unbalanced")

	parsed, accounts = parse(t, packed, map[string]int64{})
	assert.Equal(t, fault.ErrUnbalancedTransaction, validation.CheckBalance(parsed, accounts), "created from nothing")
}

func TestCheckBalancePerAsset(t *testing.T) {
	a1 := recordkey.NewAccountKey(fixtures.Path("/account/1/"), fixtures.Path("/gold/"))
	a2 := recordkey.NewAccountKey(fixtures.Path("/account/2/"), fixtures.Path("/silver/"))
	m := &mutation.Mutation{
		Namespace: fixtures.Namespace,
		Records: []mutation.Record{
			mutation.NewRecord(a1.ToBinary(), mutation.EncodeBalance(-10), bytestring.Empty),
			mutation.NewRecord(a2.ToBinary(), mutation.EncodeBalance(10), bytestring.Empty),
		},
	}
	parsed, err := mutation.Parse(m, bytestring.Empty)
	require.Nil(t, err, "parse")
	assert.Equal(t, fault.ErrUnbalancedTransaction, validation.CheckBalance(parsed, nil), "assets must balance separately")
}

func TestCheckBalanceOverflow(t *testing.T) {
	packed := fixtures.Transfer(fixtures.Namespace, "/a/", "/account/1/", math.MaxInt64, bytestring.Empty, "/account/2/", math.MaxInt64, bytestring.Empty)
	parsed, accounts := parse(t, packed, map[string]int64{"/account/1/": -1, "/account/2/": -1})
	assert.Equal(t, fault.ErrUnbalancedTransaction, validation.CheckBalance(parsed, accounts), "overflow must not wrap")
}

func TestVerifySignatures(t *testing.T) {
	packed := fixtures.Transfer(fixtures.Namespace, "/a/", "/account/1/", 100, bytestring.Empty, "/account/2/", 100, bytestring.Empty)
	digest := mutation.Hash(packed)

	k1 := fixtures.PrivateKey(1)
	k2 := fixtures.PrivateKey(2)

	signers, err := validation.VerifySignatures(digest, []mutation.SignatureEvidence{fixtures.Sign(k1, packed), fixtures.Sign(k2, packed)})
	require.Nil(t, err, "valid signatures")
	assert.Equal(t, []string{k1.Account().Address(), k2.Account().Address()}, validation.Identities(signers), "identities")

	signers, err = validation.VerifySignatures(digest, nil)
	assert.Nil(t, err, "no signatures")
	assert.Equal(t, 0, len(signers), "no signers")

	// signature of a different mutation
	other := fixtures.Transfer(fixtures.Namespace, "/a/", "/account/1/", 99, bytestring.Empty, "/account/2/", 101, bytestring.Empty)
	_, err = validation.VerifySignatures(digest, []mutation.SignatureEvidence{fixtures.Sign(k1, other)})
	assert.Equal(t, fault.ErrInvalidSignature, err, "wrong message accepted")

	// malformed public key
	evidence := fixtures.Sign(k1, packed)
	pk := evidence.PublicKey.Bytes()
	pk[0] = 0x00
	evidence.PublicKey = bytestring.New(pk)
	_, err = validation.VerifySignatures(digest, []mutation.SignatureEvidence{evidence})
	assert.Equal(t, fault.ErrInvalidSignature, err, "bad public key accepted")
}
