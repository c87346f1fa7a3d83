// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/validation"
)

func newTransfer(amount int64) *transferData {
	return &transferData{
		namespace: fixtures.Namespace,
		from:      fixtures.Path("/account/1/"),
		to:        fixtures.Path("/account/2/"),
		asset:     fixtures.Path("/asset/"),
		amount:    amount,
	}
}

func TestMakeTransfer(t *testing.T) {
	td := newTransfer(30)
	keys := td.keys()
	version := bytestring.New([]byte("v1"))

	current := []mutation.Record{
		mutation.NewRecord(keys[0], mutation.EncodeBalance(100), version),
		mutation.NewRecord(keys[1], bytestring.Empty, bytestring.Empty),
	}

	m, err := makeTransfer(td, current)
	require.NoError(t, err, "make transfer")

	assert.Equal(t, fixtures.Namespace, m.Namespace, "wrong namespace")
	require.Equal(t, 2, len(m.Records), "wrong record count")

	assert.Equal(t, keys[0], m.Records[0].Key, "wrong from key")
	assert.Equal(t, mutation.EncodeBalance(70), m.Records[0].ValueOrEmpty(), "wrong from balance")
	assert.Equal(t, version, m.Records[0].Version, "wrong from version")

	assert.Equal(t, keys[1], m.Records[1].Key, "wrong to key")
	assert.Equal(t, mutation.EncodeBalance(30), m.Records[1].ValueOrEmpty(), "wrong to balance")
	assert.True(t, m.Records[1].Version.IsEmpty(), "new account must have empty version")

	// the result is balanced
	parsed, err := mutation.Parse(m, mutation.Hash(mutation.PackMutation(m)))
	require.NoError(t, err, "parse")
	assert.Equal(t, 2, len(parsed.AccountKeys()), "wrong account keys")
}

func TestMakeTransferInvalid(t *testing.T) {
	_, err := makeTransfer(newTransfer(0), nil)
	assert.Equal(t, ErrInvalidAmount, err, "zero amount")

	_, err = makeTransfer(newTransfer(-5), nil)
	assert.Equal(t, ErrInvalidAmount, err, "negative amount")

	td := newTransfer(1)
	td.to = td.from
	_, err = makeTransfer(td, nil)
	assert.Equal(t, ErrSameAccount, err, "same account")

	td = newTransfer(1)
	keys := td.keys()
	current := []mutation.Record{
		mutation.NewRecord(keys[0], bytestring.New([]byte{1, 2, 3}), bytestring.Empty),
	}
	_, err = makeTransfer(td, current)
	assert.Equal(t, fault.ErrBalanceLength, err, "corrupt balance")
}

func TestSignMutation(t *testing.T) {
	m, err := makeTransfer(newTransfer(5), nil)
	require.NoError(t, err, "make transfer")
	packed := mutation.PackMutation(m)

	ed, err := account.NewPrivateKey(account.ED25519)
	require.NoError(t, err, "ed25519 key")
	keys := []*account.PrivateKey{fixtures.PrivateKey(1), ed}

	evidence, err := signMutation(packed, keys)
	require.NoError(t, err, "sign")
	require.Equal(t, 2, len(evidence), "wrong evidence count")

	signers, err := validation.VerifySignatures(mutation.Hash(packed), evidence)
	assert.Nil(t, err, "signatures do not verify")
	assert.Equal(t, 2, len(signers), "wrong signer count")
}

func TestDecodeTransaction(t *testing.T) {
	m, err := makeTransfer(newTransfer(5), nil)
	require.NoError(t, err, "make transfer")
	packed := mutation.PackMutation(m)

	evidence, err := signMutation(packed, []*account.PrivateKey{fixtures.PrivateKey(2)})
	require.NoError(t, err, "sign")

	tx := mutation.PackTransaction(&mutation.Transaction{
		Mutation:  bytestring.New(packed),
		Timestamp: time.Unix(1500000000, 0).UTC(),
		Metadata:  bytestring.New(mutation.PackMetadata(&mutation.TransactionMetadata{Signatures: evidence})),
	})

	entry, err := decodeTransaction(bytestring.New(tx))
	require.NoError(t, err, "decode")
	assert.Equal(t, mutation.TransactionId(tx), entry.TransactionId, "wrong id")
	assert.Equal(t, m.Records, entry.Mutation.Records, "wrong records")
	require.NotNil(t, entry.Metadata, "missing metadata")
	assert.Equal(t, evidence, entry.Metadata.Signatures, "wrong signatures")

	_, err = decodeTransaction(bytestring.New([]byte{0xff}))
	assert.NotNil(t, err, "garbage accepted")
}
