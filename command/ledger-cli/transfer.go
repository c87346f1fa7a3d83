// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/ledgerpath"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/recordkey"
)

// transfer parameters
type transferData struct {
	namespace bytestring.ByteString
	from      ledgerpath.Path
	to        ledgerpath.Path
	asset     ledgerpath.Path
	amount    int64
}

// record keys read before building the transfer
func (t *transferData) keys() []bytestring.ByteString {
	return []bytestring.ByteString{
		recordkey.NewAccountKey(t.from, t.asset).ToBinary(),
		recordkey.NewAccountKey(t.to, t.asset).ToBinary(),
	}
}

// makeTransfer - a balanced mutation from the current from and to records
//
// a missing record has an empty value and is treated as a zero balance
func makeTransfer(t *transferData, current []mutation.Record) (*mutation.Mutation, error) {
	if t.amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if t.from.Equal(t.to) {
		return nil, ErrSameAccount
	}

	keys := t.keys()
	records := make([]mutation.Record, 0, len(keys))
	for i, delta := range []int64{-t.amount, t.amount} {
		var r mutation.Record
		if i < len(current) {
			r = current[i]
		}
		balance := int64(0)
		if !r.ValueOrEmpty().IsEmpty() {
			b, err := mutation.DecodeBalance(r.ValueOrEmpty())
			if nil != err {
				return nil, err
			}
			balance = b
		}
		records = append(records, mutation.NewRecord(keys[i], mutation.EncodeBalance(balance+delta), r.Version))
	}

	return &mutation.Mutation{
		Namespace: t.namespace,
		Records:   records,
		Metadata:  bytestring.Empty,
	}, nil
}

// signMutation - evidence of each key over the packed mutation
func signMutation(packed []byte, keys []*account.PrivateKey) ([]mutation.SignatureEvidence, error) {
	digest := mutation.Hash(packed)
	evidence := make([]mutation.SignatureEvidence, 0, len(keys))
	for _, k := range keys {
		signature, err := k.Sign(digest.Bytes())
		if nil != err {
			return nil, err
		}
		evidence = append(evidence, mutation.SignatureEvidence{
			PublicKey: bytestring.New(k.Account().PublicKeyBytes()),
			Signature: bytestring.New(signature),
		})
	}
	return evidence, nil
}
