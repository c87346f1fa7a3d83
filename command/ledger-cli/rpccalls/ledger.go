// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/rpc/ledger"
)

// Post - submit a packed mutation with its signatures
func (client *Client) Post(packedMutation bytestring.ByteString, signatures []mutation.SignatureEvidence) (bytestring.ByteString, error) {
	arguments := ledger.PostArguments{
		Mutation:   packedMutation,
		Signatures: signatures,
	}
	var reply ledger.PostReply
	if err := client.call("Ledger.Post", arguments, &reply); err != nil {
		return bytestring.Empty, err
	}

	return reply.TransactionId, nil
}

// Records - fetch the current value and version of some keys
func (client *Client) Records(keys []bytestring.ByteString) ([]mutation.Record, error) {
	arguments := ledger.RecordsArguments{
		Keys: keys,
	}
	var reply ledger.RecordsReply
	if err := client.call("Ledger.Records", arguments, &reply); err != nil {
		return nil, err
	}

	return reply.Records, nil
}

// Transactions - packed transactions after an optional starting id
func (client *Client) Transactions(from bytestring.ByteString) (*ledger.TransactionsReply, error) {
	arguments := ledger.TransactionsArguments{
		From: from,
	}
	var reply ledger.TransactionsReply
	if err := client.call("Ledger.Transactions", arguments, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// Last - the most recent transaction id
func (client *Client) Last() (*ledger.LastReply, error) {
	var reply ledger.LastReply
	if err := client.call("Ledger.Last", ledger.LastArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// Info - status of the ledgerd
func (client *Client) Info() (*ledger.InfoReply, error) {
	var reply ledger.InfoReply
	if err := client.call("Ledger.Info", ledger.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}
