// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/mutation"
)

type postReply struct {
	TransactionId bytestring.ByteString `json:"transaction_id"`
}

func runPost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkHex(c.String("mutation"), ErrRequiredMutation)
	if nil != err {
		return err
	}

	signatures, err := checkSignatures(c.StringSlice("signature"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	id, err := client.Post(packed, signatures)
	if nil != err {
		return err
	}

	return m.output(postReply{TransactionId: id})
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := checkPath(c.String("from"), ErrRequiredTransferFrom)
	if nil != err {
		return err
	}
	to, err := checkPath(c.String("to"), ErrRequiredTransferTo)
	if nil != err {
		return err
	}
	asset, err := checkPath(c.String("asset"), ErrRequiredAsset)
	if nil != err {
		return err
	}
	keys, err := checkPrivateKeys(c.StringSlice("private-key"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "asset: %s\n", asset)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return err
	}

	t := &transferData{
		namespace: info.Namespace,
		from:      from,
		to:        to,
		asset:     asset,
		amount:    c.Int64("amount"),
	}

	current, err := client.Records(t.keys())
	if nil != err {
		return err
	}

	mut, err := makeTransfer(t, current)
	if nil != err {
		return err
	}

	packed := mutation.PackMutation(mut)
	signatures, err := signMutation(packed, keys)
	if nil != err {
		return err
	}

	id, err := client.Post(bytestring.New(packed), signatures)
	if nil != err {
		return err
	}

	return m.output(postReply{TransactionId: id})
}

func runRecords(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := make([]bytestring.ByteString, 0, c.NArg())
	for _, text := range c.Args() {
		k, err := checkHex(text, ErrRequiredData)
		if nil != err {
			return err
		}
		keys = append(keys, k)
	}
	if 0 == len(keys) {
		return ErrRequiredData
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	records, err := client.Records(keys)
	if nil != err {
		return err
	}

	return m.output(records)
}

// decoded transaction for display
type transactionEntry struct {
	TransactionId bytestring.ByteString         `json:"transaction_id"`
	Transaction   *mutation.Transaction         `json:"transaction"`
	Mutation      *mutation.Mutation            `json:"mutation"`
	Metadata      *mutation.TransactionMetadata `json:"metadata,omitempty"`
}

func runTransactions(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from := bytestring.Empty
	if text := c.String("from"); "" != text {
		var err error
		from, err = bytestring.Parse(text)
		if nil != err {
			return err
		}
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Transactions(from)
	if nil != err {
		return err
	}

	entries := make([]transactionEntry, 0, len(reply.Transactions))
	for _, packed := range reply.Transactions {
		entry, err := decodeTransaction(packed)
		if nil != err {
			return err
		}
		entries = append(entries, entry)
	}

	return m.output(entries)
}

// unpack a stored transaction, its mutation and any signatures
func decodeTransaction(packed bytestring.ByteString) (transactionEntry, error) {
	tx, err := mutation.UnpackTransaction(packed.Bytes())
	if nil != err {
		return transactionEntry{}, err
	}
	mut, err := mutation.UnpackMutation(tx.Mutation.Bytes())
	if nil != err {
		return transactionEntry{}, err
	}

	entry := transactionEntry{
		TransactionId: mutation.TransactionId(packed.Bytes()),
		Transaction:   tx,
		Mutation:      mut,
	}
	if !tx.Metadata.IsEmpty() {
		metadata, err := mutation.UnpackMetadata(tx.Metadata.Bytes())
		if nil != err {
			return transactionEntry{}, err
		}
		entry.Metadata = metadata
	}
	return entry, nil
}

func runLast(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Last()
	if nil != err {
		return err
	}

	return m.output(reply)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}

	return m.output(reply)
}
