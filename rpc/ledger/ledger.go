// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/ledgerd/storage"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100

	// limit for count
	maximumKeys = 100

	requestTimeout = 30 * time.Second
)

// Poster - accepts transactions
type Poster interface {
	PostTransaction(ctx context.Context, rawMutation bytestring.ByteString, authentication []mutation.SignatureEvidence) (bytestring.ByteString, error)
	Namespace() bytestring.ByteString
}

// Ledger - type for RPC calls
type Ledger struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	poster  Poster
	store   storage.RecordStore
	counter *counter.Counter
}

// New - create the ledger RPC service
func New(log *logger.L, poster Poster, store storage.RecordStore, start time.Time, version string, counter *counter.Counter) *Ledger {
	return &Ledger{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Start:   start,
		Version: version,
		poster:  poster,
		store:   store,
		counter: counter,
	}
}

// ---

// PostArguments - a packed mutation and its signatures
type PostArguments struct {
	Mutation   bytestring.ByteString        `json:"mutation"`
	Signatures []mutation.SignatureEvidence `json:"signatures"`
}

// PostReply - identifier of the committed transaction
type PostReply struct {
	TransactionId bytestring.ByteString `json:"transaction_id"`
}

// Post - validate and commit a mutation
//
// a rejected transaction returns an error whose text is the reason
func (l *Ledger) Post(arguments *PostArguments, reply *PostReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Mutation.IsEmpty() {
		return fault.ErrMissingParameters
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, err := l.poster.PostTransaction(ctx, arguments.Mutation, arguments.Signatures)
	if nil != err {
		if !fault.IsErrRejected(err) {
			l.Log.Errorf("post error: %s", err)
		}
		return err
	}

	l.Log.Infof("post: %s", id)
	reply.TransactionId = id
	return nil
}

// ---

// RecordsArguments - keys to read
type RecordsArguments struct {
	Keys []bytestring.ByteString `json:"keys"`
}

// RecordsReply - the current records, one per key
type RecordsReply struct {
	Records []mutation.Record `json:"records"`
}

// Records - read the current state of keys
func (l *Ledger) Records(arguments *RecordsArguments, reply *RecordsReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(l.Limiter, len(arguments.Keys), maximumKeys); nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	records, err := l.store.GetRecords(ctx, arguments.Keys)
	if nil != err {
		l.Log.Errorf("records error: %s", err)
		return err
	}
	reply.Records = records
	return nil
}

// ---

// TransactionsArguments - start after this transaction, empty for the first
type TransactionsArguments struct {
	From bytestring.ByteString `json:"from"`
}

// TransactionsReply - packed transactions in commit order
type TransactionsReply struct {
	Transactions []bytestring.ByteString `json:"transactions"`
}

// Transactions - list committed transactions
func (l *Ledger) Transactions(arguments *TransactionsArguments, reply *TransactionsReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	transactions, err := l.store.GetTransactions(ctx, arguments.From)
	if nil != err {
		return err
	}
	reply.Transactions = transactions
	return nil
}

// ---

// LastArguments - empty arguments
type LastArguments struct{}

// LastReply - identifier of the most recent transaction
type LastReply struct {
	TransactionId bytestring.ByteString `json:"transaction_id"`
}

// Last - the most recent transaction
func (l *Ledger) Last(arguments *LastArguments, reply *LastReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, err := l.store.GetLastTransaction(ctx)
	if nil != err {
		return err
	}
	reply.TransactionId = id
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Namespace       bytestring.ByteString `json:"namespace"`
	LastTransaction bytestring.ByteString `json:"last_transaction"`
	RPCs            uint64                `json:"rpcs"`
	Version         string                `json:"version"`
	Uptime          string                `json:"uptime"`
}

// Info - status of this node
func (l *Ledger) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	last, err := l.store.GetLastTransaction(ctx)
	if nil != err {
		l.Log.Errorf("info: last transaction error: %s", err)
		return err
	}

	reply.Namespace = l.poster.Namespace()
	reply.LastTransaction = last
	reply.RPCs = l.counter.Uint64()
	reply.Version = l.Version
	reply.Uptime = time.Since(l.Start).String()
	return nil
}
