// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/validation"
)

// Ledger - the transaction validator for one namespace
type Ledger struct {
	log       *logger.L
	store     storage.RecordStore
	validator validation.MutationValidator
	namespace bytestring.ByteString
	now       func() time.Time
}

// New - create a ledger over a store
func New(store storage.RecordStore, validator validation.MutationValidator, namespace bytestring.ByteString, log *logger.L) *Ledger {
	return &Ledger{
		log:       log,
		store:     store,
		validator: validator,
		namespace: namespace,
		now:       time.Now,
	}
}

// Namespace - the namespace accepted by this ledger
func (l *Ledger) Namespace() bytestring.ByteString {
	return l.namespace
}

// PostTransaction - validate and commit a packed mutation
//
// returns the identifier of the committed transaction
func (l *Ledger) PostTransaction(ctx context.Context, rawMutation bytestring.ByteString, authentication []mutation.SignatureEvidence) (bytestring.ByteString, error) {

	m, err := mutation.UnpackMutation(rawMutation.Bytes())
	if nil != err {
		l.log.Debugf("decode error: %s", err)
		return bytestring.Empty, fault.ErrInvalidMutation
	}

	if err := validation.CheckNamespace(l.namespace, m.Namespace); nil != err {
		l.log.Debugf("namespace: %s  rejected", m.Namespace)
		return bytestring.Empty, err
	}

	hash := mutation.Hash(rawMutation.Bytes())
	if _, err := validation.VerifySignatures(hash, authentication); nil != err {
		l.log.Debugf("mutation: %s  signature rejected", hash)
		return bytestring.Empty, err
	}

	parsed, err := mutation.Parse(m, hash)
	if nil != err {
		l.log.Debugf("mutation: %s  parse error: %s", hash, err)
		return bytestring.Empty, fault.ErrInvalidMutation
	}

	overlay := newOverlay()
	if err := l.load(ctx, overlay, parsed.AccountKeys()); nil != err {
		return bytestring.Empty, err
	}

	accounts, err := overlay.accounts(parsed)
	if nil != err {
		return bytestring.Empty, err
	}
	if err := validation.CheckBalance(parsed, accounts); nil != err {
		l.log.Debugf("mutation: %s  unbalanced", hash)
		return bytestring.Empty, err
	}

	generated, err := l.validator.Validate(ctx, parsed, authentication, accounts)
	if nil != err {
		if fault.IsErrRejected(err) {
			l.log.Infof("mutation: %s  rejected: %s", hash, err)
		} else {
			l.log.Errorf("mutation: %s  validator error: %s", hash, err)
		}
		return bytestring.Empty, err
	}

	timestamp := l.now()
	metadata := mutation.PackMetadata(&mutation.TransactionMetadata{
		Signatures: authentication,
	})

	first := packTransaction(rawMutation, timestamp, bytestring.New(metadata))
	transactionId := mutation.TransactionId(first.Bytes())
	overlay.apply(m, transactionId)

	batch := []bytestring.ByteString{first}

	for i := range generated {
		packed, err := l.chain(ctx, overlay, &generated[i], timestamp)
		if nil != err {
			l.log.Infof("mutation: %s  generated mutation: %d  rejected: %s", hash, i, err)
			return bytestring.Empty, err
		}
		batch = append(batch, packed)
	}

	if err := ctx.Err(); nil != err {
		return bytestring.Empty, err
	}

	err = l.store.AddTransactions(ctx, batch)
	if nil != err {
		if _, ok := err.(*storage.ConcurrentMutationError); ok {
			l.log.Infof("mutation: %s  concurrency conflict: %s", hash, err)
			return bytestring.Empty, fault.ErrOptimisticConcurrency
		}
		l.log.Errorf("mutation: %s  commit error: %s", hash, err)
		return bytestring.Empty, err
	}

	l.log.Infof("transaction: %s  committed  batch size: %d", transactionId, len(batch))
	return transactionId, nil
}

// validate a generated mutation against the state left by the
// earlier transactions of the batch and pack it
//
// every record version is replaced by the version the record will
// have when this transaction is applied
func (l *Ledger) chain(ctx context.Context, overlay *overlay, generated *mutation.Mutation, timestamp time.Time) (bytestring.ByteString, error) {

	if err := validation.CheckNamespace(l.namespace, generated.Namespace); nil != err {
		return bytestring.Empty, err
	}

	// round trip applies the same structural checks as a submission
	m, err := mutation.UnpackMutation(mutation.PackMutation(generated))
	if nil != err {
		return bytestring.Empty, fault.ErrInvalidMutation
	}
	if _, err := mutation.Parse(m, bytestring.Empty); nil != err {
		return bytestring.Empty, fault.ErrInvalidMutation
	}

	keys := make([]bytestring.ByteString, len(m.Records))
	for i, r := range m.Records {
		keys[i] = r.Key
	}
	if err := l.load(ctx, overlay, overlay.missing(keys)); nil != err {
		return bytestring.Empty, err
	}

	for i, r := range m.Records {
		current, ok := overlay.get(r.Key)
		if !ok {
			l.log.Errorf("generated mutation key: %q  not loaded", r.Key.Raw())
			return bytestring.Empty, fault.ErrInvalidMutation
		}
		m.Records[i].Version = current.Version
	}

	packed := mutation.PackMutation(m)
	parsed, err := mutation.Parse(m, mutation.Hash(packed))
	if nil != err {
		return bytestring.Empty, fault.ErrInvalidMutation
	}

	accounts, err := overlay.accounts(parsed)
	if nil != err {
		return bytestring.Empty, err
	}
	if err := validation.CheckBalance(parsed, accounts); nil != err {
		return bytestring.Empty, err
	}

	tx := packTransaction(bytestring.New(packed), timestamp, bytestring.Empty)
	overlay.apply(m, mutation.TransactionId(tx.Bytes()))
	return tx, nil
}

// read the current state of keys into the overlay
func (l *Ledger) load(ctx context.Context, overlay *overlay, keys []bytestring.ByteString) error {
	if 0 == len(keys) {
		return nil
	}
	records, err := l.store.GetRecords(ctx, keys)
	if nil != err {
		l.log.Errorf("get records error: %s", err)
		return err
	}
	for _, r := range records {
		overlay.set(r)
	}
	return nil
}

func packTransaction(packedMutation bytestring.ByteString, timestamp time.Time, metadata bytestring.ByteString) bytestring.ByteString {
	tx := &mutation.Transaction{
		Mutation:  packedMutation,
		Timestamp: timestamp,
		Metadata:  metadata,
	}
	return bytestring.New(mutation.PackTransaction(tx))
}

// overlay - record state as modified by the transactions of a batch
type overlay struct {
	records map[bytestring.ByteString]mutation.Record
}

func newOverlay() *overlay {
	return &overlay{
		records: make(map[bytestring.ByteString]mutation.Record),
	}
}

func (o *overlay) get(key bytestring.ByteString) (mutation.Record, bool) {
	r, ok := o.records[key]
	return r, ok
}

func (o *overlay) set(r mutation.Record) {
	o.records[r.Key] = r
}

func (o *overlay) missing(keys []bytestring.ByteString) []bytestring.ByteString {
	result := make([]bytestring.ByteString, 0, len(keys))
	for _, k := range keys {
		if _, ok := o.records[k]; !ok {
			result = append(result, k)
		}
	}
	return result
}

// the written records take the transaction identifier as version
func (o *overlay) apply(m *mutation.Mutation, transactionId bytestring.ByteString) {
	for _, r := range m.Records {
		if r.HasValue() {
			o.set(mutation.NewRecord(r.Key, *r.Value, transactionId))
		}
	}
}

// account snapshots for the accounts changed by a mutation
func (o *overlay) accounts(parsed *mutation.ParsedMutation) (map[string]mutation.AccountStatus, error) {
	accounts := make(map[string]mutation.AccountStatus, len(parsed.AccountMutations))
	for _, a := range parsed.AccountMutations {
		r, ok := o.records[a.Key.ToBinary()]
		if !ok {
			r = mutation.NewRecord(a.Key.ToBinary(), bytestring.Empty, bytestring.Empty)
		}
		status, err := mutation.AccountStatusFromRecord(a.Key, r)
		if nil != err {
			return nil, fault.ErrCorruptRecord
		}
		accounts[a.Key.String()] = status
	}
	return accounts, nil
}
