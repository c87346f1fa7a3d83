// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"context"
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/ledgerpath"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/recordkey"
)

// ACLRecordName - the DATA record holding the rules of a path
const ACLRecordName = "acl"

// RecordReader - the part of the record store needed to read rules
type RecordReader interface {
	GetRecords(ctx context.Context, keys []bytestring.ByteString) ([]mutation.Record, error)
}

// DynamicLayout - rules stored in the ledger itself
//
// the value of <path>:DATA:acl is a JSON list of rule configurations,
// each applying to <path> regardless of any path it names
type DynamicLayout struct {
	log   *logger.L
	store RecordReader
}

// NewDynamicLayout - create a layout reading rules from store
func NewDynamicLayout(store RecordReader, log *logger.L) *DynamicLayout {
	return &DynamicLayout{
		log:   log,
		store: store,
	}
}

// GetPermissions - implement Provider
func (d *DynamicLayout) GetPermissions(ctx context.Context, identities []string, path ledgerpath.Path, recursiveOnly bool, recordName string) (PermissionSet, error) {
	rules, err := d.rules(ctx, path)
	if nil != err {
		return DenyAll, err
	}
	return evaluate(rules, identities, path, recursiveOnly, recordName), nil
}

func (d *DynamicLayout) rules(ctx context.Context, path ledgerpath.Path) ([]*Rule, error) {
	key, err := recordkey.New(recordkey.Data, path, ACLRecordName)
	if nil != err {
		return nil, err
	}

	records, err := d.store.GetRecords(ctx, []bytestring.ByteString{key.ToBinary()})
	if nil != err {
		return nil, err
	}
	if 0 == len(records) || records[0].ValueOrEmpty().IsEmpty() {
		return nil, nil
	}

	rules, err := ParseACL(path, records[0].ValueOrEmpty().Bytes())
	if nil != err {
		d.log.Warnf("invalid acl at: %s  error: %s", path, err)
		return nil, err
	}
	d.log.Debugf("acl at: %s  rules: %d", path, len(rules))
	return rules, nil
}

// ParseACL - decode the JSON rules of an acl record at path
func ParseACL(path ledgerpath.Path, buffer []byte) ([]*Rule, error) {
	var configs []RuleConfiguration
	if err := json.Unmarshal(buffer, &configs); nil != err {
		return nil, err
	}

	rules := make([]*Rule, 0, len(configs))
	for _, c := range configs {
		r, err := newRuleAt(path, c)
		if nil != err {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
