// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mutation

import (
	"encoding/binary"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/recordkey"
)

// BalanceSize - bytes in an encoded account balance
const BalanceSize = 8

// AccountStatus - snapshot of an account at a version
type AccountStatus struct {
	Key     recordkey.RecordKey
	Balance int64
	Version bytestring.ByteString
}

// EncodeBalance - big endian two's complement
func EncodeBalance(balance int64) bytestring.ByteString {
	buffer := make([]byte, BalanceSize)
	binary.BigEndian.PutUint64(buffer, uint64(balance))
	return bytestring.New(buffer)
}

// DecodeBalance - reverse of EncodeBalance, empty decodes as zero
func DecodeBalance(value bytestring.ByteString) (int64, error) {
	if value.IsEmpty() {
		return 0, nil
	}
	if BalanceSize != value.Len() {
		return 0, fault.ErrBalanceLength
	}
	return int64(binary.BigEndian.Uint64(value.Bytes())), nil
}

// AccountStatusFromRecord - the account state held in a stored record
func AccountStatusFromRecord(key recordkey.RecordKey, r Record) (AccountStatus, error) {
	balance, err := DecodeBalance(r.ValueOrEmpty())
	if nil != err {
		return AccountStatus{}, err
	}
	return AccountStatus{
		Key:     key,
		Balance: balance,
		Version: r.Version,
	}, nil
}
