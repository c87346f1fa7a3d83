// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/ledgerpath"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/recordkey"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// namespaces used by tests
var (
	Namespace      = bytestring.New([]byte{0xab, 0xcd, 0xef})
	OtherNamespace = bytestring.New([]byte{0xab, 0xcd, 0xef, 0x00})
)

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Path - parse a path that is known to be valid
func Path(s string) ledgerpath.Path {
	p, err := ledgerpath.Parse(s)
	if nil != err {
		panic(fmt.Sprintf("path: %q  error: %s", s, err))
	}
	return p
}

// AccountKey - binary key of an account record
func AccountKey(accountPath string, assetPath string) bytestring.ByteString {
	return recordkey.NewAccountKey(Path(accountPath), Path(assetPath)).ToBinary()
}

// DataKey - binary key of a data record
func DataKey(path string, name string) bytestring.ByteString {
	k, err := recordkey.New(recordkey.Data, Path(path), name)
	if nil != err {
		panic(fmt.Sprintf("data key: %s %q  error: %s", path, name, err))
	}
	return k.ToBinary()
}

// PrivateKey - deterministic secp256k1 test key n (n > 0)
func PrivateKey(n byte) *account.PrivateKey {
	b := make([]byte, 32)
	b[31] = n
	k, err := account.PrivateKeyFromBytes(account.SECP256K1, b)
	if nil != err {
		panic(err)
	}
	return k
}

// Sign - signature evidence of a packed mutation
func Sign(key *account.PrivateKey, packedMutation []byte) mutation.SignatureEvidence {
	digest := mutation.Hash(packedMutation)
	sig, err := key.Sign(digest.Bytes())
	if nil != err {
		panic(err)
	}
	return mutation.SignatureEvidence{
		PublicKey: bytestring.New(key.Account().PublicKeyBytes()),
		Signature: bytestring.New(sig),
	}
}

// Transfer - packed mutation moving amount of asset between two accounts
//
// the balances are the resulting balances, versions are the current versions
func Transfer(namespace bytestring.ByteString, asset string, from string, fromBalance int64, fromVersion bytestring.ByteString, to string, toBalance int64, toVersion bytestring.ByteString) []byte {
	m := &mutation.Mutation{
		Namespace: namespace,
		Records: []mutation.Record{
			mutation.NewRecord(AccountKey(from, asset), mutation.EncodeBalance(fromBalance), fromVersion),
			mutation.NewRecord(AccountKey(to, asset), mutation.EncodeBalance(toBalance), toVersion),
		},
		Metadata: bytestring.Empty,
	}
	return mutation.PackMutation(m)
}
