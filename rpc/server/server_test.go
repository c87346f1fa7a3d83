// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/permission"
	rpcLedger "github.com/bitmark-inc/ledgerd/rpc/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/server"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/validation"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a JSON RPC client connected through an in-memory pipe
func newClient(t *testing.T, s *rpc.Server) *rpc.Client {
	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))
	return jsonrpc.NewClient(clientConn)
}

func TestIssueAndTransfer(t *testing.T) {
	log := logger.New(fixtures.LogCategory)

	store, err := storage.OpenMemory(log)
	require.NoError(t, err)
	defer store.Close()

	providers := []permission.Provider{
		permission.NewP2PKHLayout(account.P2PKHVersion, true),
	}
	validator := validation.NewPermissionBasedValidator(fixtures.Namespace, providers, log)
	l := ledger.New(store, validator, fixtures.Namespace, log)

	count := counter.Counter(0)
	client := newClient(t, server.Create(log, l, store, "1.0", &count))
	defer client.Close()

	issuer := fixtures.PrivateKey(1)
	holder := fixtures.PrivateKey(2)
	issuerAddress := issuer.Account().Address()
	holderAddress := holder.Account().Address()

	asset := "/asset/p2pkh/" + issuerAddress + "/"
	issuance := asset
	wallet := "/p2pkh/" + holderAddress + "/"

	// issue 100 units to the holder
	raw := fixtures.Transfer(fixtures.Namespace, asset, issuance, -100, bytestring.Empty, wallet, 100, bytestring.Empty)
	var postReply rpcLedger.PostReply
	err = client.Call("Ledger.Post", &rpcLedger.PostArguments{
		Mutation:   bytestring.New(raw),
		Signatures: []mutation.SignatureEvidence{fixtures.Sign(issuer, raw)},
	}, &postReply)
	require.NoError(t, err, "issue")
	assert.Equal(t, mutation.IdentifierSize, postReply.TransactionId.Len(), "transaction id")

	var lastReply rpcLedger.LastReply
	require.NoError(t, client.Call("Ledger.Last", &rpcLedger.LastArguments{}, &lastReply))
	assert.Equal(t, postReply.TransactionId, lastReply.TransactionId, "last transaction")

	holderKey := fixtures.AccountKey(wallet, asset)
	var recordsReply rpcLedger.RecordsReply
	require.NoError(t, client.Call("Ledger.Records", &rpcLedger.RecordsArguments{Keys: []bytestring.ByteString{holderKey}}, &recordsReply))
	require.Len(t, recordsReply.Records, 1)
	assert.Equal(t, mutation.EncodeBalance(100), recordsReply.Records[0].ValueOrEmpty(), "holder balance")
	assert.Equal(t, postReply.TransactionId, recordsReply.Records[0].Version, "holder version")

	// the holder cannot overdraw
	issuerWallet := "/p2pkh/" + issuerAddress + "/"
	overdraw := fixtures.Transfer(fixtures.Namespace, asset, wallet, -1, postReply.TransactionId, issuerWallet, 101, bytestring.Empty)
	err = client.Call("Ledger.Post", &rpcLedger.PostArguments{
		Mutation:   bytestring.New(overdraw),
		Signatures: []mutation.SignatureEvidence{fixtures.Sign(holder, overdraw)},
	}, &postReply)
	require.Error(t, err, "overdraw")
	assert.Equal(t, "NegativeBalance", err.Error(), "rejection reason")

	// a stale version is a concurrency failure
	stale := fixtures.Transfer(fixtures.Namespace, asset, wallet, 40, bytestring.Empty, issuerWallet, 60, bytestring.Empty)
	err = client.Call("Ledger.Post", &rpcLedger.PostArguments{
		Mutation:   bytestring.New(stale),
		Signatures: []mutation.SignatureEvidence{fixtures.Sign(holder, stale)},
	}, &postReply)
	require.Error(t, err, "stale version")
	assert.Equal(t, "OptimisticConcurrency", err.Error(), "rejection reason")

	var transactionsReply rpcLedger.TransactionsReply
	require.NoError(t, client.Call("Ledger.Transactions", &rpcLedger.TransactionsArguments{}, &transactionsReply))
	assert.Len(t, transactionsReply.Transactions, 1, "one committed transaction")

	var infoReply rpcLedger.InfoReply
	require.NoError(t, client.Call("Ledger.Info", &rpcLedger.InfoArguments{}, &infoReply))
	assert.Equal(t, fixtures.Namespace, infoReply.Namespace, "namespace")
	assert.Equal(t, postReply.TransactionId, infoReply.LastTransaction, "info last transaction")
}
