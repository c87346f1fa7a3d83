// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/rpc/ledger"
	"github.com/bitmark-inc/ledgerd/storage"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, poster ledger.Poster, store storage.RecordStore, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledger.New(log, poster, store, start, version, rpcCount))

	return server
}
