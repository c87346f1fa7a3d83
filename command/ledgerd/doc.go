// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Transaction validation and commit daemon
//
// This program accepts signed mutations over JSON RPC, checks them
// against the configured permission rules and commits them to a
// LevelDB record store.
//
// Setup:
//
//   ledgerd --config-file=ledgerd.conf gen-rpc-cert
//   ledgerd --config-file=ledgerd.conf gen-admin-key
//   ledgerd --config-file=ledgerd.conf config-test
//   ledgerd --config-file=ledgerd.conf start
//
// Example configuration:
//
//   local M = {}
//
//   M.data_directory = "."
//   M.pidfile = "ledgerd.pid"
//   M.namespace = "0123456789abcdef"
//
//   M.client_rpc = {
//       maximum_connections = 50,
//       listen = { "127.0.0.1:2130" },
//       certificate = "rpc.crt",
//       private_key = "rpc.key",
//   }
//
//   M.https_rpc = {
//       maximum_connections = 10,
//       listen = { "127.0.0.1:2131" },
//       allow = { details = { "127.0.0.0/8", "::1/128" } },
//   }
//
//   M.p2pkh = { enabled = true, version = 0, allow_issuance = false }
//
//   M.permissions = {
//       watch = true,
//       dynamic = true,
//       rules = {
//           {
//               path = "/",
//               recursive = true,
//               subjects = { { addresses = { "<gen-admin-key address>" }, required = 1 } },
//               permissions = {
//                   account_negative = "permit",
//                   account_spend = "permit",
//                   account_modify = "permit",
//                   account_create = "permit",
//                   data_modify = "permit",
//               },
//           },
//       },
//   }
//
//   M.logging = {
//       size = 1048576,
//       count = 10,
//       console = false,
//       levels = { DEFAULT = "info", ledger = "info" },
//   }
//
//   return M
package main
