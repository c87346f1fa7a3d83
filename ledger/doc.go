// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - accept, validate and commit transactions
//
// a submitted mutation passes through the stages:
//
//   Received -> Decoded -> NamespaceChecked -> StateLoaded ->
//   BusinessValidated -> Committed
//
// any stage may end in a rejection, reported as a fault.RejectedError
// whose text is the reason code; nothing is retried
package ledger
