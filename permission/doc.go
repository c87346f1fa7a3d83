// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package permission - who may change which records
//
// permissions are resolved by walking a path from the root down,
// asking every provider at each level; the answer of a deeper level
// overrides its ancestors and anything never set is denied
package permission
