// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"context"

	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/ledgerd/address"
	"github.com/bitmark-inc/ledgerd/ledgerpath"
)

// path segments of the P2PKH layout
const (
	P2PKHSegment = "p2pkh"
	AssetSegment = "asset"
)

// P2PKHLayout - accounts owned by the key hashing to their address
//
//   /p2pkh/<address>/          owned by address, anyone may deposit
//   /asset/p2pkh/<address>/    assets issued by address (if enabled)
type P2PKHLayout struct {
	version       byte
	allowIssuance bool
}

// NewP2PKHLayout - create the layout for addresses with version byte
func NewP2PKHLayout(version byte, allowIssuance bool) *P2PKHLayout {
	return &P2PKHLayout{
		version:       version,
		allowIssuance: allowIssuance,
	}
}

// GetPermissions - implement Provider
func (p *P2PKHLayout) GetPermissions(ctx context.Context, identities []string, path ledgerpath.Path, recursiveOnly bool, recordName string) (PermissionSet, error) {
	segments := path.Segments()

	if 2 == len(segments) && P2PKHSegment == segments[0] && p.isAddress(segments[1]) {
		if contains(identities, segments[1]) {
			return PermissionSet{
				AccountSpend:  Permit,
				AccountModify: Permit,
				AccountCreate: Permit,
				DataModify:    Permit,
			}, nil
		}
		if !recursiveOnly {
			return PermissionSet{
				AccountModify: Permit,
				AccountCreate: Permit,
			}, nil
		}
	}

	if p.allowIssuance && 3 == len(segments) && AssetSegment == segments[0] && P2PKHSegment == segments[1] && p.isAddress(segments[2]) {
		if contains(identities, segments[2]) {
			return PermissionSet{
				AccountNegative: Permit,
				AccountSpend:    Permit,
				AccountModify:   Permit,
				AccountCreate:   Permit,
			}, nil
		}
	}

	return UnsetAll, nil
}

func (p *P2PKHLayout) isAddress(s string) bool {
	b, err := address.Decode(s)
	if nil != err {
		return false
	}
	return 1+ripemd160.Size == len(b) && p.version == b[0]
}
