// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"context"

	"github.com/bitmark-inc/ledgerd/ledgerpath"
)

// Provider - a source of permissions
//
// identities are the P2PKH addresses of the verified signers;
// recursiveOnly is set when path is a strict ancestor of the record
// being checked, so only rules that apply to descendants may answer
type Provider interface {
	GetPermissions(ctx context.Context, identities []string, path ledgerpath.Path, recursiveOnly bool, recordName string) (PermissionSet, error)
}

// Resolve - the effective permissions of identities on a record
func Resolve(ctx context.Context, providers []Provider, identities []string, path ledgerpath.Path, recordName string) (PermissionSet, error) {
	result := UnsetAll
	for _, ancestor := range path.Ancestors() {
		recursiveOnly := !ancestor.Equal(path)
		for _, provider := range providers {
			p, err := provider.GetPermissions(ctx, identities, ancestor, recursiveOnly, recordName)
			if nil != err {
				return DenyAll, err
			}
			result = result.Add(p)
		}
	}
	return result.Final(), nil
}
