// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validation

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/mutation"
	"github.com/bitmark-inc/ledgerd/permission"
)

// PermissionBasedValidator - authorise changes from the signer identities
type PermissionBasedValidator struct {
	log       *logger.L
	namespace bytestring.ByteString
	providers []permission.Provider
}

// NewPermissionBasedValidator - create a validator over a set of providers
func NewPermissionBasedValidator(namespace bytestring.ByteString, providers []permission.Provider, log *logger.L) *PermissionBasedValidator {
	return &PermissionBasedValidator{
		log:       log,
		namespace: namespace,
		providers: providers,
	}
}

// Validate - implement MutationValidator
func (v *PermissionBasedValidator) Validate(ctx context.Context, parsed *mutation.ParsedMutation, authentication []mutation.SignatureEvidence, accounts map[string]mutation.AccountStatus) ([]mutation.Mutation, error) {
	if err := CheckNamespace(v.namespace, parsed.Namespace); nil != err {
		return nil, err
	}
	if err := CheckBalance(parsed, accounts); nil != err {
		return nil, err
	}

	signers, err := VerifySignatures(parsed.Hash, authentication)
	if nil != err {
		return nil, err
	}
	identities := Identities(signers)
	v.log.Debugf("identities: %v", identities)

	for _, a := range parsed.AccountMutations {
		if err := v.checkAccount(ctx, identities, a, accounts[a.Key.String()]); nil != err {
			v.log.Infof("account: %s  rejected: %s", a.Key, err)
			return nil, err
		}
	}

	for _, d := range parsed.DataRecords {
		p, err := permission.Resolve(ctx, v.providers, identities, d.Key.Path(), d.Key.Name())
		if nil != err {
			return nil, err
		}
		if permission.Permit != p.DataModify {
			v.log.Infof("data: %s  rejected", d.Key)
			return nil, fault.ErrDataModificationUnauthorized
		}
	}

	return nil, nil
}

func (v *PermissionBasedValidator) checkAccount(ctx context.Context, identities []string, a mutation.AccountStatus, previous mutation.AccountStatus) error {
	p, err := permission.Resolve(ctx, v.providers, identities, a.Key.Path(), a.Key.Name())
	if nil != err {
		return err
	}

	if permission.Permit != p.AccountModify {
		return fault.ErrAccountModificationUnauthorized
	}

	if a.Balance < previous.Balance {
		if permission.Permit != p.AccountSpend {
			return fault.ErrAccountModificationUnauthorized
		}
		if a.Balance < 0 && permission.Permit != p.AccountNegative {
			return fault.ErrNegativeBalance
		}
	}

	if previous.Version.IsEmpty() && permission.Permit != p.AccountCreate {
		return fault.ErrAccountModificationUnauthorized
	}
	return nil
}
