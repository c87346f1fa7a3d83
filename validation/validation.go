// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validation - business rules applied to parsed mutations
package validation

import (
	"context"
	"math/big"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/mutation"
)

// MutationValidator - pluggable rules run before a mutation is committed
//
// a rejection is returned as a fault.RejectedError whose text is the
// reason; any mutations returned are committed after the original
type MutationValidator interface {
	Validate(ctx context.Context, parsed *mutation.ParsedMutation, authentication []mutation.SignatureEvidence, accounts map[string]mutation.AccountStatus) ([]mutation.Mutation, error)
}

// CheckNamespace - the mutation must target this ledger
func CheckNamespace(expected bytestring.ByteString, actual bytestring.ByteString) error {
	if !expected.Equal(actual) {
		return fault.ErrInvalidNamespace
	}
	return nil
}

// CheckBalance - for every asset the changes must sum to zero
//
// accounts holds the current state, a missing account has balance zero
func CheckBalance(parsed *mutation.ParsedMutation, accounts map[string]mutation.AccountStatus) error {
	totals := make(map[string]*big.Int)
	for _, a := range parsed.AccountMutations {
		asset := a.Key.Name()
		total, ok := totals[asset]
		if !ok {
			total = new(big.Int)
			totals[asset] = total
		}

		previous := int64(0)
		if status, ok := accounts[a.Key.String()]; ok {
			previous = status.Balance
		}
		total.Add(total, big.NewInt(a.Balance))
		total.Sub(total, big.NewInt(previous))
	}

	for _, total := range totals {
		if 0 != total.Sign() {
			return fault.ErrUnbalancedTransaction
		}
	}
	return nil
}

// VerifySignatures - every signature must be valid for the digest
//
// returns the signing accounts in the order given
func VerifySignatures(digest bytestring.ByteString, authentication []mutation.SignatureEvidence) ([]*account.Account, error) {
	signers := make([]*account.Account, 0, len(authentication))
	for _, evidence := range authentication {
		a, err := account.AccountFromBytes(evidence.PublicKey.Bytes())
		if nil != err {
			return nil, fault.ErrInvalidSignature
		}
		if err := a.CheckSignature(digest.Bytes(), evidence.Signature.Bytes()); nil != err {
			return nil, fault.ErrInvalidSignature
		}
		signers = append(signers, a)
	}
	return signers, nil
}

// Identities - the P2PKH addresses of a set of signers
func Identities(signers []*account.Account) []string {
	identities := make([]string, len(signers))
	for i, a := range signers {
		identities[i] = a.Address()
	}
	return identities
}
