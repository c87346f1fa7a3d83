// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledgerpath"
	"github.com/bitmark-inc/ledgerd/mutation"
)

// command line errors - keep in alphabetic order
var (
	ErrInvalidAmount         = fault.InvalidError("amount must be positive")
	ErrInvalidSignatureText  = fault.FormatError("signature must be PUBLIC:SIGNATURE in hex")
	ErrRequiredAsset         = fault.InvalidError("asset is required")
	ErrRequiredData          = fault.InvalidError("data is required")
	ErrRequiredMutation      = fault.InvalidError("mutation is required")
	ErrRequiredOneRecordType = fault.InvalidError("exactly one of asset or data is required")
	ErrRequiredPath          = fault.InvalidError("path is required")
	ErrRequiredPrivateKey    = fault.InvalidError("private key is required")
	ErrRequiredPublicKey     = fault.InvalidError("public key is required")
	ErrRequiredTransferFrom  = fault.InvalidError("transfer from is required")
	ErrRequiredTransferTo    = fault.InvalidError("transfer to is required")
	ErrSameAccount           = fault.InvalidError("from and to must differ")
)

// key algorithm name
func checkKeyType(name string) (int, error) {
	switch strings.ToLower(name) {
	case "", "secp256k1":
		return account.SECP256K1, nil
	case "ed25519":
		return account.ED25519, nil
	default:
		return 0, fault.ErrInvalidKeyType
	}
}

// non-blank hex
func checkHex(text string, blank error) (bytestring.ByteString, error) {
	if "" == text {
		return bytestring.Empty, blank
	}
	return bytestring.Parse(text)
}

// non-blank valid path
func checkPath(text string, blank error) (ledgerpath.Path, error) {
	if "" == text {
		return ledgerpath.Path{}, blank
	}
	return ledgerpath.Parse(text)
}

// at least one private key
func checkPrivateKeys(texts []string) ([]*account.PrivateKey, error) {
	if 0 == len(texts) {
		return nil, ErrRequiredPrivateKey
	}
	keys := make([]*account.PrivateKey, 0, len(texts))
	for _, text := range texts {
		k, err := account.PrivateKeyFromBase58(strings.TrimSpace(text))
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// signature evidence as PUBLIC:SIGNATURE
func checkSignatures(texts []string) ([]mutation.SignatureEvidence, error) {
	evidence := make([]mutation.SignatureEvidence, 0, len(texts))
	for _, text := range texts {
		parts := strings.Split(text, ":")
		if 2 != len(parts) {
			return nil, ErrInvalidSignatureText
		}
		publicKey, err := bytestring.Parse(parts[0])
		if nil != err {
			return nil, err
		}
		signature, err := bytestring.Parse(parts[1])
		if nil != err {
			return nil, err
		}
		evidence = append(evidence, mutation.SignatureEvidence{
			PublicKey: publicKey,
			Signature: signature,
		})
	}
	return evidence, nil
}
