// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgerd/address"
	"github.com/bitmark-inc/ledgerd/fault"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	ED25519   = iota
	SECP256K1 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// secp256k1 public key sizes
const (
	compressedKeySize   = 33
	uncompressedKeySize = 65
)

// P2PKHVersion - version byte of pay to public key hash addresses
const P2PKHVersion = 0x00

// base type for accounts
type Account struct {
	AccountInterface
}

// AccountInterface - operations on a public key
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	String() string
	MarshalText() ([]byte, error)
}

// for ed25519 signatures
type ED25519Account struct {
	PublicKey []byte
}

// for secp256k1 ECDSA signatures in DER form
type SECP256K1Account struct {
	PublicKey []byte
	key       *btcec.PublicKey
}

// AccountFromBytes - determine the key algorithm from the raw public key
//
// 32 bytes is ed25519, 33 bytes (0x02/0x03) or 65 bytes (0x04) is secp256k1
func AccountFromBytes(publicKey []byte) (*Account, error) {
	switch len(publicKey) {
	case ed25519.PublicKeySize:
		account := &Account{
			AccountInterface: &ED25519Account{
				PublicKey: append([]byte{}, publicKey...),
			},
		}
		return account, nil

	case compressedKeySize, uncompressedKeySize:
		key, err := btcec.ParsePubKey(publicKey)
		if nil != err {
			return nil, fault.ErrInvalidPublicKey
		}
		account := &Account{
			AccountInterface: &SECP256K1Account{
				PublicKey: append([]byte{}, publicKey...),
				key:       key,
			},
		}
		return account, nil

	default:
		return nil, fault.ErrInvalidPublicKey
	}
}

// AccountFromHex - public key in hex
func AccountFromHex(s string) (*Account, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHexCharacter
	}
	return AccountFromBytes(b)
}

// Address - the P2PKH address of the public key
func (account *Account) Address() string {
	return address.P2PKH(P2PKHVersion, account.PublicKeyBytes())
}

// UnmarshalText - hex public key from JSON
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromHex(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// ED25519
// -------

// key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// hex encoding of the public key
func (account *ED25519Account) String() string {
	return hex.EncodeToString(account.PublicKey)
}

// convert an account to its hex JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// SECP256K1
// ---------

// key type code (see enumeration above)
func (account *SECP256K1Account) KeyType() int {
	return SECP256K1
}

// fetch the public key as byte slice
func (account *SECP256K1Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// check a DER signature of a 32 byte message digest
func (account *SECP256K1Account) CheckSignature(message []byte, signature Signature) error {
	sig, err := ecdsa.ParseDERSignature(signature)
	if nil != err {
		return fault.ErrInvalidSignature
	}
	if !sig.Verify(message, account.key) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// hex encoding of the public key
func (account *SECP256K1Account) String() string {
	return hex.EncodeToString(account.PublicKey)
}

// convert an account to its hex JSON form
func (account SECP256K1Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}
