// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgerd/address"
	"github.com/bitmark-inc/ledgerd/fault"
)

// size of a secp256k1 private scalar
const secp256k1PrivateKeySize = 32

// base type for PrivateKey
type PrivateKey struct {
	PrivateKeyInterface
}

// PrivateKeyInterface - operations on a private key
type PrivateKeyInterface interface {
	Account() *Account
	KeyType() int
	PrivateKeyBytes() []byte
	Sign(message []byte) (Signature, error)
}

// for ed25519 keys
type ED25519PrivateKey struct {
	PrivateKey []byte
}

// for secp256k1 keys
type SECP256K1PrivateKey struct {
	PrivateKey []byte
	key        *btcec.PrivateKey
}

// NewPrivateKey - generate a new random key of the given algorithm
func NewPrivateKey(keyType int) (*PrivateKey, error) {
	return GeneratePrivateKey(keyType, rand.Reader)
}

// GeneratePrivateKey - create a key from a source of random bytes
func GeneratePrivateKey(keyType int, random io.Reader) (*PrivateKey, error) {
	switch keyType {
	case ED25519:
		_, priv, err := ed25519.GenerateKey(random)
		if nil != err {
			return nil, err
		}
		return &PrivateKey{
			PrivateKeyInterface: &ED25519PrivateKey{
				PrivateKey: priv,
			},
		}, nil

	case SECP256K1:
		b := make([]byte, secp256k1PrivateKeySize)
		if _, err := io.ReadFull(random, b); nil != err {
			return nil, err
		}
		return PrivateKeyFromBytes(SECP256K1, b)

	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// PrivateKeyFromBytes - raw private key of the given algorithm
func PrivateKeyFromBytes(keyType int, privateKey []byte) (*PrivateKey, error) {
	switch keyType {
	case ED25519:
		if ed25519.PrivateKeySize != len(privateKey) {
			return nil, fault.ErrInvalidKeyType
		}
		return &PrivateKey{
			PrivateKeyInterface: &ED25519PrivateKey{
				PrivateKey: append([]byte{}, privateKey...),
			},
		}, nil

	case SECP256K1:
		if secp256k1PrivateKeySize != len(privateKey) {
			return nil, fault.ErrInvalidKeyType
		}
		key, _ := btcec.PrivKeyFromBytes(privateKey)
		return &PrivateKey{
			PrivateKeyInterface: &SECP256K1PrivateKey{
				PrivateKey: key.Serialize(),
				key:        key,
			},
		}, nil

	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// PrivateKeyFromBase58 - decode the text produced by String
//
// the first byte of the decoded data is the key type
func PrivateKeyFromBase58(s string) (*PrivateKey, error) {
	b, err := address.Decode(s)
	if nil != err {
		return nil, err
	}
	if len(b) < 2 || int(b[0]) >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}
	return PrivateKeyFromBytes(int(b[0]), b[1:])
}

// String - base58 check encoding of key type and private key
func (privateKey *PrivateKey) String() string {
	buffer := append([]byte{byte(privateKey.KeyType())}, privateKey.PrivateKeyBytes()...)
	return address.Encode(buffer)
}

// MarshalText - base58 JSON form
func (privateKey *PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - base58 JSON form
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.PrivateKeyInterface = p.PrivateKeyInterface
	return nil
}

// ED25519
// -------

// return the public key as an account
func (privateKey *ED25519PrivateKey) Account() *Account {
	return &Account{
		AccountInterface: &ED25519Account{
			PublicKey: privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:],
		},
	}
}

// key type code (see enumeration above)
func (privateKey *ED25519PrivateKey) KeyType() int {
	return ED25519
}

// fetch the private key as byte slice
func (privateKey *ED25519PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// sign a message
func (privateKey *ED25519PrivateKey) Sign(message []byte) (Signature, error) {
	return ed25519.Sign(privateKey.PrivateKey, message), nil
}

// SECP256K1
// ---------

// return the compressed public key as an account
func (privateKey *SECP256K1PrivateKey) Account() *Account {
	pub := privateKey.key.PubKey()
	return &Account{
		AccountInterface: &SECP256K1Account{
			PublicKey: pub.SerializeCompressed(),
			key:       pub,
		},
	}
}

// key type code (see enumeration above)
func (privateKey *SECP256K1PrivateKey) KeyType() int {
	return SECP256K1
}

// fetch the private key as byte slice
func (privateKey *SECP256K1PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// DER signature of a 32 byte message digest
func (privateKey *SECP256K1PrivateKey) Sign(message []byte) (Signature, error) {
	if 32 != len(message) {
		return nil, fault.ErrInvalidCount
	}
	return ecdsa.Sign(privateKey.key, message).Serialize(), nil
}
