// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - base58 text form of binary data
package address

import (
	"strings"

	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/ledgerd/fault"
)

// ChecksumLength - bytes of double SHA-256 appended by Encode
const ChecksumLength = 4

// the bitcoin alphabet
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Encode - base58 of data with a four byte checksum
func Encode(data []byte) string {
	checksum := doubleSHA256(data)
	buffer := make([]byte, 0, len(data)+ChecksumLength)
	buffer = append(buffer, data...)
	buffer = append(buffer, checksum[:ChecksumLength]...)
	return EncodePlain(buffer)
}

// Decode - reverse of Encode, verifying the checksum
func Decode(text string) ([]byte, error) {
	buffer, err := DecodePlain(text)
	if nil != err {
		return nil, err
	}
	if len(buffer) < ChecksumLength {
		return nil, fault.ErrTooShortForChecksum
	}

	n := len(buffer) - ChecksumLength
	data := buffer[:n]
	checksum := doubleSHA256(data)
	for i := 0; i < ChecksumLength; i += 1 {
		if checksum[i] != buffer[n+i] {
			return nil, fault.ErrChecksumMismatch
		}
	}
	return data, nil
}

// EncodePlain - base58 without checksum, one '1' per leading zero byte
func EncodePlain(data []byte) string {
	if 0 == len(data) {
		return ""
	}
	return base58.Encode(data)
}

// DecodePlain - reverse of EncodePlain
func DecodePlain(text string) ([]byte, error) {
	if "" == text {
		return []byte{}, nil
	}
	for _, c := range text {
		if !strings.ContainsRune(alphabet, c) {
			return nil, fault.ErrInvalidBase58Character
		}
	}
	data, err := base58.Decode(text)
	if nil != err {
		return nil, fault.ErrInvalidBase58Character
	}
	return data, nil
}

// P2PKH - pay to public key hash address: Encode(version ++ RIPEMD160(SHA256(publicKey)))
func P2PKH(version byte, publicKey []byte) string {
	s := sha256.Sum256(publicKey)
	r := ripemd160.New()
	r.Write(s[:])

	buffer := make([]byte, 0, 1+ripemd160.Size)
	buffer = append(buffer, version)
	buffer = r.Sum(buffer)
	return Encode(buffer)
}

func doubleSHA256(data []byte) [sha256.Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
