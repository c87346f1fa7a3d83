// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bytestring - immutable byte sequences
//
// a ByteString is a value type: it is comparable with == and can be
// used as a map key, the contents can never be modified once created
package bytestring

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
)

// ByteString - an immutable sequence of bytes
type ByteString struct {
	value string
}

// Empty - the zero length byte string
var Empty = ByteString{}

// New - create a byte string from a copy of the buffer
func New(buffer []byte) ByteString {
	return ByteString{value: string(buffer)}
}

// Parse - create a byte string from hex text
func Parse(text string) (ByteString, error) {
	if 0 != len(text)%2 {
		return Empty, fault.ErrOddLengthHex
	}
	b, err := hex.DecodeString(text)
	if nil != err {
		return Empty, fault.ErrInvalidHexCharacter
	}
	return New(b), nil
}

// Bytes - a copy of the content
func (b ByteString) Bytes() []byte {
	return []byte(b.value)
}

// Len - number of bytes
func (b ByteString) Len() int {
	return len(b.value)
}

// IsEmpty - true for zero length
func (b ByteString) IsEmpty() bool {
	return 0 == len(b.value)
}

// Equal - content equality
func (b ByteString) Equal(other ByteString) bool {
	return b.value == other.value
}

// Compare - lexical byte order -1, 0, +1
func (b ByteString) Compare(other ByteString) int {
	return strings.Compare(b.value, other.value)
}

// HasPrefix - true if the content starts with prefix
func (b ByteString) HasPrefix(prefix []byte) bool {
	return bytes.HasPrefix([]byte(b.value), prefix)
}

// Raw - the content as a Go string, only for use as a lookup key
func (b ByteString) Raw() string {
	return b.value
}

// String - lower case hex for the fmt package (for %s)
func (b ByteString) String() string {
	return hex.EncodeToString([]byte(b.value))
}

// GoString - for the fmt package (for %#v)
func (b ByteString) GoString() string {
	return "<bytes:" + b.String() + ">"
}

// MarshalText - convert to hex JSON form
func (b ByteString) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(b.value))
	buffer := make([]byte, size)
	hex.Encode(buffer, []byte(b.value))
	return buffer, nil
}

// UnmarshalText - convert from hex JSON form
func (b *ByteString) UnmarshalText(s []byte) error {
	p, err := Parse(string(s))
	if nil != err {
		return err
	}
	*b = p
	return nil
}
