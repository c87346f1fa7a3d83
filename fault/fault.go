// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type FormatError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// RejectedError - a transaction was refused, the string is the reason code
type RejectedError GenericError

// transaction rejection reasons
const (
	ErrAccountModificationUnauthorized = RejectedError("AccountModificationUnauthorized")
	ErrDataModificationUnauthorized    = RejectedError("DataModificationUnauthorized")
	ErrInvalidMutation                 = RejectedError("InvalidMutation")
	ErrInvalidNamespace                = RejectedError("InvalidNamespace")
	ErrInvalidSignature                = RejectedError("InvalidSignature")
	ErrNegativeBalance                 = RejectedError("NegativeBalance")
	ErrOptimisticConcurrency           = RejectedError("OptimisticConcurrency")
	ErrUnbalancedTransaction           = RejectedError("UnbalancedTransaction")
)

// common errors - keep in alphabetic order
const (
	ErrBalanceLength          = InvalidError("balance must be exactly 8 bytes")
	ErrCertificateFileExists  = ExistsError("certificate file already exists")
	ErrChecksumMismatch       = FormatError("checksum mismatch")
	ErrCorruptRecord          = ProcessError("stored record is corrupt")
	ErrDatabaseIsNotSet       = ProcessError("database is not set")
	ErrDuplicateRecordKey     = InvalidError("duplicate record key")
	ErrEmptyRecordList        = InvalidError("mutation has no records")
	ErrInvalidBase58Character = FormatError("invalid base58 character")
	ErrInvalidConfiguration   = InvalidError("invalid configuration")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidHexCharacter    = FormatError("invalid hex character")
	ErrInvalidKeyType         = InvalidError("invalid key type")
	ErrInvalidListenAddress   = InvalidError("invalid listen address")
	ErrInvalidPath            = FormatError("path must start and end with a separator")
	ErrInvalidPathSegment     = FormatError("invalid path segment")
	ErrInvalidPublicKey       = InvalidError("invalid public key")
	ErrInvalidRecordKey       = FormatError("invalid record key")
	ErrInvalidRecordType      = FormatError("invalid record type")
	ErrInvalidSubject         = InvalidError("invalid permission subject")
	ErrInvalidValueFlag       = InvalidError("invalid record value flag")
	ErrKeyFileExists          = ExistsError("key file already exists")
	ErrKeyTooLong             = LengthError("record key too long")
	ErrMissingParameters      = InvalidError("missing parameters")
	ErrNonCanonicalEncoding   = InvalidError("non-canonical encoding")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrOddLengthHex           = FormatError("odd length hex")
	ErrRateLimiting           = ProcessError("rate limiting")
	ErrTooShortForChecksum    = FormatError("data too short for checksum")
	ErrTrailingBytes          = InvalidError("trailing bytes after record")
	ErrTransactionExists      = ExistsError("transaction already exists")
	ErrTransactionNotFound    = NotFoundError("transaction not found")
	ErrTruncated              = InvalidError("truncated data")
	ErrUnknownAccessValue     = InvalidError("unknown access value")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e FormatError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RejectedError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrFormat(e error) bool   { var t FormatError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRejected(e error) bool { var t RejectedError; return errors.As(e, &t) }

// Reason - the rejection code carried by an error, "" if not a rejection
func Reason(e error) string {
	var r RejectedError
	if errors.As(e, &r) {
		return string(r)
	}
	return ""
}
