// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mutation

import (
	"bytes"
	"time"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/recordkey"
	"github.com/bitmark-inc/ledgerd/util"
)

// record value flags
const (
	flagNoValue = 0x00
	flagValue   = 0x01
)

// minimum encoded sizes used to bound counts
const (
	minimumRecordSize    = 3
	minimumSignatureSize = 2
)

// PackMutation - canonical binary form of a mutation
func PackMutation(m *Mutation) []byte {
	buffer := make([]byte, 0, 256)
	buffer = appendBytes(buffer, m.Namespace)
	buffer = util.AppendVarint64(buffer, uint64(len(m.Records)))
	for _, r := range m.Records {
		buffer = appendRecord(buffer, r)
	}
	buffer = appendBytes(buffer, m.Metadata)
	return buffer
}

// UnpackMutation - decode and validate a mutation
func UnpackMutation(buffer []byte) (*Mutation, error) {
	d := &decoder{buffer: buffer}

	namespace, err := d.bytes()
	if nil != err {
		return nil, err
	}

	count, err := d.count(minimumRecordSize)
	if nil != err {
		return nil, err
	}
	if 0 == count {
		return nil, fault.ErrEmptyRecordList
	}

	records := make([]Record, 0, count)
	seen := make(map[bytestring.ByteString]struct{}, count)
	for i := 0; i < count; i += 1 {
		r, err := d.record()
		if nil != err {
			return nil, err
		}
		if r.Key.Len() > recordkey.MaxKeySize {
			return nil, fault.ErrKeyTooLong
		}
		if _, ok := seen[r.Key]; ok {
			return nil, fault.ErrDuplicateRecordKey
		}
		seen[r.Key] = struct{}{}
		records = append(records, r)
	}

	metadata, err := d.bytes()
	if nil != err {
		return nil, err
	}
	if err := d.finish(); nil != err {
		return nil, err
	}

	m := &Mutation{
		Namespace: namespace,
		Records:   records,
		Metadata:  metadata,
	}
	if !bytes.Equal(PackMutation(m), buffer) {
		return nil, fault.ErrNonCanonicalEncoding
	}
	return m, nil
}

// PackTransaction - canonical binary form of a transaction envelope
func PackTransaction(tx *Transaction) []byte {
	buffer := make([]byte, 0, tx.Mutation.Len()+tx.Metadata.Len()+2*util.Varint64MaximumBytes+util.Varint64MaximumBytes)
	buffer = appendBytes(buffer, tx.Mutation)
	buffer = util.AppendVarint64(buffer, uint64(toMilliseconds(tx.Timestamp)))
	buffer = appendBytes(buffer, tx.Metadata)
	return buffer
}

// UnpackTransaction - decode a transaction envelope
func UnpackTransaction(buffer []byte) (*Transaction, error) {
	d := &decoder{buffer: buffer}

	m, err := d.bytes()
	if nil != err {
		return nil, err
	}
	ms, err := d.varint()
	if nil != err {
		return nil, err
	}
	metadata, err := d.bytes()
	if nil != err {
		return nil, err
	}
	if err := d.finish(); nil != err {
		return nil, err
	}

	tx := &Transaction{
		Mutation:  m,
		Timestamp: fromMilliseconds(int64(ms)),
		Metadata:  metadata,
	}
	if !bytes.Equal(PackTransaction(tx), buffer) {
		return nil, fault.ErrNonCanonicalEncoding
	}
	return tx, nil
}

// PackMetadata - canonical binary form of the signature list
func PackMetadata(metadata *TransactionMetadata) []byte {
	buffer := make([]byte, 0, 128)
	buffer = util.AppendVarint64(buffer, uint64(len(metadata.Signatures)))
	for _, s := range metadata.Signatures {
		buffer = appendBytes(buffer, s.PublicKey)
		buffer = appendBytes(buffer, s.Signature)
	}
	return buffer
}

// UnpackMetadata - decode the signature list
func UnpackMetadata(buffer []byte) (*TransactionMetadata, error) {
	d := &decoder{buffer: buffer}

	count, err := d.count(minimumSignatureSize)
	if nil != err {
		return nil, err
	}
	signatures := make([]SignatureEvidence, 0, count)
	for i := 0; i < count; i += 1 {
		pk, err := d.bytes()
		if nil != err {
			return nil, err
		}
		sig, err := d.bytes()
		if nil != err {
			return nil, err
		}
		signatures = append(signatures, SignatureEvidence{
			PublicKey: pk,
			Signature: sig,
		})
	}
	if err := d.finish(); nil != err {
		return nil, err
	}

	metadata := &TransactionMetadata{
		Signatures: signatures,
	}
	if !bytes.Equal(PackMetadata(metadata), buffer) {
		return nil, fault.ErrNonCanonicalEncoding
	}
	return metadata, nil
}

func appendBytes(buffer []byte, b bytestring.ByteString) []byte {
	buffer = util.AppendVarint64(buffer, uint64(b.Len()))
	return append(buffer, b.Raw()...)
}

func appendRecord(buffer []byte, r Record) []byte {
	buffer = appendBytes(buffer, r.Key)
	if r.HasValue() {
		buffer = append(buffer, flagValue)
		buffer = appendBytes(buffer, *r.Value)
	} else {
		buffer = append(buffer, flagNoValue)
	}
	return appendBytes(buffer, r.Version)
}

func toMilliseconds(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano() / int64(time.Millisecond)
}

func fromMilliseconds(ms int64) time.Time {
	if 0 == ms {
		return time.Time{}
	}
	return time.Unix(0, ms*int64(time.Millisecond)).UTC()
}

// sequential reader over a packed buffer
type decoder struct {
	buffer []byte
	offset int
}

func (d *decoder) remaining() int {
	return len(d.buffer) - d.offset
}

func (d *decoder) varint() (uint64, error) {
	value, n := util.FromVarint64(d.buffer[d.offset:])
	if 0 == n {
		return 0, fault.ErrTruncated
	}
	d.offset += n
	return value, nil
}

// a count of items each at least itemSize bytes long
func (d *decoder) count(itemSize int) (int, error) {
	n, err := d.varint()
	if nil != err {
		return 0, err
	}
	if n > uint64(d.remaining()/itemSize) {
		return 0, fault.ErrInvalidCount
	}
	return int(n), nil
}

func (d *decoder) bytes() (bytestring.ByteString, error) {
	n, err := d.varint()
	if nil != err {
		return bytestring.Empty, err
	}
	if n > uint64(d.remaining()) {
		return bytestring.Empty, fault.ErrTruncated
	}
	start := d.offset
	d.offset += int(n)
	return bytestring.New(d.buffer[start:d.offset]), nil
}

func (d *decoder) record() (Record, error) {
	key, err := d.bytes()
	if nil != err {
		return Record{}, err
	}

	if d.remaining() < 1 {
		return Record{}, fault.ErrTruncated
	}
	flag := d.buffer[d.offset]
	d.offset += 1

	r := Record{
		Key: key,
	}
	switch flag {
	case flagNoValue:
	case flagValue:
		value, err := d.bytes()
		if nil != err {
			return Record{}, err
		}
		r.Value = &value
	default:
		return Record{}, fault.ErrInvalidValueFlag
	}

	r.Version, err = d.bytes()
	if nil != err {
		return Record{}, err
	}
	return r, nil
}

func (d *decoder) finish() error {
	if 0 != d.remaining() {
		return fault.ErrTrailingBytes
	}
	return nil
}
