// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/bytestring"
)

func TestOutput(t *testing.T) {
	buffer := &bytes.Buffer{}
	m := &metadata{w: buffer}

	err := m.output(postReply{TransactionId: bytestring.New([]byte{0xab, 0x01})})
	require.NoError(t, err, "output")
	assert.Equal(t, "{\n  \"transaction_id\": \"ab01\"\n}\n", buffer.String(), "hex transaction id")

	buffer.Reset()
	err = m.output(map[string]string{"path": "/a/<b>/"})
	require.NoError(t, err, "output")
	assert.Equal(t, "{\n  \"path\": \"/a/<b>/\"\n}\n", buffer.String(), "path not escaped")
}
