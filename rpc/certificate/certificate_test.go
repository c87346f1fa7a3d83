// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/rpc/certificate"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestGet(t *testing.T) {
	cer, key := fixtures.Certificate()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	require.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))
	expected := sha3.Sum256(pair.Certificate[0])

	assert.Equal(t, certificate.Fingerprint(expected), fingerprint, "wrong fingerprint")
	assert.Equal(t, hex.EncodeToString(expected[:]), fingerprint.String(), "wrong fingerprint text")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetMismatch(t *testing.T) {
	cer, _ := fixtures.Certificate()
	_, other := fixtures.Certificate()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, other)
	assert.Error(t, err, "key does not match certificate")
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "certificate")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	cer, key := fixtures.Certificate()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	require.Nil(t, ioutil.WriteFile(certificateFile, []byte(cer), 0600), "write certificate")
	require.Nil(t, ioutil.WriteFile(keyFile, []byte(key), 0600), "write key")

	log := logger.New(fixtures.LogCategory)

	_, expected, err := certificate.Get(log, "test", cer, key)
	require.Nil(t, err, "wrong Get")

	tlsConfig, fingerprint, err := certificate.Load(log, "test", certificateFile, keyFile)
	require.Nil(t, err, "wrong Load")
	assert.Equal(t, expected, fingerprint, "wrong fingerprint")
	assert.Equal(t, 1, len(tlsConfig.Certificates), "wrong certificate count")

	_, _, err = certificate.Load(log, "test", filepath.Join(dir, "missing.crt"), keyFile)
	assert.Error(t, err, "missing certificate")
}
