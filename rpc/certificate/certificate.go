// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"encoding/hex"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Fingerprint - SHA3-256 of the DER form of a certificate
//
// check with:
//   openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
type Fingerprint [32]byte

// String - hex text of a fingerprint
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Load - read PEM certificate and key files and build a TLS configuration
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, Fingerprint, error) {
	certificatePEM, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s cannot read certificate: %q  error: %s", name, certificateFileName, err)
		return nil, Fingerprint{}, err
	}
	keyPEM, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s cannot read private key: %q  error: %s", name, keyFileName, err)
		return nil, Fingerprint{}, err
	}
	return Get(log, name, string(certificatePEM), string(keyPEM))
}

// Get - verify that a PEM certificate and key match
// and return the TLS configuration and certificate fingerprint
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, Fingerprint, error) {
	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, Fingerprint{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}

	return tlsConfiguration, sha3.Sum256(keyPair.Certificate[0]), nil
}
