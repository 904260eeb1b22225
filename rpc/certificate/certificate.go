// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/fault"
)

// replaced in tests
var timeNow = time.Now

// Get - check that the PEM certificate and key match and are still
// valid, then return a server TLS configuration and the certificate
// fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	leaf, err := x509.ParseCertificate(keyPair.Certificate[0])
	if nil != err {
		log.Errorf("%s failed to parse certificate: %v", name, err)
		return nil, fin, err
	}
	if timeNow().After(leaf.NotAfter) {
		log.Errorf("%s certificate expired at: %s", name, leaf.NotAfter)
		return nil, fin, fault.ErrCertificateExpired
	}
	keyPair.Leaf = leaf

	log.Infof("%s certificate valid until: %s", name, leaf.NotAfter.Format(time.RFC3339))

	tlsConfiguration := &tls.Config{
		MinVersion: tls.VersionTLS12,
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in swiped-local-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
