// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/swiped/fault"
	"github.com/bitmark-inc/swiped/util"
)

const certificateValidity = 10 * 365 * 24 * time.Hour

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileExists
	}

	org := "swiped self signed cert for: " + name
	validUntil := time.Now().Add(certificateValidity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}

// read the PEM text of a certificate and its key
func readCertificate(certificateFileName string, privateKeyFileName string) (string, string, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return "", "", err
	}
	key, err := ioutil.ReadFile(privateKeyFileName)
	if nil != err {
		return "", "", err
	}
	return string(certificate), string(key), nil
}

// compute the fingerprint of a certificate file
//
// FreeBSD: openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func certificateFingerprint(certificateFileName string, privateKeyFileName string) ([32]byte, error) {
	keyPair, err := tls.LoadX509KeyPair(certificateFileName, privateKeyFileName)
	if nil != err {
		return [32]byte{}, err
	}
	return sha3.Sum256(keyPair.Certificate[0]), nil
}
