// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - initialise the logger into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

var keyPair struct {
	sync.Once
	certificate []byte
	key         []byte
	err         error
}

// CertificateAndKey - a self signed PEM certificate and key for localhost
//
// generated once per test binary
func CertificateAndKey() (string, string, error) {
	keyPair.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		keyPair.certificate, keyPair.key, keyPair.err = certgen.NewTLSCertPair("swiped test", validUntil, false, []string{"127.0.0.1", "localhost"})
	})
	return string(keyPair.certificate), string(keyPair.key), keyPair.err
}
