// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - file system helpers shared by the commands
package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// CheckDirectory - the path must already exist and be a directory
func CheckDirectory(path string) error {
	fileInfo, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", path)
	}
	return nil
}

// EnsureDirectory - make path absolute below directory and create it
// if missing, returns the absolute path
func EnsureDirectory(directory string, path string) (string, error) {
	path = EnsureAbsolute(directory, path)
	if err := os.MkdirAll(path, 0700); nil != err {
		return "", err
	}
	return path, nil
}

// IsPlainName - true if name has no directory component
func IsPlainName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return true
	default:
		return false
	}
}
