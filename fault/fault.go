// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrBalanceOverflow           = InvalidError("balance overflow")
	ErrCertificateExpired        = InvalidError("certificate has expired")
	ErrCertificateFileExists     = ExistsError("certificate file already exists")
	ErrConfigurationNotStruct    = InvalidError("configuration must be a pointer to a struct")
	ErrDatabaseIsNewerThanBinary = ProcessError("database version is newer than this program")
	ErrInsufficientBalance       = InvalidError("insufficient balance")
	ErrInvalidAmount             = InvalidError("amount must be greater than 0")
	ErrInvalidAsset              = InvalidError("asset id is invalid")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidIdentity           = InvalidError("identity is invalid")
	ErrInvalidIPAddress          = InvalidError("invalid IP address")
	ErrInvalidPool               = InvalidError("invalid pool definition")
	ErrKeyFileExists             = ExistsError("key file already exists")
	ErrMissingParameters         = InvalidError("missing parameters")
	ErrNotAvailableInReadOnly    = ProcessError("not available in read-only mode")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrRateLimiting              = InvalidError("rate limiting")
	ErrRecordCorrupt             = RecordError("record is corrupt")
	ErrTokenBalanceLength        = LengthError("token balance length is invalid")
	ErrTokenKeyLength            = LengthError("token key length is invalid")
	ErrTokenNotFound             = NotFoundError("token not found")
	ErrTransactionInUse          = ProcessError("transaction already in use")
	ErrTransactionNotStarted     = ProcessError("transaction not started")
	ErrUnsupportedRecordVersion  = RecordError("unsupported record version")
	ErrUserNotFound              = NotFoundError("user not found")
	ErrValueLength               = LengthError("stored value length is invalid")
	ErrWatcherFileDoesNotExist   = NotFoundError("watched file does not exist")
	ErrWrongTokenKeySeparator    = RecordError("token key separator is missing")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
