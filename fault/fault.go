// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrEmptyDistribution    = ProcessError("distribution has no weight")
	ErrIncompleteBlock      = RecordError("record block is incomplete")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMessageDateTime      = RecordError("message date/time is malformed")
	ErrMessageLink          = RecordError("message link is malformed")
	ErrNilItem              = InvalidError("cannot store a nil item")
	ErrNoTwitterAccount     = RecordError("message link carries no account")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrNotOutDirectory      = InvalidError("out argument is not a directory")
	ErrNotTwitterLink       = RecordError("message link is not a twitter link")
	ErrRecordCorrupted      = RecordError("stored record is corrupted")
	ErrRequiredOutDirectory = InvalidError("out directory is required")
	ErrTooFewArguments      = InvalidError("too few arguments")
	ErrWrongDatabaseVersion = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods of the sub-classes
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
