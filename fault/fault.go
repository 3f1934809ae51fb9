// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	LengthError   GenericError
	NotFoundError GenericError
	ProcessError  GenericError
	RecordError   GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrCannotParseTimestamp      = InvalidError("cannot parse timestamp")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidDatabaseVersion    = ProcessError("invalid database version")
	ErrInvalidEntityTag          = RecordError("invalid entity tag")
	ErrInvalidMemberType         = RecordError("invalid member type")
	ErrInvalidPoolName           = NotFoundError("invalid pool name")
	ErrNotEntityPack             = RecordError("not entity pack")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrRequiredConfigurationFile = InvalidError("configuration file is required")
	ErrRoleTooLong               = LengthError("role too long")
	ErrTagKeyEmpty               = LengthError("tag key is empty")
	ErrTagKeyTooLong             = LengthError("tag key too long")
	ErrTagValueTooLong           = LengthError("tag value too long")
	ErrTooManyMembers            = LengthError("too many members")
	ErrTooManyNodeReferences     = LengthError("too many node references")
	ErrTooManyTags               = LengthError("too many tags")
	ErrUserNameTooLong           = LengthError("user name too long")
	ErrWayHasTooFewNodes         = RecordError("way has too few nodes")
	ErrWrongDatabaseVersion      = ProcessError("wrong database version")
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

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine the class of an error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine the class of an error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
