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
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceOutOfRange    = InvalidError("balance factor out of range")
	ErrConfigurationFile    = InvalidError("configuration file is invalid")
	ErrCountMismatch        = InvalidError("node count does not match tree")
	ErrDuplicateKey         = ExistsError("duplicate key")
	ErrEmptyScriptLine      = InvalidError("empty script line")
	ErrHeightMismatch       = InvalidError("cached height is incorrect")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = InvalidError("keys are not in ascending order")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrMissingScript        = InvalidError("at least one script is required")
	ErrNotFoundConfigFile   = NotFoundError("configuration file is not found")
	ErrNotFoundScript       = NotFoundError("script file is not found")
	ErrReplayFailed         = ProcessError("replay failed")
	ErrShadowMismatch       = ProcessError("tree contents differ from shadow map")
	ErrSizeMismatch         = InvalidError("cached sub-tree size is incorrect")
	ErrTooManyArguments     = InvalidError("too many arguments")
	ErrUnknownOperation     = InvalidError("unknown operation")
	ErrWatcherSetup         = ProcessError("file watcher setup failed")
	ErrWatchedFileRemoved   = ProcessError("watched file was removed")
	ErrZeroRandomOperations = InvalidError("random operations count must be positive")
	ErrZeroRandomKeyRange   = InvalidError("random key range must be positive")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
