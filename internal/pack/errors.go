// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"errors"
	"io/fs"
)

var (
	// ErrFileNotExist is returned if a file that is looked up does not exist.
	ErrFileNotExist = fs.ErrNotExist

	// ErrFileInvalid is returned if a file is invalid for the requested
	// operation.
	ErrFileInvalid = fs.ErrInvalid

	// ErrFileNotDir is returned if a file exists but is not a directory.
	ErrFileNotDir = errors.New("not a directory")

	// ErrInvalidArgument is returned if an invalid argument is given.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidNamespace is returned if a namespace of a new pack violates
	// the identifier grammar.
	ErrInvalidNamespace = errors.New("invalid namespace")

	// ErrKeyMalformed is returned if a file path does not consist of type,
	// namespace and at least one more path segment.
	ErrKeyMalformed = errors.New("malformed resource path")

	// ErrNamespaceUnknown is returned if a file path names a namespace the
	// pack does not provide.
	ErrNamespaceUnknown = errors.New("namespace not provided by pack")

	// ErrPatternInvalid is returned if a filter pattern is malformed.
	ErrPatternInvalid = errors.New("invalid pattern")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
