// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeInvalid is returned if a resource type is not known.
	ErrTypeInvalid = errors.New("invalid resource type")

	// ErrNamespaceInvalid is returned if a namespace violates the identifier
	// grammar.
	ErrNamespaceInvalid = errors.New("invalid namespace")

	// ErrPathInvalid is returned if a path violates the identifier grammar.
	ErrPathInvalid = errors.New("invalid path")
)

// IdentifierError records an error and the namespace and path that caused it.
type IdentifierError struct {
	Namespace string
	Path      string
	Err       error
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("identifier %s:%s: %v", e.Namespace, e.Path, e.Err)
}

func (e *IdentifierError) Is(other error) bool {
	_, ok := other.(*IdentifierError)
	return ok
}

func (e *IdentifierError) Unwrap() error {
	return e.Err
}
