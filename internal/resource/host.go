// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resource

// Host provides the services of the resource system a pack is served to.
type Host interface {
	// ParseIdentifier parses an identifier in the form "namespace:path".
	ParseIdentifier(s string) (Identifier, error)
	// NewIdentifier creates a validated identifier.
	NewIdentifier(namespace, path string) (Identifier, error)
	// TypeName returns the top level directory name for the given type.
	TypeName(typ Type) string
}

var _ Host = DefaultHost{}

// DefaultHost implements [Host] with the grammar of [NewIdentifier] and the
// type's own string as directory name.
type DefaultHost struct{}

// ParseIdentifier implements [Host].
func (DefaultHost) ParseIdentifier(s string) (Identifier, error) {
	return ParseIdentifier(s)
}

// NewIdentifier implements [Host].
func (DefaultHost) NewIdentifier(namespace, path string) (Identifier, error) {
	return NewIdentifier(namespace, path)
}

// TypeName implements [Host].
func (DefaultHost) TypeName(typ Type) string {
	return string(typ)
}
