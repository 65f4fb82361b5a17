// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resource

import "strings"

const (
	// DefaultNamespace is used for identifiers that are parsed without
	// namespace.
	DefaultNamespace = "minecraft"

	namespaceSeparator = ":"
)

// Identifier names a single resource within a namespace.
type Identifier struct {
	Namespace string
	Path      string
}

// NewIdentifier creates a new [Identifier] after validating namespace and path
// against the identifier grammar.
//
// It returns an [IdentifierError] wrapping [ErrNamespaceInvalid] or
// [ErrPathInvalid] if the validation fails.
func NewIdentifier(namespace, path string) (Identifier, error) {
	var err error

	switch {
	case !ValidNamespace(namespace):
		err = ErrNamespaceInvalid
	case !ValidPath(path):
		err = ErrPathInvalid
	default:
		return Identifier{Namespace: namespace, Path: path}, nil
	}

	return Identifier{}, &IdentifierError{
		Namespace: namespace,
		Path:      path,
		Err:       err,
	}
}

// ParseIdentifier parses an identifier in the form "namespace:path". If there
// is no namespace separator the whole string is used as path in the
// [DefaultNamespace].
func ParseIdentifier(s string) (Identifier, error) {
	namespace, path, found := strings.Cut(s, namespaceSeparator)
	if !found {
		return NewIdentifier(DefaultNamespace, s)
	}

	return NewIdentifier(namespace, path)
}

// String returns the identifier in the form "namespace:path".
func (i Identifier) String() string {
	return i.Namespace + namespaceSeparator + i.Path
}

// MarshalText implements [encoding.TextMarshaler].
func (i Identifier) MarshalText() ([]byte, error) {
	_, err := NewIdentifier(i.Namespace, i.Path)
	if err != nil {
		return nil, err
	}

	return []byte(i.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *Identifier) UnmarshalText(text []byte) error {
	id, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}

	*i = id

	return nil
}

// ValidNamespace checks if the given namespace is non-empty and consists of
// lowercase letters, digits, "_", "-" and "." only.
func ValidNamespace(namespace string) bool {
	return namespace != "" && strings.IndexFunc(namespace, invalidNamespaceRune) < 0
}

// ValidPath checks if the given path is non-empty and consists of lowercase
// letters, digits, "_", "-", "." and "/" only.
func ValidPath(path string) bool {
	return path != "" && strings.IndexFunc(path, invalidPathRune) < 0
}

func invalidNamespaceRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return false
	case r == '_', r == '-', r == '.':
		return false
	default:
		return true
	}
}

func invalidPathRune(r rune) bool {
	return r != '/' && invalidNamespaceRune(r)
}
