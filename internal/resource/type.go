// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resource

import "slices"

const (
	// TypeAssets is the type of client side resources like textures, models
	// and sounds.
	TypeAssets Type = "assets"
	// TypeData is the type of server side data like recipes, tags and loot
	// tables.
	TypeData Type = "data"
)

// Type represents the coarse category of a resource. It is used as top
// level directory of resource paths and as filter for resource queries.
type Type string

// Types returns all known resource types.
func Types() []Type {
	return []Type{
		TypeAssets,
		TypeData,
	}
}

func (t *Type) isKnown() bool {
	return slices.Contains(Types(), *t)
}

// String implements [fmt.Stringer].
func (t *Type) String() string {
	if !t.isKnown() {
		return ""
	}

	return string(*t)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Type) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "" {
		return nil, ErrTypeInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Type) UnmarshalText(text []byte) error {
	typ := Type(text)

	if !typ.isKnown() {
		return ErrTypeInvalid
	}

	*t = typ

	return nil
}
