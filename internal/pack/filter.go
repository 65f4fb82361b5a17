// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides if a file name is part of the result of
// [Pack.FindResources].
type Filter func(name string) bool

// All returns a [Filter] that matches any name.
func All() Filter {
	return func(string) bool { return true }
}

// Suffix returns a [Filter] that matches names ending with suffix.
func Suffix(suffix string) Filter {
	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}
}

// Glob returns a [Filter] that matches names against the given pattern. See
// [doublestar.Match] for the pattern syntax.
//
// It returns an error wrapping [ErrPatternInvalid] if the pattern is
// malformed.
func Glob(pattern string) (Filter, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %s", ErrPatternInvalid, pattern)
	}

	filter := func(name string) bool {
		// The pattern is validated already, so there is no error.
		matches, _ := doublestar.Match(pattern, name)
		return matches
	}

	return filter, nil
}
