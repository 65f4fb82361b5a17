// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strconv"
)

// LimitedIntValue is a [flag.Value] for an int that must not be lower than
// Lower and, if Upper is set, not greater than Upper.
type LimitedIntValue struct {
	Value *int
	Lower int
	Upper int
}

func (u *LimitedIntValue) String() string {
	if u.Value == nil {
		return "0"
	}

	return strconv.Itoa(*u.Value)
}

func (u *LimitedIntValue) Set(s string) error {
	value, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if value < u.Lower {
		return fmt.Errorf("%d < %d: %w", value, u.Lower, ErrValueOutOfRange)
	}

	if u.Upper > 0 && value > u.Upper {
		return fmt.Errorf("%d > %d: %w", value, u.Upper, ErrValueOutOfRange)
	}

	*u.Value = value

	return nil
}
