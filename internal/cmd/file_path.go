// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"path/filepath"
)

// stdioPath is the file path that refers to stdout.
const stdioPath = "-"

// FilePath is a [flag.Value] for a file path that is made absolute. The
// special value "-" is kept as is.
type FilePath string

func (f *FilePath) String() string {
	return string(*f)
}

func (f *FilePath) Set(s string) error {
	if s == stdioPath {
		*f = stdioPath
		return nil
	}

	path, err := AbsoluteFilePath(s)

	*f = FilePath(path)

	return err
}

// IsStdio returns true if the path refers to stdout.
func (f FilePath) IsStdio() bool {
	return f == "" || f == stdioPath
}

// AbsoluteFilePath returns the absolute version of the given path. It fails
// for an empty path.
func AbsoluteFilePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyFilePath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return path, nil
}
