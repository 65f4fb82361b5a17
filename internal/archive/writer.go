// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// ErrFileNotRegular is returned if a file is neither a directory nor a
// regular file.
var ErrFileNotRegular = errors.New("not a regular file")

// Writer defines the archive writer interface.
type Writer interface {
	WriteDirectory(path string) error
	WriteRegular(path string, source fs.File) error
}

// WriteFS writes all directories and regular files of fsys to the given
// [Writer] in lexical order. The root directory itself is not written.
func WriteFS(fsys fs.FS, writer Writer) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		switch {
		case d.IsDir():
			return writer.WriteDirectory(path)
		case d.Type().IsRegular():
			return writeRegular(fsys, path, writer)
		default:
			return &fs.PathError{
				Op:   "archive",
				Path: path,
				Err:  ErrFileNotRegular,
			}
		}
	})
}

func writeRegular(fsys fs.FS, path string, writer Writer) error {
	source, err := fsys.Open(path)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer source.Close()

	return writer.WriteRegular(path, source)
}

// Write writes fsys as CPIO archive with the given compression to w.
func Write(w io.Writer, fsys fs.FS, compression Compression) error {
	compressor, err := Compress(w, compression)
	if err != nil {
		return err
	}

	cpioWriter := NewCPIOWriter(compressor)

	err = WriteFS(fsys, cpioWriter)
	if err != nil {
		_ = cpioWriter.Close()
		_ = compressor.Close()

		return fmt.Errorf("write archive: %w", err)
	}

	err = cpioWriter.Close()
	if err != nil {
		_ = compressor.Close()
		return err
	}

	err = compressor.Close()
	if err != nil {
		return fmt.Errorf("close compressor: %w", err)
	}

	return nil
}
