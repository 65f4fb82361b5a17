// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"io"
	"io/fs"
	"path"
	"time"
)

const (
	fileMode = 0o444
	dirMode  = fs.ModeDir | 0o555
)

var (
	_ fs.FileInfo = (*fileInfo)(nil)
	_ fs.DirEntry = (*fileInfo)(nil)
	_ fs.DirEntry = (*dirEntry)(nil)
)

type dirEntry struct {
	pack *Pack
	name string
	dir  bool
}

func (e *dirEntry) Name() string      { return path.Base(e.name) }
func (e *dirEntry) Type() fs.FileMode { return e.mode().Type() }
func (e *dirEntry) IsDir() bool       { return e.mode().IsDir() }
func (e *dirEntry) String() string    { return fs.FormatDirEntry(e) }

func (e *dirEntry) Info() (fs.FileInfo, error) {
	file, err := e.pack.open(e.name)
	if err != nil {
		return nil, &PathError{
			Op:   "stat",
			Path: e.name,
			Err:  err,
		}
	}
	defer file.Close()

	return file.Stat()
}

func (e *dirEntry) mode() fs.FileMode {
	if e.dir {
		return dirMode
	}

	return fileMode
}

type fileInfo struct {
	dirEntry

	size int64
}

func (i *fileInfo) Size() int64       { return i.size }
func (i *fileInfo) Mode() fs.FileMode { return i.mode() }
func (*fileInfo) ModTime() time.Time  { return time.Time{} }
func (*fileInfo) Sys() any            { return nil }
func (i *fileInfo) String() string    { return fs.FormatFileInfo(i) }

var (
	_ fs.File        = (*File)(nil)
	_ fs.ReadDirFile = (*File)(nil)
)

// File is an open file of a [Pack]. Each open file has its own read offset.
type File struct {
	info    fileInfo
	reader  io.Reader
	entries []fs.DirEntry
	offset  int
}

// Stat implements [fs.File].
func (f *File) Stat() (fs.FileInfo, error) {
	return &f.info, nil
}

// Read implements [fs.File].
func (f *File) Read(b []byte) (int, error) {
	if f.reader == nil {
		return 0, &PathError{
			Op:   "read",
			Path: f.info.name,
			Err:  ErrFileInvalid,
		}
	}

	return f.reader.Read(b) //nolint:wrapcheck
}

// Close implements [fs.File]. There is nothing to release.
func (*File) Close() error {
	return nil
}

// ReadDir implements [fs.ReadDirFile].
func (f *File) ReadDir(count int) ([]fs.DirEntry, error) {
	if !f.info.IsDir() {
		return nil, &PathError{
			Op:   "readdir",
			Path: f.info.name,
			Err:  ErrFileNotDir,
		}
	}

	start := f.offset
	end := len(f.entries)
	available := end - start

	if available == 0 && count > 0 {
		return nil, io.EOF
	}

	if count > 0 && available > count {
		end = start + count
	}

	f.offset = end

	return f.entries[start:end], nil
}
