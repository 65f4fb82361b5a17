// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"io"
	"io/fs"
	"path"
	"slices"
)

const rootDir = "."

var (
	_ fs.FS         = (*Pack)(nil)
	_ fs.ReadFileFS = (*Pack)(nil)
	_ fs.ReadDirFS  = (*Pack)(nil)
)

// Open implements [fs.FS].
//
// Directories are derived from the file paths. Files with paths that are not
// valid according to [fs.ValidPath] are not part of the file system view, use
// [Pack.OpenFile] for those. If a path is a file and a directory prefix of
// other files at the same time, it is opened as file.
func (p *Pack) Open(name string) (fs.File, error) {
	file, err := p.open(name)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  err,
		}
	}

	return file, nil
}

// ReadFile implements [fs.ReadFileFS].
func (p *Pack) ReadFile(name string) ([]byte, error) {
	file, err := p.open(name)
	if err != nil {
		return nil, &PathError{
			Op:   "readfile",
			Path: name,
			Err:  err,
		}
	}
	defer file.Close()

	if file.info.IsDir() {
		return nil, &PathError{
			Op:   "readfile",
			Path: name,
			Err:  ErrFileInvalid,
		}
	}

	return io.ReadAll(file)
}

// ReadDir implements [fs.ReadDirFS].
func (p *Pack) ReadDir(name string) ([]fs.DirEntry, error) {
	file, err := p.open(name)
	if err != nil {
		return nil, &PathError{
			Op:   "readdir",
			Path: name,
			Err:  err,
		}
	}
	defer file.Close()

	return file.ReadDir(-1)
}

func (p *Pack) open(name string) (*File, error) {
	if !fs.ValidPath(name) {
		return nil, ErrFileInvalid
	}

	if p.isRegular(name) {
		return p.openRegular(name)
	}

	children, exists := p.dirs[name]
	if !exists {
		return nil, ErrFileNotExist
	}

	entries := make([]fs.DirEntry, 0, len(children))

	for _, child := range children {
		childName := child
		if name != rootDir {
			childName = name + separator + child
		}

		entries = append(entries, &dirEntry{
			pack: p,
			name: childName,
			dir:  !p.isRegular(childName),
		})
	}

	file := &File{
		info: fileInfo{
			dirEntry: dirEntry{
				pack: p,
				name: name,
				dir:  true,
			},
		},
		entries: entries,
	}

	return file, nil
}

func (p *Pack) isRegular(name string) bool {
	return name != rootDir && p.ContainsFile(name)
}

// dirIndex maps each directory of the file system view to the sorted names of
// its direct children. The root directory always exists.
func dirIndex(paths []string) map[string][]string {
	dirs := map[string][]string{
		rootDir: {},
	}

	// Once a node is seen, all its parents have been added already.
	seen := map[string]bool{}

	for _, name := range paths {
		if name == rootDir || !fs.ValidPath(name) {
			continue
		}

		for name != rootDir && !seen[name] {
			seen[name] = true
			parent := path.Dir(name)
			dirs[parent] = append(dirs[parent], path.Base(name))
			name = parent
		}
	}

	for _, children := range dirs {
		slices.Sort(children)
	}

	return dirs
}
