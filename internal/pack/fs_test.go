// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/aibor/virtpack/internal/pack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_FS(t *testing.T) {
	p := newPack(t, []string{"mymod", "other"}, pack.Contents{
		"data/mymod/recipes/foo.json":       pack.Text("{}"),
		"data/mymod/recipes/nested/bar.json": pack.Text(`{"a":1}`),
		"data/other/tags/items/logs.json":   pack.Text(`{"values":[]}`),
		"assets/mymod/lang/en_us.json":      pack.Text(`{"k":"v"}`),
	})

	err := fstest.TestFS(p,
		"data/mymod/recipes/foo.json",
		"data/mymod/recipes/nested/bar.json",
		"data/other/tags/items/logs.json",
		"assets/mymod/lang/en_us.json",
	)
	require.NoError(t, err)
}

func TestPack_WalkDir(t *testing.T) {
	p := newPack(t, []string{"mymod"}, pack.Contents{
		"data/mymod/recipes/foo.json": pack.Text("{}"),
		"data/mymod/tags":             pack.Text("file and dir"),
		"data/mymod/tags/hidden.json": pack.Text("{}"),
		"data/mymod/":                 pack.Text("invalid fs path"),
		"data//mymod/x.json":          pack.Text("invalid fs path"),
		"/data/mymod/y.json":          pack.Text("invalid fs path"),
	})

	type entry struct {
		name string
		typ  fs.FileMode
	}

	actual := []entry{}

	err := fs.WalkDir(p, ".", func(path string, d fs.DirEntry, err error) error {
		actual = append(actual, entry{
			name: path,
			typ:  d.Type(),
		})

		return err
	})
	require.NoError(t, err)

	expected := []entry{
		{".", fs.ModeDir},
		{"data", fs.ModeDir},
		{"data/mymod", fs.ModeDir},
		{"data/mymod/recipes", fs.ModeDir},
		{"data/mymod/recipes/foo.json", 0},
		{"data/mymod/tags", 0},
	}

	assert.Equal(t, expected, actual)

	// Invalid fs paths are still available by their exact path.
	assert.True(t, p.ContainsFile("data//mymod/x.json"))

	_, err = p.OpenFile("data//mymod/x.json")
	require.NoError(t, err)
}

func TestPack_Open(t *testing.T) {
	p := newPack(t, []string{"mymod"}, pack.Contents{
		"data/mymod/foo.json": pack.Text("{}"),
		"data/mymod/broken.json": func() (string, error) {
			return "", assert.AnError
		},
	})

	tests := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{
			name: "root",
			path: ".",
		},
		{
			name: "directory",
			path: "data/mymod",
		},
		{
			name: "file",
			path: "data/mymod/foo.json",
		},
		{
			name:        "not existing",
			path:        "data/mymod/bar.json",
			expectedErr: pack.ErrFileNotExist,
		},
		{
			name:        "invalid",
			path:        "data/../data",
			expectedErr: pack.ErrFileInvalid,
		},
		{
			name:        "supplier fails",
			path:        "data/mymod/broken.json",
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := p.Open(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				require.ErrorAs(t, err, new(*pack.PathError))
				return
			}

			require.NoError(t, file.Close())
		})
	}
}

func TestPack_ReadFile(t *testing.T) {
	p := newPack(t, []string{"mymod"}, pack.Contents{
		"data/mymod/foo.json": pack.Text(`{"a":1}`),
	})

	actual, err := fs.ReadFile(p, "data/mymod/foo.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(actual))

	_, err = p.ReadFile("data/mymod")
	require.ErrorIs(t, err, pack.ErrFileInvalid)

	_, err = p.ReadDir("data/mymod/foo.json")
	require.ErrorIs(t, err, pack.ErrFileNotDir)

	file, err := p.Open("data")
	require.NoError(t, err)

	_, err = file.Read(make([]byte, 1))
	require.ErrorIs(t, err, pack.ErrFileInvalid)
}

func TestPack_DirEntryInfo(t *testing.T) {
	p := newPack(t, []string{"mymod"}, pack.Contents{
		"data/mymod/foo.json": pack.Text("12345"),
	})

	entries, err := p.ReadDir("data/mymod")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	info, err := entries[0].Info()
	require.NoError(t, err)

	assert.Equal(t, "foo.json", info.Name())
	assert.Equal(t, int64(5), info.Size())
	assert.Equal(t, fs.FileMode(0o444), info.Mode())
	assert.True(t, info.ModTime().IsZero())
}
