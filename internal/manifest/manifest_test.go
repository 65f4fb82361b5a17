// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest_test

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/aibor/virtpack/internal/manifest"
	"github.com/aibor/virtpack/internal/metadata"
	"github.com/aibor/virtpack/internal/pack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlManifest = `
id = "example"
namespaces = ["mymod"]
pack_format = 18

[files."data/mymod/recipes/foo.json"]
content = "{}"

[files."data/mymod/tags/items/logs.json"]
source = "sources/logs.json"
`

const yamlManifest = `
id: example
namespaces:
  - mymod
pack_format: 18
files:
  data/mymod/recipes/foo.json:
    content: "{}"
  data/mymod/tags/items/logs.json:
    source: sources/logs.json
`

const jsonManifest = `{
  "id": "example",
  "namespaces": ["mymod"],
  "pack_format": 18,
  "files": {
    "data/mymod/recipes/foo.json": {"content": "{}"},
    "data/mymod/tags/items/logs.json": {"source": "sources/logs.json"}
  }
}`

func readAll(tb testing.TB, p *pack.Pack, path string) string {
	tb.Helper()

	file, err := p.OpenFile(path)
	require.NoError(tb, err)

	data, err := io.ReadAll(file)
	require.NoError(tb, err)

	return string(data)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{
			name: "toml",
			file: "packs/example.toml",
			data: tomlManifest,
		},
		{
			name: "yaml",
			file: "packs/example.yaml",
			data: yamlManifest,
		},
		{
			name: "yml",
			file: "packs/example.yml",
			data: yamlManifest,
		},
		{
			name: "json",
			file: "packs/example.json",
			data: jsonManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				tt.file:                   {Data: []byte(tt.data)},
				"packs/sources/logs.json": {Data: []byte(`{"values":[]}`)},
			}

			m, err := manifest.Load(fsys, tt.file)
			require.NoError(t, err)

			assert.Equal(t, "example", m.ID)
			assert.Equal(t, []string{"mymod"}, m.Namespaces)
			assert.Equal(t, 18, m.PackFormat)
			assert.Len(t, m.Files, 2)

			p, err := m.Pack(fsys)
			require.NoError(t, err)

			assert.Equal(t, "example (virtual)", p.Name())
			assert.Equal(t, "{}", readAll(t, p, "data/mymod/recipes/foo.json"))
			assert.Equal(t, `{"values":[]}`, readAll(t, p, "data/mymod/tags/items/logs.json"))

			section, ok := pack.ParseMetadata(p, metadata.PackReader{})
			require.True(t, ok)
			assert.Equal(t, 18, section.Format)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"pack.ini":     {Data: []byte("id=x")},
		"bad.toml":     {Data: []byte("id = ")},
		"unknown.toml": {Data: []byte("id = \"x\"\ncolor = \"blue\"\n")},
		"noid.yaml":    {Data: []byte("namespaces: [mymod]\n")},
	}

	tests := []struct {
		name      string
		file      string
		assertErr require.ErrorAssertionFunc
	}{
		{
			name: "unknown format",
			file: "pack.ini",
			assertErr: func(t require.TestingT, err error, a ...any) {
				require.ErrorIs(t, err, manifest.ErrFormatUnknown, a...)
			},
		},
		{
			name:      "not existing",
			file:      "missing.toml",
			assertErr: require.Error,
		},
		{
			name:      "malformed",
			file:      "bad.toml",
			assertErr: require.Error,
		},
		{
			name:      "unknown key",
			file:      "unknown.toml",
			assertErr: require.Error,
		},
		{
			name: "missing id",
			file: "noid.yaml",
			assertErr: func(t require.TestingT, err error, a ...any) {
				require.ErrorIs(t, err, manifest.ErrManifestInvalid, a...)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Load(fsys, tt.file)
			tt.assertErr(t, err)
		})
	}
}

func TestDecode_FileSpec(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "neither content nor source",
			data: `{"id":"x","files":{"data/x/a":{}}}`,
		},
		{
			name: "content and source",
			data: `{"id":"x","files":{"data/x/a":{"content":"","source":"a"}}}`,
		},
		{
			name: "source escapes",
			data: `{"id":"x","files":{"data/x/a":{"source":"../a"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Decode(manifest.FormatJSON, []byte(tt.data))
			require.ErrorIs(t, err, manifest.ErrFileSpecInvalid)
		})
	}
}

func TestManifest_Pack(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		m, err := manifest.Decode(manifest.FormatJSON,
			[]byte(`{"id":"x","namespaces":["x"],"files":{"data/x/a":{"content":""}}}`))
		require.NoError(t, err)

		p, err := m.Pack(fstest.MapFS{})
		require.NoError(t, err)

		assert.True(t, p.ContainsFile("data/x/a"))
		assert.Empty(t, readAll(t, p, "data/x/a"))
		assert.Equal(t, pack.DefaultPackFormat, p.PackFormat())
	})

	t.Run("source read on every open", func(t *testing.T) {
		fsys := fstest.MapFS{
			"a.json": {Data: []byte("first")},
		}

		m, err := manifest.Decode(manifest.FormatJSON,
			[]byte(`{"id":"x","namespaces":["x"],"files":{"data/x/a.json":{"source":"a.json"}}}`))
		require.NoError(t, err)

		p, err := m.Pack(fsys)
		require.NoError(t, err)

		assert.Equal(t, "first", readAll(t, p, "data/x/a.json"))

		fsys["a.json"].Data = []byte("second")
		assert.Equal(t, "second", readAll(t, p, "data/x/a.json"))

		delete(fsys, "a.json")

		_, err = p.OpenFile("data/x/a.json")
		require.ErrorIs(t, err, pack.ErrFileNotExist)
	})

	t.Run("invalid namespace", func(t *testing.T) {
		m, err := manifest.Decode(manifest.FormatJSON,
			[]byte(`{"id":"x","namespaces":["Bad"]}`))
		require.NoError(t, err)

		_, err = m.Pack(fstest.MapFS{})
		require.ErrorIs(t, err, pack.ErrInvalidNamespace)
	})
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		input    string
		expected manifest.Format
	}{
		{"a.toml", manifest.FormatTOML},
		{"a.TOML", manifest.FormatTOML},
		{"a.yaml", manifest.FormatYAML},
		{"a.yml", manifest.FormatYAML},
		{"dir.d/a.json", manifest.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, err := manifest.FormatFor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}

	_, err := manifest.FormatFor("a")
	require.ErrorIs(t, err, manifest.ErrFormatUnknown)
}
