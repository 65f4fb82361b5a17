// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package manifest loads virtual pack definitions from files.
//
// A manifest names the pack, its namespaces and its files. The content of a
// file is either given inline or read from a source file every time the file
// is opened. TOML, YAML and JSON manifests are supported:
//
//	id = "example"
//	namespaces = ["mymod"]
//	pack_format = 15
//
//	[files."data/mymod/recipes/foo.json"]
//	content = "{}"
//
//	[files."data/mymod/tags/items/logs.json"]
//	source = "logs.json"
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/aibor/virtpack/internal/pack"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrFormatUnknown is returned if the manifest format can not be
	// determined.
	ErrFormatUnknown = errors.New("unknown manifest format")

	// ErrManifestInvalid is returned if the manifest misses required values.
	ErrManifestInvalid = errors.New("invalid manifest")

	// ErrFileSpecInvalid is returned if a file does not have exactly one of
	// content and source or if the source path is invalid.
	ErrFileSpecInvalid = errors.New("invalid file spec")
)

// Supported manifest formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Format is a manifest file format.
type Format string

// FormatFor returns the [Format] for the given file name based on its
// extension.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrFormatUnknown, name)
	}
}

// File describes a single file of the pack.
type File struct {
	// Content is the inline content of the file.
	Content *string `json:"content" toml:"content" yaml:"content"`
	// Source is the path of a file the content is read from, relative to the
	// manifest.
	Source string `json:"source" toml:"source" yaml:"source"`
}

// Manifest describes a virtual pack.
type Manifest struct {
	ID         string          `json:"id"          toml:"id"          yaml:"id"`
	Namespaces []string        `json:"namespaces"  toml:"namespaces"  yaml:"namespaces"`
	PackFormat int             `json:"pack_format" toml:"pack_format" yaml:"pack_format"`
	Files      map[string]File `json:"files"       toml:"files"       yaml:"files"`

	// Directory source paths are relative to.
	dir string
}

// Load reads and decodes the manifest with the given name from fsys. Source
// paths of the manifest are relative to the manifest's directory in fsys.
func Load(fsys fs.FS, name string) (*Manifest, error) {
	format, err := FormatFor(name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	manifest, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", name, err)
	}

	manifest.dir = path.Dir(name)

	return manifest, nil
}

// Decode decodes and validates a manifest in the given format. Unknown keys
// are rejected.
func Decode(format Format, data []byte) (*Manifest, error) {
	var (
		manifest Manifest
		err      error
	)

	switch format {
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		err = decoder.DisallowUnknownFields().Decode(&manifest)
	case FormatYAML:
		err = yaml.UnmarshalWithOptions(data, &manifest, yaml.Strict())
	case FormatJSON:
		api := sonic.Config{DisallowUnknownFields: true}.Froze()
		err = api.Unmarshal(data, &manifest)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormatUnknown, format)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	manifest.dir = "."

	err = manifest.Validate()
	if err != nil {
		return nil, err
	}

	return &manifest, nil
}

// Validate checks that the manifest has an id and that each file has exactly
// one of content and source.
func (m *Manifest) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: id is missing", ErrManifestInvalid)
	}

	for _, name := range slices.Sorted(maps.Keys(m.Files)) {
		err := m.Files[name].validate()
		if err != nil {
			return fmt.Errorf("file %s: %w", name, err)
		}
	}

	return nil
}

func (f File) validate() error {
	switch {
	case f.Content == nil && f.Source == "":
		return fmt.Errorf("%w: content or source required", ErrFileSpecInvalid)
	case f.Content != nil && f.Source != "":
		return fmt.Errorf("%w: content and source are exclusive", ErrFileSpecInvalid)
	case f.Content == nil && !fs.ValidPath(f.Source):
		return fmt.Errorf("%w: source path %s", ErrFileSpecInvalid, f.Source)
	default:
		return nil
	}
}

// Pack creates the [pack.Pack] described by the manifest. Source files are
// read from fsys each time they are opened. The given options are applied
// after the manifest's pack format.
func (m *Manifest) Pack(fsys fs.FS, opts ...pack.Option) (*pack.Pack, error) {
	contents := make(pack.Contents, len(m.Files))

	for name, file := range m.Files {
		if file.Content != nil {
			contents[name] = pack.Text(*file.Content)
			continue
		}

		contents[name] = sourceSupplier(fsys, path.Join(m.dir, file.Source))
	}

	if m.PackFormat > 0 {
		opts = append([]pack.Option{pack.WithPackFormat(m.PackFormat)}, opts...)
	}

	p, err := pack.New(m.ID, m.Namespaces, contents, opts...)
	if err != nil {
		return nil, fmt.Errorf("new pack: %w", err)
	}

	return p, nil
}

func sourceSupplier(fsys fs.FS, name string) pack.Supplier {
	return func() (string, error) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", fmt.Errorf("read source: %w", err)
		}

		return string(data), nil
	}
}
