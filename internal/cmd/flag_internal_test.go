// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/aibor/virtpack/internal/archive"
	"github.com/aibor/virtpack/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAbs(tb testing.TB, path string) string {
	tb.Helper()

	abs, err := filepath.Abs(path)
	require.NoError(tb, err)

	return abs
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedFlags *flags
		expecterErr   error
	}{
		{
			name: "help",
			args: []string{
				"-help",
			},
			expecterErr: ErrHelp,
		},
		{
			name: "version",
			args: []string{
				"-version",
			},
			expectedFlags: &flags{
				Type:        resource.TypeData,
				Compression: archive.CompressionNone,
				Version:     true,
			},
		},
		{
			name:        "no manifest",
			args:        []string{},
			expecterErr: ErrArgsMissing,
		},
		{
			name: "no command",
			args: []string{
				"pack.toml",
			},
			expecterErr: ErrArgsMissing,
		},
		{
			name: "unknown command",
			args: []string{
				"pack.toml",
				"frobnicate",
			},
			expecterErr: ErrCommandUnknown,
		},
		{
			name: "cat without path",
			args: []string{
				"pack.toml",
				"cat",
			},
			expecterErr: ErrArgsMissing,
		},
		{
			name: "unknown type",
			args: []string{
				"-type=textures",
				"pack.toml",
				"find",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "unknown compression",
			args: []string{
				"-compress=xz",
				"pack.toml",
				"export",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "jobs out of range",
			args: []string{
				"-jobs=1000",
				"pack.toml",
				"verify",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "invalid pattern",
			args: []string{
				"-match=[a-",
				"pack.toml",
				"find",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "defaults",
			args: []string{
				"pack.toml",
				"list",
			},
			expectedFlags: &flags{
				ManifestPath: mustAbs(t, "pack.toml"),
				Command:      "list",
				CommandArgs:  []string{},
				Type:         resource.TypeData,
				Compression:  archive.CompressionNone,
			},
		},
		{
			name: "all flags",
			args: []string{
				"-type", "assets",
				"-prefix=lang/",
				"-match", "*.json",
				"-depth=3",
				"-index=2",
				"-output=/out/pack.cpio.zst",
				"-compress=zstd",
				"-jobs", "4",
				"-debug",
				"pack.toml",
				"cat",
				"assets/mymod/lang/en_us.json",
				"data/mymod/recipes/foo.json",
			},
			expectedFlags: &flags{
				ManifestPath: mustAbs(t, "pack.toml"),
				Command:      "cat",
				CommandArgs: []string{
					"assets/mymod/lang/en_us.json",
					"data/mymod/recipes/foo.json",
				},
				Type:        resource.TypeAssets,
				Prefix:      "lang/",
				Match:       "*.json",
				Depth:       3,
				Index:       2,
				Output:      "/out/pack.cpio.zst",
				Compression: archive.CompressionZstd,
				Jobs:        4,
				Debug:       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseArgs(tt.args, io.Discard)
			require.ErrorIs(t, err, tt.expecterErr)

			assert.Equal(t, tt.expectedFlags, flags)
		})
	}
}
