// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	// CompressionNone writes the archive as is.
	CompressionNone Compression = "none"
	// CompressionGzip compresses the archive with gzip.
	CompressionGzip Compression = "gzip"
	// CompressionZstd compresses the archive with zstd.
	CompressionZstd Compression = "zstd"
)

// ErrCompressionInvalid is returned if a compression is not known.
var ErrCompressionInvalid = errors.New("invalid compression")

// Compression represents an archive compression algorithm.
type Compression string

func (c *Compression) isKnown() bool {
	knownCompressions := []Compression{
		CompressionNone,
		CompressionGzip,
		CompressionZstd,
	}

	return slices.Contains(knownCompressions, *c)
}

// String implements [fmt.Stringer].
func (c *Compression) String() string {
	if !c.isKnown() {
		return ""
	}

	return string(*c)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Compression) MarshalText() ([]byte, error) {
	s := c.String()
	if s == "" {
		return nil, ErrCompressionInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Compression) UnmarshalText(text []byte) error {
	compression := Compression(text)

	if !compression.isKnown() {
		return ErrCompressionInvalid
	}

	*c = compression

	return nil
}

// Compress returns a writer that compresses everything written to it with
// the given compression before writing it to w. The returned writer must be
// closed in order to flush all data to w. Closing it does not close w.
func Compress(w io.Writer, compression Compression) (io.WriteCloser, error) {
	switch compression {
	case CompressionNone:
		return nopCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}

		return encoder, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrCompressionInvalid, compression)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
