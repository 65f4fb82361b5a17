// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package metadata

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

const (
	// PackSectionKey is the key of the pack section.
	PackSectionKey = "pack"

	// Description is the description of every virtual pack.
	Description = "Virtual resource pack generated by virtpack."
)

// ErrSectionInvalid is returned if a section does not hold the expected
// values.
var ErrSectionInvalid = errors.New("invalid metadata section")

// Reader decodes the section with the key returned by Key into a value of
// type T.
type Reader[T any] interface {
	Key() string
	Decode(data []byte) (T, error)
}

// Document is a metadata document. Each key maps to one section.
type Document map[string]any

// NewPackDocument returns a document that only consists of the pack section
// with the given format and [Description].
func NewPackDocument(format int) Document {
	return Document{
		PackSectionKey: PackSection{
			Format:      format,
			Description: Description,
		},
	}
}

// Section returns the JSON encoded section with the given key. It returns
// false if there is no such section.
func (d Document) Section(key string) ([]byte, bool, error) {
	section, exists := d[key]
	if !exists {
		return nil, false, nil
	}

	data, err := sonic.Marshal(section)
	if err != nil {
		return nil, true, fmt.Errorf("encode section %s: %w", key, err)
	}

	return data, true, nil
}

// PackSection describes the pack itself.
type PackSection struct {
	Format      int    `json:"pack_format"`
	Description string `json:"description"`
}

var _ Reader[PackSection] = PackReader{}

// PackReader implements [Reader] for the [PackSection].
type PackReader struct{}

// Key implements [Reader].
func (PackReader) Key() string {
	return PackSectionKey
}

// Decode implements [Reader].
//
// It returns [ErrSectionInvalid] if the format is not positive or the
// description is empty.
func (PackReader) Decode(data []byte) (PackSection, error) {
	var section PackSection

	err := sonic.Unmarshal(data, &section)
	if err != nil {
		return PackSection{}, fmt.Errorf("decode: %w", err)
	}

	if section.Format <= 0 {
		return PackSection{}, fmt.Errorf("%w: pack_format %d", ErrSectionInvalid, section.Format)
	}

	if section.Description == "" {
		return PackSection{}, fmt.Errorf("%w: empty description", ErrSectionInvalid)
	}

	return section, nil
}
