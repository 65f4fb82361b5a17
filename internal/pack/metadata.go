// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"log/slog"

	"github.com/aibor/virtpack/internal/metadata"
)

// ParseMetadata decodes the section of the pack's metadata document that the
// reader asks for.
//
// Virtual packs only have the pack section with the pack format and
// [metadata.Description]. For any other key false is returned. If the
// section can not be decoded, the error is logged and false is returned.
func ParseMetadata[T any](p *Pack, reader metadata.Reader[T]) (T, bool) {
	var zero T

	key := reader.Key()
	doc := metadata.NewPackDocument(p.packFormat)

	data, exists, err := doc.Section(key)
	if !exists {
		return zero, false
	}

	if err == nil {
		var value T

		value, err = reader.Decode(data)
		if err == nil {
			return value, true
		}
	}

	p.logger.Error("Couldn't load metadata from virtual pack",
		slog.String("pack", p.Name()),
		slog.String("section", key),
		slog.Any("error", err),
	)

	return zero, false
}
