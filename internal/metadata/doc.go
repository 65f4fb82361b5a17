// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metadata provides the pack level metadata document of virtual packs
// and readers that decode its sections into typed values.
//
// The document is a JSON object with one key per section. Virtual packs only
// ever provide the [PackSectionKey] section:
//
//	{"pack": {"pack_format": 15, "description": "..."}}
package metadata
