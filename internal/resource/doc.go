// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package resource provides the resource system's vocabulary used by virtual
// packs: resource types, namespaced identifiers and the [Host] that defines
// the identifier grammar and the directory name of each resource type.
package resource
