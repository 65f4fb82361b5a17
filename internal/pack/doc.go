// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pack provides a virtual resource pack. It is a read-only, in-memory
// file set that presents generated files as if they were a namespaced
// resource archive.
//
// File content is not stored in the pack itself. Instead, each path is mapped
// to a [Supplier] that produces the current content whenever the file is
// opened. Paths have the form "<type>/<namespace>/<path...>", for example
// "data/mymod/recipes/foo.json".
//
// Besides the resource pack queries, a [Pack] implements [io/fs.FS] with
// directories synthesized from the file paths, so it can be walked and
// archived like any other file system.
package pack
