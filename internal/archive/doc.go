// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive writes file systems as CPIO archives, optionally
// compressed. It is used to export the current content of virtual packs, so
// they can be inspected or shipped without the program that generates them.
package archive
