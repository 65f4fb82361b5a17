// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package verify checks all files of a virtual pack for problems that would
// make the pack skip or fail on them at runtime.
package verify
