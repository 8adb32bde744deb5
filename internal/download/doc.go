// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package download fetches release archives over HTTP. Downloads resume from
// the size of an existing target file, so repeated attempts continue where
// the previous one stopped.
package download
