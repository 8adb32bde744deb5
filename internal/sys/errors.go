// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrArchNotSupported is returned if there is no release directory
	// naming for the requested architecture.
	ErrArchNotSupported = errors.New("architecture not supported")

	// ErrNoOwnership is returned if the ownership of a file can not be
	// determined from its [fs.FileInfo].
	ErrNoOwnership = errors.New("no ownership information")
)
