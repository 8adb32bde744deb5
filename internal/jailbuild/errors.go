// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailbuild

import "errors"

var (
	// ErrAlreadyExists is returned if a path that is about to be created
	// exists already.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotDirectory is returned if a required directory is missing or not
	// a directory.
	ErrNotDirectory = errors.New("not a directory")
)
