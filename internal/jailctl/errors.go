// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailctl

import "errors"

var (
	// ErrExecReturned is returned if the process image replacement returned
	// without reporting an error.
	ErrExecReturned = errors.New("exec returned without error")

	// ErrTooManyParams is returned if more parameters are initialized than
	// the parameter storage can hold.
	ErrTooManyParams = errors.New("too many jail parameters")
)
