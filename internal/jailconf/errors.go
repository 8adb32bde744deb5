// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailconf

import "errors"

var (
	// ErrNoAddresses is returned if a configuration has neither IPv4 nor IPv6
	// addresses.
	ErrNoAddresses = errors.New("jails must have at least one IPv4 or IPv6 address")

	// ErrInvalidName is returned if a jail name does not match [NamePattern].
	ErrInvalidName = errors.New("jail name is not valid")

	// ErrEmptyCommand is returned if a configuration has no start command.
	ErrEmptyCommand = errors.New("jail start command must not be empty")
)
