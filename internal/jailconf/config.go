// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailconf

import (
	"net/netip"
	"slices"
)

// Configuration is the validated configuration of a single jail. It is
// immutable. All slices returned by its methods are copies.
type Configuration struct {
	path         string
	name         Name
	ipv4         []netip.Addr
	ipv6         []netip.Addr
	hostname     string
	startCommand []string
}

// New creates a new [Configuration].
//
// It returns [ErrNoAddresses] if both address lists are empty and
// [ErrEmptyCommand] if startCommand is empty.
func New(
	path string,
	name Name,
	ipv4 []netip.Addr,
	ipv6 []netip.Addr,
	hostname string,
	startCommand []string,
) (Configuration, error) {
	if len(ipv4) == 0 && len(ipv6) == 0 {
		return Configuration{}, ErrNoAddresses
	}

	if len(startCommand) == 0 {
		return Configuration{}, ErrEmptyCommand
	}

	return Configuration{
		path:         path,
		name:         name,
		ipv4:         slices.Clone(ipv4),
		ipv6:         slices.Clone(ipv6),
		hostname:     hostname,
		startCommand: slices.Clone(startCommand),
	}, nil
}

// Path is the root directory of the jail.
func (c Configuration) Path() string {
	return c.path
}

// Name is the name of the jail.
func (c Configuration) Name() Name {
	return c.name
}

// IPv4 returns the IPv4 addresses of the jail in configuration order.
func (c Configuration) IPv4() []netip.Addr {
	return slices.Clone(c.ipv4)
}

// IPv6 returns the IPv6 addresses of the jail in configuration order.
func (c Configuration) IPv6() []netip.Addr {
	return slices.Clone(c.ipv6)
}

func (c Configuration) Hostname() string {
	return c.hostname
}

// StartCommand returns the argument vector executed inside the jail.
func (c Configuration) StartCommand() []string {
	return slices.Clone(c.startCommand)
}

// Equal reports whether both configurations are equal in every field.
func (c Configuration) Equal(other Configuration) bool {
	return c.path == other.path &&
		c.name == other.name &&
		c.hostname == other.hostname &&
		slices.Equal(c.ipv4, other.ipv4) &&
		slices.Equal(c.ipv6, other.ipv6) &&
		slices.Equal(c.startCommand, other.startCommand)
}
