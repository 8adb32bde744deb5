// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jailbuild creates the directory trees jails run in.
//
// A base tree is the extracted OS release. It is shared read-only by all
// jails of a release. A template tree is derived once from the base and
// holds the mutable parts of the system, with symbolic links into the base
// for everything else. Each jail root is a copy of the template accompanied
// by a configuration file and an fstab that mounts the base into the jail.
package jailbuild
