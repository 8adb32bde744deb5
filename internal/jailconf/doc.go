// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jailconf provides the validated jail configuration and its
// properties file representation.
//
// A [Configuration] can only be obtained from [New] or from the validating
// [Parse] and [Load] functions. Validation collects all field errors of a
// file and returns them together as [ConfigErrors].
package jailconf
