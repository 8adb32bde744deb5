// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jailctl creates and enters jails with the jail parameter API of
// the FreeBSD kernel.
//
// The native interface is abstracted by [ParamAPI]. [LibJail] implements it
// with libjail on FreeBSD. Other platforms only get a stub returning
// [errors.ErrUnsupported].
package jailctl
