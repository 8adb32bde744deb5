// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailctl

import "syscall"

// Flags are the flags passed to [ParamAPI.Set].
type Flags int

// Values as defined in sys/jail.h.
const (
	FlagCreate Flags = 0x01
	FlagUpdate Flags = 0x02
	FlagAttach Flags = 0x04
	FlagDying  Flags = 0x08
)

// ParamAPI is the native jail parameter interface. Parameters are stored in
// slots addressed by index. On failure, the methods return the raw return
// value of the native function and the OS error number as
// [syscall.Errno].
type ParamAPI interface {
	// Init prepares the slot at index for the parameter with the given name.
	Init(index int, name string) (int, error)
	// Import sets the value of the parameter at index from its text form.
	Import(index int, value string) (int, error)
	// Set creates or updates a jail from the first count parameters. It
	// returns the jail ID.
	Set(count int, flags Flags) (int, error)
	// Free releases the first count parameters.
	Free(count int)
	// Exec replaces the current process image. It does not return on
	// success.
	Exec(argv0 string, argv []string, envv []string) error
	// StrError returns the text for the given error number.
	StrError(errno syscall.Errno) string
}

var _ ParamAPI = (*LibJail)(nil)
