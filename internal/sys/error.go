// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// NativeError is returned if a native ownership or permission call fails.
// It carries the name of the failing function, the target path and the OS
// error number.
type NativeError struct {
	Func  string
	Path  string
	Errno syscall.Errno
}

// Error implements the [error] interface.
func (e *NativeError) Error() string {
	name := unix.ErrnoName(e.Errno)
	if name == "" {
		name = "errno"
	}

	return fmt.Sprintf("%s %s: %s (%d): %s",
		e.Func, e.Path, name, int(e.Errno), e.Errno.Error())
}

// Is implements the [errors.Is] interface.
func (*NativeError) Is(other error) bool {
	_, ok := other.(*NativeError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *NativeError) Unwrap() error {
	return e.Errno
}

func nativeError(fn, path string, err error) error {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return fmt.Errorf("%s %s: %w", fn, path, err)
	}

	return &NativeError{
		Func:  fn,
		Path:  path,
		Errno: errno,
	}
}
