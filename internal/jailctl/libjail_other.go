// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !freebsd || !cgo

package jailctl

import (
	"errors"
	"syscall"
)

// LibJail is not available on this platform.
type LibJail struct{}

// NewLibJail returns [errors.ErrUnsupported] on this platform.
func NewLibJail() (*LibJail, error) {
	return nil, errors.ErrUnsupported
}

func (*LibJail) Close() error {
	return nil
}

func (*LibJail) Init(int, string) (int, error) {
	return -1, errors.ErrUnsupported
}

func (*LibJail) Import(int, string) (int, error) {
	return -1, errors.ErrUnsupported
}

func (*LibJail) Set(int, Flags) (int, error) {
	return -1, errors.ErrUnsupported
}

func (*LibJail) Free(int) {}

func (*LibJail) Exec(string, []string, []string) error {
	return errors.ErrUnsupported
}

func (*LibJail) StrError(errno syscall.Errno) string {
	return errno.Error()
}
