// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Arch is an architecture name as used in the release directory layout of
// FreeBSD mirrors.
type Arch string

// Supported architectures.
const (
	AMD64   Arch = "amd64"
	ARM64   Arch = "arm64"
	I386    Arch = "i386"
	RISCV64 Arch = "riscv"
)

var goArchs = map[string]Arch{
	"amd64":   AMD64,
	"arm64":   ARM64,
	"386":     I386,
	"riscv64": RISCV64,
}

// ArchFor returns the release directory name for the given GOARCH.
func ArchFor(goarch string) (Arch, error) {
	arch, exists := goArchs[goarch]
	if !exists {
		return "", fmt.Errorf("%s: %w", goarch, ErrArchNotSupported)
	}

	return arch, nil
}

// NativeArch returns the release directory name of the running system.
func NativeArch() (Arch, error) {
	return ArchFor(runtime.GOARCH)
}

// Release returns the release of the running kernel as reported by uname,
// e.g. "14.1-RELEASE".
func Release() (string, error) {
	var uts unix.Utsname

	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}

	return unix.ByteSliceToString(uts.Release[:]), nil
}
