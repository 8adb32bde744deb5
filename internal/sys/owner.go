// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"errors"
	"io/fs"
	"log/slog"

	"golang.org/x/sys/unix"
)

// Native sets ownership and permissions with the native system calls. Its
// zero value is ready to use.
type Native struct{}

// Chown changes the owner of path, following symbolic links.
func (Native) Chown(path string, uid, gid int) error {
	return nativeError("chown", path, unix.Chown(path, uid, gid))
}

// Chmod changes the mode of path, following symbolic links.
func (Native) Chmod(path string, mode fs.FileMode) error {
	return nativeError("chmod", path, unix.Chmod(path, UnixMode(mode)))
}

// Lchown changes the owner of path without following symbolic links.
func (Native) Lchown(path string, uid, gid int) error {
	return nativeError("lchown", path, unix.Lchown(path, uid, gid))
}

// Lchmod changes the mode of path without following symbolic links.
//
// Systems without support for symbolic link modes report EOPNOTSUPP. The
// mode of a link is not used for access checks there, so this is not
// treated as failure.
func (Native) Lchmod(path string, mode fs.FileMode) error {
	err := unix.Fchmodat(unix.AT_FDCWD, path, UnixMode(mode),
		unix.AT_SYMLINK_NOFOLLOW)
	if errors.Is(err, unix.EOPNOTSUPP) {
		slog.Debug("lchmod not supported", slog.String("path", path))
		return nil
	}

	return nativeError("lchmod", path, err)
}

// UnixMode converts the permission and special bits of mode into the
// representation used by the system calls.
func UnixMode(mode fs.FileMode) uint32 {
	bits := uint32(mode.Perm())

	if mode&fs.ModeSetuid != 0 {
		bits |= unix.S_ISUID
	}

	if mode&fs.ModeSetgid != 0 {
		bits |= unix.S_ISGID
	}

	if mode&fs.ModeSticky != 0 {
		bits |= unix.S_ISVTX
	}

	return bits
}
