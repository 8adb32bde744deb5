// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"io/fs"
	"syscall"
)

// Ownership returns the numeric owner and group recorded in info.
//
// It returns [ErrNoOwnership] if info does not carry native stat data.
func Ownership(info fs.FileInfo) (int, int, error) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok || stat == nil {
		return 0, 0, ErrNoOwnership
	}

	return int(stat.Uid), int(stat.Gid), nil
}
