// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

// FileKind is the kind of an archive or tree entry. It determines which
// native calls are used to apply ownership and permissions.
type FileKind int

const (
	KindFile FileKind = iota + 1
	KindDirectory
	KindSymlink
)

func (k FileKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}
