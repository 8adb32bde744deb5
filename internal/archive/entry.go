// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"io"
	"io/fs"
)

// Entry is a single archive member normalized over all formats.
type Entry struct {
	Name string
	Kind FileKind
	// LinkTarget is the raw link text of symbolic links.
	LinkTarget string
	// HardLink is the archive name of the file a regular file entry is a
	// hard link to, if any.
	HardLink string
	UID      int
	GID      int
	Mode     fs.FileMode
}

// entryReader iterates over the entries of an archive. Read reads the
// content of the current entry. Next returns [io.EOF] if there are no more
// entries. A nil entry with nil error is returned for entries of kinds that
// are not extracted.
type entryReader interface {
	io.Reader
	Next() (*Entry, error)
	Close() error
}
