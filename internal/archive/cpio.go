// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/cavaliergopher/cpio"
)

type cpioReader struct {
	*cpio.Reader
}

func newCPIOReader(r io.Reader) (entryReader, error) {
	return cpioReader{cpio.NewReader(r)}, nil
}

func (r cpioReader) Next() (*Entry, error) {
	hdr, err := r.Reader.Next()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	mode := hdr.FileInfo().Mode()

	entry := &Entry{
		Name: hdr.Name,
		UID:  hdr.Uid,
		GID:  hdr.Guid,
		Mode: mode &^ fs.ModeType,
	}

	switch {
	case mode.IsRegular():
		entry.Kind = KindFile
	case mode.IsDir():
		entry.Kind = KindDirectory
	case mode&fs.ModeSymlink != 0:
		entry.Kind = KindSymlink
		entry.LinkTarget = hdr.Linkname
	default:
		slog.Debug("Skipping archive entry",
			slog.String("name", hdr.Name),
			slog.String("mode", fmt.Sprintf("%o", uint32(hdr.Mode))))

		return nil, nil
	}

	return entry, nil
}

func (cpioReader) Close() error {
	return nil
}
