// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"archive/tar"
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/ulikunitz/xz"
)

type tarReader struct {
	*tar.Reader
}

func newTarXZReader(r io.Reader) (entryReader, error) {
	xzReader, err := xz.NewReader(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("xz: %w", err)
	}

	return tarReader{tar.NewReader(xzReader)}, nil
}

func (r tarReader) Next() (*Entry, error) {
	hdr, err := r.Reader.Next()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	entry := &Entry{
		Name: hdr.Name,
		UID:  hdr.Uid,
		GID:  hdr.Gid,
		Mode: hdr.FileInfo().Mode() &^ fs.ModeType,
	}

	switch hdr.Typeflag {
	case tar.TypeReg:
		entry.Kind = KindFile
	case tar.TypeLink:
		entry.Kind = KindFile
		entry.HardLink = hdr.Linkname
	case tar.TypeDir:
		entry.Kind = KindDirectory
	case tar.TypeSymlink:
		entry.Kind = KindSymlink
		entry.LinkTarget = hdr.Linkname
	default:
		slog.Debug("Skipping archive entry",
			slog.String("name", hdr.Name),
			slog.String("type", string(hdr.Typeflag)))

		return nil, nil
	}

	return entry, nil
}

func (tarReader) Close() error {
	return nil
}
