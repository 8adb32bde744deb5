// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"archive/tar"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/cavaliergopher/cpio"
	"github.com/ulikunitz/xz"
)

// TestEntry describes an entry written by [WriteTestArchive].
type TestEntry struct {
	Name     string
	Kind     FileKind
	Body     []byte
	Linkname string
	UID      int
	GID      int
	Mode     fs.FileMode
}

// WriteTestArchive writes an archive of the given format containing the
// given entries to path.
func WriteTestArchive(tb testing.TB, path string, format Format, entries []TestEntry) {
	tb.Helper()

	file, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create archive: %v", err)
	}
	defer file.Close()

	switch format {
	case FormatTarXZ:
		err = writeTestTarXZ(file, entries)
	case FormatCPIO:
		err = writeTestCPIO(file, entries)
	default:
		err = ErrUnknownFormat
	}

	if err != nil {
		tb.Fatalf("write archive: %v", err)
	}
}

func writeTestTarXZ(w io.Writer, entries []TestEntry) error {
	xzWriter, err := xz.NewWriter(w)
	if err != nil {
		return err //nolint:wrapcheck
	}

	tarWriter := tar.NewWriter(xzWriter)

	for _, entry := range entries {
		hdr := &tar.Header{
			Name:     entry.Name,
			Linkname: entry.Linkname,
			Mode:     int64(entry.Mode.Perm()),
			Uid:      entry.UID,
			Gid:      entry.GID,
			Size:     int64(len(entry.Body)),
			Format:   tar.FormatPAX,
		}

		switch entry.Kind {
		case KindFile:
			hdr.Typeflag = tar.TypeReg
		case KindDirectory:
			hdr.Typeflag = tar.TypeDir
		case KindSymlink:
			hdr.Typeflag = tar.TypeSymlink
		}

		if err := tarWriter.WriteHeader(hdr); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := tarWriter.Write(entry.Body); err != nil {
			return err //nolint:wrapcheck
		}
	}

	if err := tarWriter.Close(); err != nil {
		return err //nolint:wrapcheck
	}

	return xzWriter.Close() //nolint:wrapcheck
}

func writeTestCPIO(w io.Writer, entries []TestEntry) error {
	cpioWriter := cpio.NewWriter(w)

	for _, entry := range entries {
		hdr := &cpio.Header{
			Name: entry.Name,
			Mode: cpio.FileMode(entry.Mode.Perm()),
			Uid:  entry.UID,
			Guid: entry.GID,
			Size: int64(len(entry.Body)),
		}

		body := entry.Body

		switch entry.Kind {
		case KindFile:
			hdr.Mode |= cpio.TypeReg
		case KindDirectory:
			hdr.Mode |= cpio.TypeDir
		case KindSymlink:
			hdr.Mode |= cpio.TypeSymlink
			body = []byte(entry.Linkname)
			hdr.Size = int64(len(body))
		}

		if err := cpioWriter.WriteHeader(hdr); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := cpioWriter.Write(body); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return cpioWriter.Close() //nolint:wrapcheck
}
