// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const dirMode = 0o755

// Owner applies ownership and permissions to files. The link variants must
// not follow symbolic links.
type Owner interface {
	Chown(path string, uid, gid int) error
	Chmod(path string, mode fs.FileMode) error
	Lchown(path string, uid, gid int) error
	Lchmod(path string, mode fs.FileMode) error
}

// Extractor unpacks archives. Ownership and permissions of all extracted
// entries are applied with its [Owner].
type Extractor struct {
	Owner Owner
}

// Extract unpacks the archive at archivePath into root. Entries are
// processed strictly in archive order. Entry names are always resolved
// below root.
//
// On failure the partially extracted tree is left as is.
func (e *Extractor) Extract(
	ctx context.Context,
	archivePath string,
	format Format,
	root string,
) error {
	spec, exists := formats[format]
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	file, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	reader, err := spec.open(file)
	if err != nil {
		return fmt.Errorf("open %s archive %s: %w", format, archivePath, err)
	}
	defer reader.Close()

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("extract: %w", err)
		}

		entry, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("read archive %s: %w", archivePath, err)
		}

		if entry == nil {
			continue
		}

		if err := e.extractEntry(root, entry, reader); err != nil {
			return fmt.Errorf("unpack %s: %w", entry.Name, err)
		}
	}
}

// resolve returns the path of name below root. Leading slashes and parent
// directory references can not lead out of root.
func resolve(root, name string) string {
	return filepath.Join(root, filepath.Clean("/"+name))
}

// linkTarget resolves the raw link text relative to the directory of the
// link located at path. Absolute link text is used as is.
func linkTarget(path, text string) string {
	if filepath.IsAbs(text) {
		return text
	}

	return filepath.Join(filepath.Dir(path), text)
}

func (e *Extractor) extractEntry(root string, entry *Entry, content io.Reader) error {
	path := resolve(root, entry.Name)

	slog.Debug("Unpack",
		slog.String("kind", entry.Kind.String()),
		slog.String("name", entry.Name),
		slog.String("path", path),
		slog.Int("uid", entry.UID),
		slog.Int("gid", entry.GID),
		slog.String("mode", fmt.Sprintf("%o", entry.Mode)),
	)

	var err error

	switch entry.Kind {
	case KindFile:
		if entry.HardLink != "" {
			err = createHardLink(path, resolve(root, entry.HardLink))
		} else {
			err = createFile(path, content)
		}
	case KindDirectory:
		err = os.MkdirAll(path, dirMode)
	case KindSymlink:
		target := linkTarget(path, entry.LinkTarget)
		slog.Debug("Link target", slog.String("target", target))
		err = createSymlink(path, target)
	}

	if err != nil {
		return err //nolint:wrapcheck
	}

	return ApplyOwnership(e.Owner, path, entry.Kind, entry.UID, entry.GID, entry.Mode)
}

// ApplyOwnership sets ownership and then permissions of path. Symbolic links
// are handled with the link variants of [Owner]. Ownership is applied first,
// so set-id bits are not cleared by the ownership change.
func ApplyOwnership(
	owner Owner,
	path string,
	kind FileKind,
	uid, gid int,
	mode fs.FileMode,
) error {
	if kind == KindSymlink {
		if err := owner.Lchown(path, uid, gid); err != nil {
			return err //nolint:wrapcheck
		}

		return owner.Lchmod(path, mode) //nolint:wrapcheck
	}

	if err := owner.Chown(path, uid, gid); err != nil {
		return err //nolint:wrapcheck
	}

	return owner.Chmod(path, mode) //nolint:wrapcheck
}

func createFile(path string, content io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err //nolint:wrapcheck
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = io.Copy(file, content)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("write: %w", err)
	}

	return file.Close() //nolint:wrapcheck
}

func createHardLink(path, target string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err //nolint:wrapcheck
	}

	return os.Link(target, path) //nolint:wrapcheck
}

func createSymlink(path, target string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err //nolint:wrapcheck
	}

	return os.Symlink(target, path) //nolint:wrapcheck
}
