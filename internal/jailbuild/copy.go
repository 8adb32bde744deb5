// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailbuild

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aibor/jailrun/internal/archive"
	"github.com/aibor/jailrun/internal/sys"
)

// copyTree copies the tree at source into target. Ownership and mode of
// files and directories are copied with owner. Symbolic links are recreated
// with their original link text. Their ownership and mode are not copied.
func copyTree(owner archive.Owner, source, target string) error {
	return filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return fmt.Errorf("relative path: %w", err)
		}

		dest := filepath.Join(target, rel)

		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			return copyLink(path, dest)
		case entry.Type().IsRegular():
			if err := copyFile(path, dest); err != nil {
				return err
			}

			return copyOwnership(owner, path, dest, archive.KindFile)
		case entry.IsDir():
			slog.Debug("Create directory", slog.String("path", dest))

			if err := os.MkdirAll(dest, dirMode); err != nil {
				return err //nolint:wrapcheck
			}

			return copyOwnership(owner, path, dest, archive.KindDirectory)
		default:
			slog.Debug("Skipping special file", slog.String("path", path))
			return nil
		}
	})
}

func copyLink(source, dest string) error {
	target, err := os.Readlink(source)
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Copy link",
		slog.String("source", source),
		slog.String("path", dest),
		slog.String("target", target))

	return os.Symlink(target, dest) //nolint:wrapcheck
}

func copyFile(source, dest string) error {
	slog.Debug("Copy file",
		slog.String("source", source),
		slog.String("path", dest))

	src, err := os.Open(source)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer src.Close()

	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("copy %s: %w", source, err)
	}

	return dst.Close() //nolint:wrapcheck
}

// copyOwnership applies the ownership and mode of source to dest.
func copyOwnership(owner archive.Owner, source, dest string, kind archive.FileKind) error {
	info, err := os.Lstat(source)
	if err != nil {
		return err //nolint:wrapcheck
	}

	uid, gid, err := sys.Ownership(info)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	return archive.ApplyOwnership(owner, dest, kind, uid, gid, info.Mode()&^fs.ModeType)
}
