// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailbuild

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aibor/jailrun/internal/archive"
)

// TemplateDirectories are created in each template. The jail mounts the base
// at "base" and keeps its own devfs, procfs and temporary files.
var TemplateDirectories = []string{
	"base",
	"dev",
	"proc",
	"tmp",
	"usr",
}

// TemplateMovedDirectories are moved from the base into the template. They
// hold the mutable state of the system.
var TemplateMovedDirectories = []string{
	"etc",
	"var",
}

// TemplateLinks are the immutable parts of the base system. Each is linked
// from the template into the base.
var TemplateLinks = []string{
	"bin",
	"boot",
	"lib",
	"libexec",
	"rescue",
	"sbin",
	"usr/bin",
	"usr/include",
	"usr/lib",
	"usr/libdata",
	"usr/libexec",
	"usr/sbin",
	"usr/share",
	"usr/src",
	"usr/lib32",
	"usr/games",
	"usr/ports",
	"sys",
}

// Builder creates base, template and jail trees. Ownership and permissions
// are applied with its Owner.
type Builder struct {
	Owner archive.Owner

	// rename is used to commit files. It defaults to [os.Rename].
	rename func(oldpath, newpath string) error
}

func (b *Builder) renameFile(oldpath, newpath string) error {
	if b.rename != nil {
		return b.rename(oldpath, newpath)
	}

	return os.Rename(oldpath, newpath) //nolint:wrapcheck
}

// CreateBase extracts the archive into base and derives the template from
// it. Neither base nor template may exist.
//
// The template links point to "/<name of base>/<dir>", so the base tree
// must be visible under its own name at the root of the jail.
//
// On failure, partially created trees are left as is.
func (b *Builder) CreateBase(
	ctx context.Context,
	archivePath string,
	format archive.Format,
	base string,
	template string,
) error {
	for _, path := range []string{base, template} {
		if err := requireAbsent("create base", path); err != nil {
			return err
		}
	}

	extractor := archive.Extractor{Owner: b.Owner}

	slog.Info("Extracting base archive",
		slog.String("archive", archivePath),
		slog.String("base", base))

	if err := extractor.Extract(ctx, archivePath, format, base); err != nil {
		return fmt.Errorf("extract base: %w", err)
	}

	slog.Info("Creating template", slog.String("template", template))

	return b.createTemplate(base, template)
}

func (b *Builder) createTemplate(base, template string) error {
	for _, dir := range TemplateDirectories {
		path := filepath.Join(template, dir)

		slog.Debug("Create directory", slog.String("path", path))

		if err := os.MkdirAll(path, dirMode); err != nil {
			return fmt.Errorf("create template directory: %w", err)
		}
	}

	for _, dir := range TemplateMovedDirectories {
		source := filepath.Join(base, dir)
		target := filepath.Join(template, dir)

		slog.Debug("Move directory",
			slog.String("source", source),
			slog.String("target", target))

		if err := b.renameFile(source, target); err != nil {
			return fmt.Errorf("move %s into template: %w", dir, err)
		}
	}

	baseName := filepath.Base(base)

	for _, name := range TemplateLinks {
		path := filepath.Join(template, name)
		target := "/" + baseName + "/" + name

		slog.Debug("Create link",
			slog.String("path", path),
			slog.String("target", target))

		if err := os.Symlink(target, path); err != nil {
			return fmt.Errorf("create template link: %w", err)
		}
	}

	return nil
}
