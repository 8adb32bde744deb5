// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailbuild

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aibor/jailrun/internal/jailconf"
)

const tmpSuffix = ".tmp"

// ConfigPath returns the path of the configuration file of the jail. It is
// a sibling of the jail root.
func ConfigPath(cfg jailconf.Configuration) string {
	return sidecarPath(cfg, ".conf")
}

// FstabPath returns the path of the fstab of the jail. It is a sibling of
// the jail root.
func FstabPath(cfg jailconf.Configuration) string {
	return sidecarPath(cfg, ".fstab")
}

func sidecarPath(cfg jailconf.Configuration, suffix string) string {
	return filepath.Join(filepath.Dir(cfg.Path()), cfg.Name().String()+suffix)
}

// FstabLine returns the fstab entry that mounts base read-only into the
// jail root.
func FstabLine(base, root string) string {
	return base + " " + root + "/base nullfs ro 0 0\n"
}

// CreateJail copies the template into the root directory of the jail and
// writes the configuration file and fstab of the jail next to it.
//
// Base and template must be existing directories. The configuration file
// and fstab must not exist. Both files are written to temporary files first
// and renamed in place, fstab first. On failure, all four files are removed.
// The copied tree is left as is.
func (b *Builder) CreateJail(base, template string, cfg jailconf.Configuration) error {
	const op = "create jail"

	root := cfg.Path()
	configPath := ConfigPath(cfg)
	fstabPath := FstabPath(cfg)

	for _, path := range []string{base, template} {
		if err := requireDirectory(op, path); err != nil {
			return err
		}
	}

	for _, path := range []string{configPath, fstabPath} {
		if err := requireAbsent(op, path); err != nil {
			return err
		}
	}

	slog.Debug("Create jail",
		slog.String("root", root),
		slog.String("config", configPath),
		slog.String("fstab", fstabPath))

	var undo rollback
	for _, path := range []string{
		configPath + tmpSuffix,
		configPath,
		fstabPath + tmpSuffix,
		fstabPath,
	} {
		path := path
		undo.add(func() error { return removeIfExists(path) })
	}

	err := b.createJail(base, template, root, cfg)
	if err != nil {
		undo.run()
		return err
	}

	return nil
}

func (b *Builder) createJail(base, template, root string, cfg jailconf.Configuration) error {
	configPath := ConfigPath(cfg)
	fstabPath := FstabPath(cfg)

	if err := copyTree(b.Owner, template, root); err != nil {
		return fmt.Errorf("copy template: %w", err)
	}

	config, err := jailconf.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.WriteFile(configPath+tmpSuffix, config, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fstab := FstabLine(base, root)

	slog.Debug("Write fstab", slog.String("line", fstab))

	if err := os.WriteFile(fstabPath+tmpSuffix, []byte(fstab), 0o644); err != nil {
		return fmt.Errorf("write fstab: %w", err)
	}

	if err := b.renameFile(fstabPath+tmpSuffix, fstabPath); err != nil {
		return fmt.Errorf("commit fstab: %w", err)
	}

	if err := b.renameFile(configPath+tmpSuffix, configPath); err != nil {
		return fmt.Errorf("commit config: %w", err)
	}

	return nil
}
