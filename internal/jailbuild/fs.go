// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailbuild

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const dirMode = 0o755

func requireDirectory(op, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &fs.PathError{Op: op, Path: path, Err: ErrNotDirectory}
	}

	return nil
}

func requireAbsent(op, path string) error {
	_, err := os.Lstat(path)
	if err == nil {
		return &fs.PathError{Op: op, Path: path, Err: ErrAlreadyExists}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err //nolint:wrapcheck
	}

	return nil
}
