// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"path/filepath"
)

// pathFlag is a path given with the flag of the same name.
type pathFlag struct {
	name  string
	value *string
}

// absolutePaths replaces the values of all given path flags by their
// absolute form. Empty paths are rejected.
func absolutePaths(flags ...pathFlag) error {
	for _, flag := range flags {
		msg := fmt.Sprintf("flag --%s", flag.name)

		if *flag.value == "" {
			return &ParseArgsError{msg: msg, err: ErrEmptyPath}
		}

		abs, err := filepath.Abs(*flag.value)
		if err != nil {
			return &ParseArgsError{msg: msg, err: err}
		}

		*flag.value = abs
	}

	return nil
}
