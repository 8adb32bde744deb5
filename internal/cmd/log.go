// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"log/slog"
)

func setupLogging(writer io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)))
}

// logLevel returns the level for the given name. Debug takes precedence.
func logLevel(name string, debug bool) (slog.Level, error) {
	if debug {
		return slog.LevelDebug, nil
	}

	var level slog.Level

	err := level.UnmarshalText([]byte(name))
	if err != nil {
		return 0, &ParseArgsError{
			msg: fmt.Sprintf("invalid log level %q", name),
			err: err,
		}
	}

	return level, nil
}
