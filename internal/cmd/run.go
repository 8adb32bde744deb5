// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aibor/jailrun/internal/jailconf"
)

// Exit codes returned by [Run].
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func handleRunError(err error) int {
	if errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
		return ExitUsage
	}

	// Report each configuration error on its own, so all of them are
	// visible at once.
	var configErrs jailconf.ConfigErrors
	if errors.As(err, &configErrs) {
		for _, configErr := range configErrs {
			slog.Error(configErr.Error())
		}

		return ExitError
	}

	slog.Error(err.Error())

	return ExitError
}

// Run is the main entry point for the CLI command. Args are the arguments
// without the program name.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, slog.LevelInfo)

	root := newRootCommand(cfg)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		return handleRunError(err)
	}

	return ExitOK
}
