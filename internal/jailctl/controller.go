// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailctl

import (
	"errors"
	"log/slog"
	"syscall"

	"github.com/aibor/jailrun/internal/jailconf"
)

// Controller starts jails using its [ParamAPI].
type Controller struct {
	API ParamAPI
}

// Start creates a jail as described by cfg, attaches the current process to
// it and replaces the process image with the start command of cfg. The
// command is run with an empty environment.
//
// A configuration without start command is rejected before any jail
// parameter is initialized.
//
// Start does not return on success. On failure, the returned error is one
// of [ParamInitError], [ParamImportError], [ConfigureError] or
// [ExecError]. All initialized parameters are released before it returns.
func (c *Controller) Start(cfg jailconf.Configuration) error {
	command := cfg.StartCommand()
	if len(command) == 0 {
		return &ExecError{Err: jailconf.ErrEmptyCommand}
	}

	set := paramSet{api: c.API}
	defer set.release()

	for _, p := range params(cfg) {
		if err := set.add(p); err != nil {
			return err
		}
	}

	code, err := c.API.Set(set.count, FlagCreate|FlagAttach)
	if err != nil {
		return &ConfigureError{
			nativeFailure: set.failure("jailparam_set", code, err),
		}
	}

	slog.Debug("Jail created", slog.Int("jid", code))

	slog.Debug("Exec start command", slog.Any("command", command))

	err = c.API.Exec(command[0], command, []string{})
	if err == nil {
		err = ErrExecReturned
	}

	execErr := &ExecError{Command: command, Err: err}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		execErr.Message = c.API.StrError(errno)
	}

	return execErr
}
