// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailbuild

import (
	"log/slog"
	"slices"
)

// rollback collects functions that undo partially applied changes. They are
// run in reverse order of registration.
type rollback struct {
	fns []func() error
}

func (r *rollback) add(fn func() error) {
	r.fns = append(r.fns, fn)
}

// run calls all registered functions. Errors are logged and do not stop
// the remaining functions.
func (r *rollback) run() {
	fns := slices.Clone(r.fns)
	slices.Reverse(fns)

	for _, fn := range fns {
		if err := fn(); err != nil {
			slog.Warn("Rollback failed", slog.Any("error", err))
		}
	}
}
