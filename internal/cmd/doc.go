// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for jailrun. It handles
// the command tree, settings, logging and mapping of errors to exit codes.
package cmd
