// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sys wraps the native calls used to replicate file ownership and
// permissions and to query the running system.
package sys
