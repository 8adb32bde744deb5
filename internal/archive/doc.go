// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive extracts OS image archives onto disk while replicating the
// ownership and permissions recorded in the archive.
package archive
