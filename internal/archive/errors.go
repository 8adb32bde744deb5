// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import "errors"

// ErrUnknownFormat is returned if an archive format can not be inferred or
// is not supported.
var ErrUnknownFormat = errors.New("unknown archive format")
