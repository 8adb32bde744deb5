// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package download

import "errors"

var (
	// ErrCancelled is returned if a download is cancelled at one of its
	// checkpoints. It is not an I/O failure.
	ErrCancelled = errors.New("download cancelled")

	// ErrInvalidURL is returned if the remote URL can not be built. It is
	// not retried.
	ErrInvalidURL = errors.New("invalid remote URL")

	// ErrNoContentLength is returned if the server does not report a usable
	// Content-Length for the remote file.
	ErrNoContentLength = errors.New("no usable Content-Length")

	// ErrNoBody is returned if the server response has no body.
	ErrNoBody = errors.New("no response body")

	// ErrWorkerClosed is returned if a download is submitted to a closed
	// [Worker].
	ErrWorkerClosed = errors.New("worker closed")
)
