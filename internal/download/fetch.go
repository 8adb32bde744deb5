// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Defaults for [FetchOptions].
const (
	DefaultMaxAttempts = 10
	DefaultInterval    = 3 * time.Second
)

// TempSuffix is appended to the target path while the download is in
// progress.
const TempSuffix = ".tmp"

// Getter performs a single download attempt. It is implemented by
// [Downloader] and [Worker].
type Getter interface {
	Download(ctx context.Context, req Request) error
}

// FetchOptions configures the retry behavior of [Fetch].
type FetchOptions struct {
	// MaxAttempts is the maximum number of attempts. Values <= 0 mean
	// unlimited attempts.
	MaxAttempts int
	// Interval is the time to wait between attempts.
	Interval time.Duration
}

// Fetch downloads the file described by req into a temporary file next to
// req.File and retries failed attempts. Each attempt resumes the partial
// temporary file. Once complete, the temporary file replaces req.File.
//
// Cancellation and invalid URLs are not retried. If all attempts fail, an
// [AttemptsExhaustedError] wrapping the last error is returned.
func Fetch(ctx context.Context, getter Getter, req Request, opts FetchOptions) error {
	target := req.File
	req.File = target + TempSuffix

	for attempt := 1; ; attempt++ {
		err := getter.Download(ctx, req)
		if err == nil {
			break
		}

		if errors.Is(err, ErrCancelled) || errors.Is(err, ErrInvalidURL) {
			return err
		}

		if opts.MaxAttempts > 0 && attempt >= opts.MaxAttempts {
			return &AttemptsExhaustedError{Attempts: attempt, Err: err}
		}

		slog.Warn("Download attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", opts.MaxAttempts),
			slog.Duration("retry_in", opts.Interval),
			slog.Any("error", err))

		if err := sleep(ctx, opts.Interval); err != nil {
			return err
		}
	}

	if err := os.Rename(req.File, target); err != nil {
		return fmt.Errorf("move download into place: %w", err)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return checkpoint(ctx)
	}
}
