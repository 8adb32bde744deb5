// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// ChunkSize is the size of the buffer the response body is read with.
// Progress is reported and cancellation is checked once per chunk.
const ChunkSize = 4096

// ProgressFunc is called with the size of the remote file and the number of
// bytes present locally, including bytes from previous attempts.
type ProgressFunc func(expected, received int64)

// Request describes a single remote file and its local target.
type Request struct {
	// File is the local target path. Existing content is resumed.
	File    string
	BaseURL string
	Arch    string
	Release string
	Archive string
	// Progress is called after each received chunk, if set.
	Progress ProgressFunc
}

// RemoteURL joins base, arch, release and archive name into the URL of the
// remote file.
//
// It returns [ErrInvalidURL] if the result can not be parsed or is not
// absolute.
func RemoteURL(base, arch, release, archive string) (*url.URL, error) {
	raw := strings.Join([]string{
		strings.TrimSuffix(base, "/"), arch, release, archive,
	}, "/")

	remote, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if remote.Scheme == "" || remote.Host == "" {
		return nil, fmt.Errorf("%w: %s: not absolute", ErrInvalidURL, raw)
	}

	return remote, nil
}

// Downloader downloads remote files with resume support. Its zero value
// uses [http.DefaultClient].
type Downloader struct {
	Client *http.Client
}

func (d *Downloader) client() *http.Client {
	if d.Client == nil {
		return http.DefaultClient
	}

	return d.Client
}

// Download fetches the remote file described by req into req.File. If
// req.File exists, its size is used as offset to resume from. It blocks
// until the download is finished.
//
// Cancellation of ctx is checked before each request and before reading
// each chunk. It results in an error matching [ErrCancelled].
func (d *Downloader) Download(ctx context.Context, req Request) error {
	remote, err := RemoteURL(req.BaseURL, req.Arch, req.Release, req.Archive)
	if err != nil {
		return err
	}

	if err := checkpoint(ctx); err != nil {
		return err
	}

	expected, err := d.remoteSize(ctx, remote)
	if err != nil {
		return err
	}

	offset, err := localSize(req.File)
	if err != nil {
		return err
	}

	if offset == expected {
		slog.Debug("Download already complete",
			slog.String("file", req.File),
			slog.Int64("size", offset))

		return nil
	}

	if offset > expected {
		slog.Warn("Local file larger than remote file, restarting download",
			slog.String("file", req.File),
			slog.Int64("local", offset),
			slog.Int64("remote", expected))

		offset = 0
	}

	if err := checkpoint(ctx); err != nil {
		return err
	}

	resp, err := d.get(ctx, remote, offset)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Without a partial response the body starts at the beginning of the
	// remote file, so the local file is rewritten from scratch.
	if offset > 0 && resp.StatusCode != http.StatusPartialContent {
		slog.Warn("Server ignored range request, restarting download",
			slog.String("file", req.File),
			slog.Int("status", resp.StatusCode))

		offset = 0
	}

	flags := os.O_APPEND | os.O_CREATE | os.O_WRONLY
	if offset == 0 {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(req.File, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open target: %w", err)
	}

	progress := func(received int64) {
		if req.Progress != nil {
			req.Progress(expected, offset+received)
		}
	}

	received, err := copyChunks(ctx, file, resp.Body, progress)
	if err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close target: %w", err)
	}

	if offset+received != expected {
		return &TruncatedError{
			ExpectedTotal: expected,
			ReceivedTotal: offset + received,
			ExpectedNow:   resp.ContentLength,
			ReceivedNow:   received,
		}
	}

	return nil
}

func checkpoint(ctx context.Context) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
	}

	return nil
}

func localSize(path string) (int64, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("stat target: %w", err)
	}

	return info.Size(), nil
}

func (d *Downloader) do(req *http.Request) (*http.Response, error) {
	resp, err := d.client().Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, checkpoint(req.Context())
		}

		return nil, &HTTPError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()

		return nil, &HTTPError{
			Method: req.Method,
			URL:    req.URL.String(),
			Status: resp.StatusCode,
			Err:    fmt.Errorf("server returned %s", resp.Status), //nolint:err113
		}
	}

	return resp, nil
}

func (d *Downloader) remoteSize(ctx context.Context, remote *url.URL) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, remote.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	resp, err := d.do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()

	if resp.ContentLength < 0 {
		return 0, &HTTPError{
			Method: req.Method,
			URL:    req.URL.String(),
			Status: resp.StatusCode,
			Err:    ErrNoContentLength,
		}
	}

	slog.Debug("Remote file size",
		slog.String("url", remote.String()),
		slog.Int64("size", resp.ContentLength))

	return resp.ContentLength, nil
}

func (d *Downloader) get(ctx context.Context, remote *url.URL, offset int64) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remote.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	req.Header.Set("Range", "bytes="+strconv.FormatInt(offset, 10)+"-")

	resp, err := d.do(req)
	if err != nil {
		return nil, err
	}

	if resp.Body == http.NoBody {
		return nil, &HTTPError{
			Method: req.Method,
			URL:    req.URL.String(),
			Status: resp.StatusCode,
			Err:    ErrNoBody,
		}
	}

	return resp, nil
}

func copyChunks(
	ctx context.Context,
	dst io.Writer,
	src io.Reader,
	progress func(received int64),
) (int64, error) {
	var received int64

	buf := make([]byte, ChunkSize)

	for {
		if err := checkpoint(ctx); err != nil {
			return received, err
		}

		n, err := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return received, fmt.Errorf("write target: %w", err)
			}

			received += int64(n)
			progress(received)
		}

		if errors.Is(err, io.EOF) {
			return received, nil
		} else if err != nil {
			if ctx.Err() != nil {
				return received, checkpoint(ctx)
			}

			return received, fmt.Errorf("read body: %w", err)
		}
	}
}
