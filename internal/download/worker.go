// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package download

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Handle is the handle of a download submitted to a [Worker].
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Cancel requests cancellation of the download. It takes effect at the next
// checkpoint of the download.
func (h *Handle) Cancel() {
	h.cancel()
}

// Done returns a channel that is closed once the download finished.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the download finished and returns its result.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

type job struct {
	ctx    context.Context //nolint:containedctx
	req    Request
	handle *Handle
}

// Worker runs submitted downloads one after another on a single goroutine.
// It must be closed with [Worker.Close].
type Worker struct {
	downloader *Downloader
	jobs       chan job
	closing    chan struct{}
	closeOnce  sync.Once
	group      errgroup.Group
}

// NewWorker creates a new [Worker] using the given [Downloader] and starts
// its goroutine.
func NewWorker(downloader *Downloader) *Worker {
	worker := &Worker{
		downloader: downloader,
		jobs:       make(chan job),
		closing:    make(chan struct{}),
	}

	worker.group.Go(worker.serve)

	return worker
}

func (w *Worker) serve() error {
	for {
		select {
		case j := <-w.jobs:
			j.handle.err = w.downloader.Download(j.ctx, j.req)
			j.handle.cancel()
			close(j.handle.done)
		case <-w.closing:
			return nil
		}
	}
}

// Submit hands the download to the worker. It blocks until the worker picks
// it up, ctx is done or the worker is closed. The download is cancelled if
// ctx is cancelled or [Handle.Cancel] is called.
func (w *Worker) Submit(ctx context.Context, req Request) (*Handle, error) {
	jobCtx, cancel := context.WithCancel(ctx)

	handle := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	select {
	case w.jobs <- job{ctx: jobCtx, req: req, handle: handle}:
		return handle, nil
	case <-w.closing:
		cancel()
		return nil, ErrWorkerClosed
	case <-ctx.Done():
		cancel()
		return nil, fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
	}
}

// Download submits the download and waits for its result. It implements
// [Getter].
func (w *Worker) Download(ctx context.Context, req Request) error {
	handle, err := w.Submit(ctx, req)
	if err != nil {
		return err
	}

	return handle.Wait()
}

// Close stops accepting downloads and waits for the running download to
// finish.
func (w *Worker) Close() error {
	w.closeOnce.Do(func() {
		close(w.closing)
	})

	return w.group.Wait() //nolint:wrapcheck
}
