// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aibor/jailrun/internal/download"
	"github.com/spf13/cobra"
)

const mebibyte = 1 << 20

func newDownloadCommand(app *app) *cobra.Command {
	var (
		file  string
		flags Settings
	)

	cmd := &cobra.Command{
		Use:   "download-base-archive",
		Short: "Download a base archive of a FreeBSD release",
		Long: "Download a base archive of a FreeBSD release. Interrupted " +
			"downloads are resumed and failed attempts are retried.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := absolutePaths(pathFlag{flagArchive, &file})
			if err != nil {
				return err
			}

			settings, err := app.settings(cmd)
			if err != nil {
				return err
			}

			settings.override(cmd.Flags().Changed, flags)

			err = settings.resolve()
			if err != nil {
				return err
			}

			return downloadBaseArchive(cmd.Context(), http.DefaultClient, file, settings)
		},
	}

	f := cmd.Flags()
	f.StringVar(&file, flagArchive, "", "output file")
	f.StringVar(&flags.Arch, flagArch, "",
		"override the system architecture")
	f.StringVar(&flags.Release, flagRelease, "",
		"override the system release")
	f.StringVar(&flags.Archive, flagFetchArchive, "",
		"archive file to fetch from the release directory")
	f.StringVar(&flags.BaseURL, flagBaseURL, "",
		"override the release base URL")
	f.IntVar(&flags.Retries, flagRetry, 0,
		"number of attempts for failed downloads (0 is unlimited)")
	f.DurationVar(&flags.RetryInterval, flagRetryInterval, 0,
		"time to wait between attempts")

	_ = cmd.MarkFlagRequired(flagArchive)

	return cmd
}

func downloadBaseArchive(
	ctx context.Context,
	client *http.Client,
	file string,
	settings Settings,
) error {
	worker := download.NewWorker(&download.Downloader{Client: client})
	defer func() {
		_ = worker.Close()
	}()

	req := download.Request{
		File:     file,
		BaseURL:  settings.BaseURL,
		Arch:     settings.Arch,
		Release:  settings.Release,
		Archive:  settings.Archive,
		Progress: download.OctetsPerSecond(logProgress(settings.Archive), nil),
	}

	slog.Info("Downloading base archive",
		slog.String("base_url", settings.BaseURL),
		slog.String("arch", settings.Arch),
		slog.String("release", settings.Release),
		slog.String("archive", settings.Archive),
		slog.String("file", file))

	opts := download.FetchOptions{
		MaxAttempts: settings.Retries,
		Interval:    settings.RetryInterval,
	}

	err := download.Fetch(ctx, worker, req, opts)
	if err != nil {
		return fmt.Errorf("download base archive: %w", err)
	}

	slog.Info("Download completed", slog.String("file", file))

	return nil
}

func logProgress(archive string) download.RateFunc {
	return func(expected, received int64, octetsPerSecond float64) {
		slog.Info("Download progress",
			slog.String("archive", archive),
			slog.Int64("received", received),
			slog.Int64("expected", expected),
			slog.String("rate", fmt.Sprintf("%.2f MiB/s", octetsPerSecond/mebibyte)))
	}
}
