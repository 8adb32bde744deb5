// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strings"

	"github.com/aibor/jailrun/internal/archive"
	"github.com/spf13/cobra"
)

// Flag names shared between commands and settings.
const (
	flagArchive       = "archive"
	flagArchiveFormat = "archive-format"
	flagBase          = "base"
	flagTemplate      = "template"
	flagFile          = "file"
	flagTarget        = "target"
	flagArch          = "arch"
	flagRelease       = "release"
	flagFetchArchive  = "fetch-archive"
	flagBaseURL       = "base-url"
	flagRetry         = "retry"
	flagRetryInterval = "retry-interval"
	flagSettings      = "settings"
)

// app holds the persistent flags of the root command.
type app struct {
	cfg          IO
	debug        bool
	logLevel     string
	settingsFile string
}

func newRootCommand(cfg IO) *cobra.Command {
	app := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   "jailrun",
		Short: "Provision and start FreeBSD jails",
		Long: "jailrun downloads FreeBSD base archives, creates shared base " +
			"and template trees from them, instantiates jails from templates " +
			"and starts jails.",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ParseArgsError{msg: "parse flags", err: err}
	})

	flags := root.PersistentFlags()
	flags.BoolVar(&app.debug, "debug", false,
		"enable debug output, same as --log-level=debug")
	flags.StringVar(&app.logLevel, "log-level", "info",
		"minimum log level (debug, info, warn, error)")
	flags.StringVar(&app.settingsFile, flagSettings, DefaultSettingsFile,
		"settings file for downloads")

	root.AddCommand(
		newDownloadCommand(app),
		newCreateBaseCommand(),
		newCreateJailCommand(),
		newUnpackCommand(),
		newStartCommand(openLibJail),
		newVersionCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level, err := logLevel(a.logLevel, a.debug)
	if err != nil {
		return err
	}

	setupLogging(a.cfg.Stderr, level)

	// Cobra reports missing required flags only after the pre-run hooks
	// and without the flag error func, so check them here.
	err = cmd.ValidateRequiredFlags()
	if err != nil {
		return &ParseArgsError{msg: "parse flags", err: err}
	}

	return nil
}

// noArgs rejects positional arguments as usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	err := cobra.NoArgs(cmd, args)
	if err != nil {
		return &ParseArgsError{msg: "parse args", err: err}
	}

	return nil
}

// settings loads the settings file. The default file is optional, an
// explicitly given one is not.
func (a *app) settings(cmd *cobra.Command) (Settings, error) {
	optional := !cmd.Flags().Changed(flagSettings)

	return LoadSettings(a.settingsFile, optional)
}

// archiveFormat returns the explicitly given format or infers it from the
// archive path.
func archiveFormat(cmd *cobra.Command, format archive.Format, path string) (archive.Format, error) {
	if cmd.Flags().Changed(flagArchiveFormat) {
		return format, nil
	}

	inferred, ok := archive.InferFormat(path)
	if !ok {
		return 0, &ParseArgsError{
			msg: fmt.Sprintf("%s: use --%s", path, flagArchiveFormat),
			err: ErrArchiveFormatUnset,
		}
	}

	return inferred, nil
}

func archiveFormatUsage() string {
	names := []string{}
	for _, format := range archive.Formats() {
		names = append(names, format.String())
	}

	return fmt.Sprintf("archive format (%s), inferred from the file name "+
		"if not given", strings.Join(names, ", "))
}
