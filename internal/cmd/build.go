// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/aibor/jailrun/internal/archive"
	"github.com/aibor/jailrun/internal/jailbuild"
	"github.com/aibor/jailrun/internal/jailconf"
	"github.com/aibor/jailrun/internal/sys"
	"github.com/spf13/cobra"
)

func newCreateBaseCommand() *cobra.Command {
	var (
		archivePath, base, template string
		format                      archive.Format
	)

	cmd := &cobra.Command{
		Use:   "create-jail-base",
		Short: "Create a jail base and template from a base archive",
		Long: "Extract a base archive into a new base directory and create " +
			"a template directory linking into it. Neither directory may " +
			"exist.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := absolutePaths(
				pathFlag{flagArchive, &archivePath},
				pathFlag{flagBase, &base},
				pathFlag{flagTemplate, &template},
			)
			if err != nil {
				return err
			}

			resolved, err := archiveFormat(cmd, format, archivePath)
			if err != nil {
				return err
			}

			builder := jailbuild.Builder{Owner: sys.Native{}}

			err = builder.CreateBase(cmd.Context(), archivePath, resolved, base, template)
			if err != nil {
				return fmt.Errorf("create jail base: %w", err)
			}

			slog.Info("Created jail base",
				slog.String("base", base),
				slog.String("template", template))

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&archivePath, flagArchive, "", "base archive file")
	f.Var(&format, flagArchiveFormat, archiveFormatUsage())
	f.StringVar(&base, flagBase, "", "base directory to create")
	f.StringVar(&template, flagTemplate, "", "template directory to create")

	for _, name := range []string{flagArchive, flagBase, flagTemplate} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newCreateJailCommand() *cobra.Command {
	var base, template, file string

	cmd := &cobra.Command{
		Use:   "create-jail",
		Short: "Create a jail from a template",
		Long: "Create a jail as described by a jail configuration file. The " +
			"template is copied to the jail path, the configuration file " +
			"and an fstab mounting the base are written next to it.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := absolutePaths(
				pathFlag{flagBase, &base},
				pathFlag{flagTemplate, &template},
			)
			if err != nil {
				return err
			}

			cfg, err := jailconf.Load(file)
			if err != nil {
				return err //nolint:wrapcheck
			}

			builder := jailbuild.Builder{Owner: sys.Native{}}

			err = builder.CreateJail(base, template, cfg)
			if err != nil {
				return fmt.Errorf("create jail: %w", err)
			}

			slog.Info("Created jail",
				slog.String("name", cfg.Name().String()),
				slog.String("path", cfg.Path()))

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&base, flagBase, "", "jail base directory")
	f.StringVar(&template, flagTemplate, "", "jail template directory")
	f.StringVar(&file, flagFile, "", "jail configuration file")

	for _, name := range []string{flagBase, flagTemplate, flagFile} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newUnpackCommand() *cobra.Command {
	var (
		archivePath, target string
		format              archive.Format
	)

	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Extract an archive into a directory",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := absolutePaths(
				pathFlag{flagArchive, &archivePath},
				pathFlag{flagTarget, &target},
			)
			if err != nil {
				return err
			}

			resolved, err := archiveFormat(cmd, format, archivePath)
			if err != nil {
				return err
			}

			extractor := archive.Extractor{Owner: sys.Native{}}

			err = extractor.Extract(cmd.Context(), archivePath, resolved, target)
			if err != nil {
				return fmt.Errorf("unpack: %w", err)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&archivePath, flagArchive, "", "archive file")
	f.Var(&format, flagArchiveFormat, archiveFormatUsage())
	f.StringVar(&target, flagTarget, "", "target directory")

	for _, name := range []string{flagArchive, flagTarget} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
