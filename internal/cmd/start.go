// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/aibor/jailrun/internal/jailconf"
	"github.com/aibor/jailrun/internal/jailctl"
	"github.com/spf13/cobra"
)

type jailAPI interface {
	jailctl.ParamAPI
	Close() error
}

func openLibJail() (jailAPI, error) {
	return jailctl.NewLibJail() //nolint:wrapcheck
}

func newStartCommand(openAPI func() (jailAPI, error)) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a jail",
		Long: "Create the jail described by the jail configuration file and " +
			"replace the current process with its start command inside the " +
			"jail.",
		Args: noArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := jailconf.Load(file)
			if err != nil {
				return err //nolint:wrapcheck
			}

			api, err := openAPI()
			if err != nil {
				return fmt.Errorf("open jail API: %w", err)
			}
			defer api.Close()

			slog.Info("Starting jail",
				slog.String("name", cfg.Name().String()),
				slog.String("path", cfg.Path()))

			controller := jailctl.Controller{API: api}

			err = controller.Start(cfg)
			if err != nil {
				return fmt.Errorf("could not start jail: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&file, flagFile, "", "jail configuration file")
	_ = cmd.MarkFlagRequired(flagFile)

	return cmd
}
