// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-creds-manager/internal/client"
	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/models"
)

// rootOptions carries the persistent flags. Set flags win over the
// environment and the config file.
type rootOptions struct {
	overrides config.ClientConfig
	buildInfo models.AppBuildInfo
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &rootOptions{buildInfo: buildInfo}

	cmd := &cobra.Command{
		Use:   serviceName,
		Short: "Shared QA/UAT credentials manager",
		Long: `creds-client edits and browses the credentials shared by the team.

Without a subcommand it starts the terminal UI. The subcommands are meant
for scripts and test automation that need a credential without the UI.`,
		Version:      valueOrNA(buildInfo.BuildVersion()),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd.Context(), func(ctx context.Context, app client.Client) error {
				return app.Run(ctx)
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.overrides.ConfigFilePath, "config", "c", "", "path to a JSON or YAML config file")
	flags.StringVarP(&opts.overrides.Adapter.HTTPAddress, "address", "a", "", "server address, host:port or URL")
	flags.DurationVar(&opts.overrides.Adapter.RequestTimeout, "timeout", 0, "timeout of one request to the server")
	flags.StringVarP(&opts.overrides.Adapter.HashKey, "key", "k", "", "key signing request bodies")
	flags.StringVar(&opts.overrides.Storage.DB.DSN, "session-db", "", "SQLite file holding the session")

	cmd.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newGetCmd(opts),
		newListCmd(opts),
		newVersionCmd(opts),
	)
	return cmd
}

// withApp builds the client application for one command and closes it
// afterwards.
func (o *rootOptions) withApp(ctx context.Context, fn func(ctx context.Context, app client.Client) error) error {
	log := logger.NewClientLogger(serviceName)

	cfg, err := config.GetClientConfig(&o.overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	app, err := client.NewApp(ctx, cfg, o.buildInfo, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing client")
		}
	}()

	return fn(ctx, app)
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
