// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-creds-manager/internal/client"
	"github.com/MKhiriev/go-creds-manager/models"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Long: `Sign in with an identifier and a password. The session is stored
locally and reused by the UI and the other commands.

The password is read from standard input when --password is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if creds.Password == "" {
				password, err := readPassword(cmd)
				if err != nil {
					return err
				}
				creds.Password = password
			}

			return opts.withApp(cmd.Context(), func(ctx context.Context, app client.Client) error {
				identifier, err := app.Login(ctx, creds)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", identifier)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&creds.Identifier, "identifier", "u", "", "identifier (usually an email)")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("identifier")
	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	cmd.Print("Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd.Context(), func(ctx context.Context, app client.Client) error {
				if err := app.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "get <folderType>/<subfolder>",
		Short:   "Print the fields of a subfolder as JSON",
		Example: "  creds-client get qa/automation1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := models.ParsePath(args[0])
			if err != nil {
				return err
			}

			return opts.withApp(cmd.Context(), func(ctx context.Context, app client.Client) error {
				item, err := app.Get(ctx, path)
				if err != nil {
					return err
				}

				out, err := json.MarshalIndent(item, "", "  ")
				if err != nil {
					return fmt.Errorf("encode %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			})
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ls <folderType>",
		Short:   "List the subfolders of a folder type",
		Example: "  creds-client ls uat",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := models.ParseFolderType(args[0])
			if err != nil {
				return err
			}

			return opts.withApp(cmd.Context(), func(ctx context.Context, app client.Client) error {
				names, err := app.List(ctx, ft)
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := opts.buildInfo
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", valueOrNA(info.BuildVersion()))
			fmt.Fprintf(out, "Build date: %s\n", valueOrNA(info.BuildDate()))
			fmt.Fprintf(out, "Build commit: %s\n", valueOrNA(info.BuildCommit()))

			return opts.withApp(cmd.Context(), func(ctx context.Context, app client.Client) error {
				version, err := app.ServerVersion(ctx)
				if err != nil {
					fmt.Fprintf(out, "Server version: unavailable (%v)\n", err)
					return nil
				}
				fmt.Fprintf(out, "Server version: %s\n", version)
				return nil
			})
		},
	}
}
