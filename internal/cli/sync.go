// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quiz-sync/internal/app"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// NewSyncCommand creates the sync command. It waits for the pass to finish
// and exits with ExitFailure when the pass did not apply everything.
func NewSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run a sync pass now and wait for its result",
		Long: `Run a sync pass now, ignoring throttling and retry backoff.

The command fails when the device is offline, a pass is already running or
some actions could not be applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			result, err := c.ManualSync(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to run sync", err)
			}

			if opts.Format == "json" {
				if err = writeJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				renderManualSync(cmd.OutOrStdout(), result)
			}

			if !result.Success {
				return NewExitError(ExitFailure, result.Message)
			}
			return nil
		},
	}
}

// NewForceCommand creates the force command.
func NewForceCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "force",
		Short: "Request a sync pass in the background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			if err = c.ForceSync(cmd.Context()); err != nil {
				return WrapExitError(ExitCommandError, "failed to request sync", err)
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), models.MessageResponse{Message: app.MsgSyncRequested})
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgSyncRequested)
			return nil
		},
	}
}
