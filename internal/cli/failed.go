// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quiz-sync/internal/adapter"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// NewFailedCommand creates the failed command. Without a subcommand it lists
// the failed bucket.
func NewFailedCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "failed",
		Short: "List, retry or clear actions that will not be retried",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			actions, err := c.ListFailed(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list failed actions", err)
			}

			if opts.Format == "json" {
				if actions == nil {
					actions = []models.FailedAction{}
				}
				return writeJSON(cmd.OutOrStdout(), actions)
			}
			renderFailed(cmd.OutOrStdout(), actions)
			return nil
		},
	}

	cmd.AddCommand(newFailedCountCommand(opts, "retry",
		"Move every failed action back to the pending queue", "moved %d actions back to the queue",
		adapter.ControlAPI.RetryFailed))
	cmd.AddCommand(newFailedCountCommand(opts, "clear",
		"Discard every failed action", "discarded %d failed actions",
		adapter.ControlAPI.ClearFailed))

	return cmd
}

func newFailedCountCommand(
	opts *RootOptions,
	use, short, format string,
	call func(adapter.ControlAPI, context.Context) (int, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			n, err := call(c, cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to "+use+" failed actions", err)
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), models.CountResponse{Count: n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), format+"\n", n)
			return nil
		},
	}
}
