// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quiz-sync/models"
)

// NewPendingCommand creates the pending command.
func NewPendingCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List queued actions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			actions, err := c.ListPending(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list pending actions", err)
			}

			if opts.Format == "json" {
				if actions == nil {
					actions = []models.PendingAction{}
				}
				return writeJSON(cmd.OutOrStdout(), actions)
			}
			renderPending(cmd.OutOrStdout(), actions)
			return nil
		},
	}
}
