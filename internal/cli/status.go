// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue counts, connectivity and health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			status, err := c.Status(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to get status", err)
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), status)
			}
			renderStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}
