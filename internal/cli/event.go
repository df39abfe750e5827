// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quiz-sync/internal/network"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// NewEventCommand creates the event command used by host hooks to report
// connectivity changes and wake-ups.
func NewEventCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "event <type>",
		Short: "Forward a host connectivity event",
		Long: `Forward a host connectivity event to the sync client.

Accepted types: went-online, went-offline, wake-signal and SYNC_PENDING_DATA.`,
		Args: cobra.ExactArgs(1),
		ValidArgs: []string{
			string(network.EventWentOnline),
			string(network.EventWentOffline),
			string(network.EventWakeSignal),
			models.WakeMessageType,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := network.ParseEventKind(args[0]); err != nil {
				return WrapExitError(ExitCommandError, "invalid event", err)
			}

			c, err := opts.client()
			if err != nil {
				return err
			}

			if err = c.SendEvent(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "event rejected", err)
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), models.HostEventRequest{Type: args[0]})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %s\n", args[0])
			return nil
		},
	}
}
