// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quiz-sync/models"
)

// EnqueueOptions holds flags for the enqueue command.
type EnqueueOptions struct {
	*RootOptions
	Type    string
	Payload string
	File    string
}

// NewEnqueueCommand creates the enqueue command.
func NewEnqueueCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EnqueueOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Queue an action for delivery",
		Long: `Queue an action for delivery to the learning backend.

Examples:
  syncctl enqueue --type progress_update --payload '{"course_id":"go-101","lesson_id":"l1","percent":40}'
  syncctl enqueue --type quiz_attempt --file attempt.json
  cat attempt.json | syncctl enqueue --type quiz_attempt --file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnqueue(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "action type (quiz_attempt|progress_update|gamification_update)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVarP(&opts.Payload, "payload", "p", "", "action payload as JSON")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read the payload from a file, - for stdin")
	cmd.MarkFlagsOneRequired("payload", "file")
	cmd.MarkFlagsMutuallyExclusive("payload", "file")

	return cmd
}

func runEnqueue(opts *EnqueueOptions, cmd *cobra.Command) error {
	payload, err := opts.readPayload(cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read payload", err)
	}
	if !json.Valid(payload) {
		return NewExitError(ExitCommandError, "payload is not valid JSON")
	}

	c, err := opts.client()
	if err != nil {
		return err
	}

	ack, err := c.Enqueue(cmd.Context(), models.EnqueueRequest{
		Type:    models.ActionType(opts.Type),
		Payload: payload,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "action rejected", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), ack)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "queued %s\n", ack.ID)
	if !ack.Durable {
		fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("warning: local store unavailable, action is held in memory only"))
	}
	return nil
}

func (o *EnqueueOptions) readPayload(stdin io.Reader) ([]byte, error) {
	switch o.File {
	case "":
		return []byte(o.Payload), nil
	case "-":
		return io.ReadAll(stdin)
	default:
		return os.ReadFile(o.File)
	}
}
