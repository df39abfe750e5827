// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quiz-sync/internal/adapter"
	"github.com/MKhiriev/go-quiz-sync/internal/config"
)

const defaultTimeout = 10 * time.Second

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Address string
	HashKey string
	Timeout time.Duration
	Format  string

	dial Dialer
}

// Dialer opens a control API client for the resolved options.
type Dialer func(opts *RootOptions) (adapter.ControlAPI, error)

// rootEnv supplies flag defaults shared with the sync client process.
type rootEnv struct {
	Address string `env:"CONTROL_ADDRESS"`
	HashKey string `env:"APP_HASH_KEY"`
}

// NewRootCommand creates the syncctl root command talking HTTP to the control
// API.
func NewRootCommand() *cobra.Command {
	return newRootCommand(dialHTTP)
}

func dialHTTP(opts *RootOptions) (adapter.ControlAPI, error) {
	return adapter.NewHTTPControlClient(opts.Address, opts.Timeout, opts.HashKey)
}

func newRootCommand(dial Dialer) *cobra.Command {
	opts := &RootOptions{dial: dial}

	var defaults rootEnv
	_ = env.Parse(&defaults)
	if defaults.Address == "" {
		defaults.Address = config.DefaultControlAddress
	}

	cmd := &cobra.Command{
		Use:   "syncctl",
		Short: "Inspect and drive the quiz sync client",
		Long: `syncctl talks to the control API of a running quiz sync client.

It reports queue health, triggers sync passes, manages the failed bucket
and lets producers enqueue actions or forward host connectivity events.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Address, "address", "a", defaults.Address, "control API address host:port")
	cmd.PersistentFlags().StringVar(&opts.HashKey, "hash-key", defaults.HashKey, "HMAC key for signed requests")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", defaultTimeout, "request timeout")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewForceCommand(opts))
	cmd.AddCommand(NewPendingCommand(opts))
	cmd.AddCommand(NewFailedCommand(opts))
	cmd.AddCommand(NewEnqueueCommand(opts))
	cmd.AddCommand(NewEventCommand(opts))

	return cmd
}

// client dials the control API or returns an ExitError.
func (o *RootOptions) client() (adapter.ControlAPI, error) {
	c, err := o.dial(o)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to create control client", err)
	}
	return c, nil
}
