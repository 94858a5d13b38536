// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app contains the cobra command tree of the cienv CLI.
package app

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/stacklok/toolhive-ci/cienv"
	"github.com/stacklok/toolhive-ci/env"
	"github.com/stacklok/toolhive-ci/logger"
)

// flagDebugProvider backs logger.DebugProvider with the --debug flag.
type flagDebugProvider struct {
	debug *bool
}

func (p *flagDebugProvider) IsDebug() bool {
	return *p.debug
}

// NewRootCmd builds the cienv command tree reading variables from r.
func NewRootCmd(r env.Reader) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "cienv",
		Short: "Print values derived from the CI environment",
		Long: `cienv resolves the environment variables set by the GitHub Actions pipeline
and prints them for use in shell steps. Values go to stdout, logs to stderr.

Required variables that are unset or empty make the command exit with status 1.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.InitializeWithOptions(r, &flagDebugProvider{debug: &debug})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newGetCmd(r),
		newVarCmd(r),
		newShowCmd(r),
	)

	return cmd
}

// LogError reports a failed command on the global logger.
func LogError(err error) {
	var missing *cienv.MissingVariableError
	if errors.As(err, &missing) {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				LogError(e)
			}
			return
		}
		logger.Errorw("required CI variable is not set", "variable", missing.Name)
		return
	}
	logger.Errorw("command failed", "error", err)
}
