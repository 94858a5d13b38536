// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/toolhive-ci/cienv"
	"github.com/stacklok/toolhive-ci/env"
	"github.com/stacklok/toolhive-ci/logger"
)

// Output formats accepted by show.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

func newShowCmd(r env.Reader) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every CI value",
		Long:  "Print every CI value. All missing required variables are reported before exiting.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != FormatYAML && format != FormatJSON {
				return fmt.Errorf("unsupported output format %q, expected %s or %s", format, FormatYAML, FormatJSON)
			}

			ciCtx, err := cienv.Load(r)
			if err != nil {
				return err
			}
			logger.Debugw("resolved CI environment", "project", ciCtx.Project, "branch", ciCtx.Branch)

			return writeContext(cmd.OutOrStdout(), ciCtx, format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", FormatYAML, "Output format (yaml or json)")

	return cmd
}

func writeContext(w io.Writer, ciCtx *cienv.Context, format string) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ciCtx)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ciCtx); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
