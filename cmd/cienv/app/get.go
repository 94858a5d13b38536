// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stacklok/toolhive-ci/cienv"
	"github.com/stacklok/toolhive-ci/env"
)

func optional(f func(env.Reader) string) func(env.Reader) (string, error) {
	return func(r env.Reader) (string, error) {
		return f(r), nil
	}
}

var accessors = map[string]func(env.Reader) (string, error){
	"branch":                 cienv.Branch,
	"project":                cienv.Project,
	"reports-url":            cienv.ReportsURL,
	"test-module":            cienv.TestModule,
	"python-version":         cienv.PythonVersion,
	"included-branches":      cienv.IncludedBranches,
	"deployment-description": optional(cienv.DeploymentDescription),
	"force-send":             optional(cienv.ForceSend),
}

func accessorNames() []string {
	names := make([]string, 0, len(accessors))
	for name := range accessors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newGetCmd(r env.Reader) *cobra.Command {
	names := accessorNames()
	return &cobra.Command{
		Use:       "get NAME",
		Short:     "Print a single CI value",
		Long:      "Print a single CI value. NAME is one of: " + strings.Join(names, ", ") + ".",
		ValidArgs: names,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := accessors[args[0]](r)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newVarCmd(r env.Reader) *cobra.Command {
	return &cobra.Command{
		Use:   "var VARIABLE",
		Short: "Print a required environment variable",
		Long:  "Print a required environment variable, failing when it is unset or empty.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := cienv.Variable(r, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}
