// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command cienv prints values derived from the GitHub Actions environment so
// that shell steps can use them without reimplementing the lookups.
package main

import (
	"os"

	"github.com/stacklok/toolhive-ci/cmd/cienv/app"
	"github.com/stacklok/toolhive-ci/env"
	"github.com/stacklok/toolhive-ci/logger"
)

func main() {
	// reconfigured once flags are parsed; covers argument errors before that
	logger.Initialize()

	if err := app.NewRootCmd(&env.OSReader{}).Execute(); err != nil {
		app.LogError(err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
