// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package cienv resolves the environment variables a GitHub Actions pipeline
sets for the ToolHive test and notification jobs.

Every accessor is a free function over an [env.Reader], so the same code
reads the real process environment in CI and an [env.MapReader] in tests.

# Required and Optional Variables

Required variables must be present and non-empty. When one is missing the
accessor returns a [*MissingVariableError] naming it:

	branch, err := cienv.Branch(&env.OSReader{})
	if err != nil {
		return err // no environment variable 'GITHUB_REF' has been defined
	}

Optional variables never fail. [DeploymentDescription] treats an empty ENV
like an unset one, while [ForceSend] only falls back to "false" when
FORCE_SEND is unset: an explicit empty value is returned as is.

# Loading Everything at Once

[Load] resolves all accessors into a [Context] and reports every missing
required variable in a single joined error:

	ctx, err := cienv.Load(&env.OSReader{})
	if err != nil {
		var missing *cienv.MissingVariableError
		if errors.As(err, &missing) {
			log.Printf("first missing variable: %s", missing.Name)
		}
		return err
	}
*/
package cienv
