// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/toolhive-ci/cienv"
	"github.com/stacklok/toolhive-ci/env"
)

func pipelineEnv() env.MapReader {
	return env.MapReader{
		cienv.EnvGitHubRef:        "refs/heads/main",
		cienv.EnvGitHubRepository: "stacklok/toolhive",
		cienv.EnvReportsURL:       "https://reports.example.com/42",
		cienv.EnvTestModule:       "e2e",
		cienv.EnvPythonVersion:    "3.12",
		cienv.EnvIncludedBranches: "main",
		cienv.EnvDeployment:       "staging",
		"UNSTRUCTURED_LOGS":       "false",
	}
}

func execute(t *testing.T, r env.Reader, args ...string) (string, error) {
	t.Helper()

	restore := zap.ReplaceGlobals(zap.NewNop())
	t.Cleanup(restore)

	var out bytes.Buffer
	cmd := NewRootCmd(r)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestGetCmd(t *testing.T) { //nolint:paralleltest // Uses global logger state
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"branch", "branch", "main\n"},
		{"project", "project", "toolhive\n"},
		{"reports url", "reports-url", "https://reports.example.com/42\n"},
		{"test module", "test-module", "e2e\n"},
		{"python version", "python-version", "3.12\n"},
		{"included branches", "included-branches", "main\n"},
		{"deployment description", "deployment-description", "with deployment to *staging* environment\n"},
		{"force send default", "force-send", "false\n"},
	}

	for _, tt := range tests { //nolint:paralleltest // Uses global logger state
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, pipelineEnv(), "get", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGetCmd_Errors(t *testing.T) { //nolint:paralleltest // Uses global logger state
	t.Run("missing required variable", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		out, err := execute(t, env.MapReader{}, "get", "branch")
		assert.Empty(t, out)

		var missing *cienv.MissingVariableError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, cienv.EnvGitHubRef, missing.Name)
	})

	t.Run("optional variables never fail", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		out, err := execute(t, env.MapReader{}, "get", "deployment-description")
		require.NoError(t, err)
		assert.Equal(t, "\n", out)
	})

	t.Run("unknown accessor", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		_, err := execute(t, pipelineEnv(), "get", "branches")
		assert.ErrorContains(t, err, `invalid argument "branches"`)
	})

	t.Run("missing accessor", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		_, err := execute(t, pipelineEnv(), "get")
		assert.Error(t, err)
	})
}

func TestVarCmd(t *testing.T) { //nolint:paralleltest // Uses global logger state
	out, err := execute(t, pipelineEnv(), "var", cienv.EnvGitHubRef)
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main\n", out)

	_, err = execute(t, env.MapReader{"EMPTY": ""}, "var", "EMPTY")
	assert.ErrorIs(t, err, cienv.ErrMissingVariable)
}

func TestShowCmd(t *testing.T) { //nolint:paralleltest // Uses global logger state
	want := cienv.Context{
		Branch:                "main",
		Project:               "toolhive",
		ReportsURL:            "https://reports.example.com/42",
		TestModule:            "e2e",
		PythonVersion:         "3.12",
		IncludedBranches:      "main",
		DeploymentDescription: "with deployment to *staging* environment",
		ForceSend:             "false",
	}

	t.Run("yaml by default", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		out, err := execute(t, pipelineEnv(), "show")
		require.NoError(t, err)
		assert.Contains(t, out, "branch: main\n")

		var got cienv.Context
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("json", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		out, err := execute(t, pipelineEnv(), "show", "--output", "json")
		require.NoError(t, err)

		var got cienv.Context
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("unsupported format", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		_, err := execute(t, pipelineEnv(), "show", "-o", "toml")
		assert.ErrorContains(t, err, `unsupported output format "toml"`)
	})

	t.Run("missing variables", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		out, err := execute(t, env.MapReader{cienv.EnvGitHubRef: "refs/heads/main"}, "show")
		assert.Empty(t, out)
		assert.ErrorIs(t, err, cienv.ErrMissingVariable)
	})
}

func TestLogError(t *testing.T) { //nolint:paralleltest // Uses global logger state
	core, observedLogs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	_, err := cienv.Load(env.MapReader{
		cienv.EnvGitHubRef:        "refs/heads/main",
		cienv.EnvGitHubRepository: "stacklok/toolhive",
		cienv.EnvReportsURL:       "https://reports.example.com",
		cienv.EnvIncludedBranches: "main",
	})
	require.Error(t, err)

	LogError(err)

	entries := observedLogs.FilterMessage("required CI variable is not set").All()
	require.Len(t, entries, 2)
	assert.Equal(t, cienv.EnvTestModule, entries[0].ContextMap()["variable"])
	assert.Equal(t, cienv.EnvPythonVersion, entries[1].ContextMap()["variable"])
}

func TestFlagDebugProvider(t *testing.T) {
	t.Parallel()

	debug := false
	provider := &flagDebugProvider{debug: &debug}
	assert.False(t, provider.IsDebug())

	debug = true
	assert.True(t, provider.IsDebug())
}
