// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cienv

import (
	"fmt"
	"strings"

	"github.com/stacklok/toolhive-ci/env"
)

// Names of the variables read by this package.
const (
	EnvGitHubRef        = "GITHUB_REF"
	EnvGitHubRepository = "GITHUB_REPOSITORY"
	EnvReportsURL       = "REPORTS_URL"
	EnvTestModule       = "TEST_MODULE"
	EnvPythonVersion    = "PYTHON_VERSION"
	EnvIncludedBranches = "INCLUDED_BRANCHES"
	EnvDeployment       = "ENV"
	EnvForceSend        = "FORCE_SEND"
)

// DefaultForceSend is returned by ForceSend when FORCE_SEND is unset.
const DefaultForceSend = "false"

// Variable returns the value of the named variable.
// An unset or empty variable yields a *MissingVariableError.
func Variable(r env.Reader, name string) (string, error) {
	value := r.Getenv(name)
	if value == "" {
		return "", &MissingVariableError{Name: name}
	}
	return value, nil
}

// DeploymentDescription returns a phrase naming the deployment target from ENV,
// e.g. "with deployment to *staging* environment", or "" when ENV is unset or empty.
func DeploymentDescription(r env.Reader) string {
	environment := r.Getenv(EnvDeployment)
	if environment == "" {
		return ""
	}
	return fmt.Sprintf("with deployment to *%s* environment", environment)
}

// Branch returns the last segment of GITHUB_REF ("refs/heads/main" -> "main").
func Branch(r env.Reader) (string, error) {
	ref, err := Variable(r, EnvGitHubRef)
	if err != nil {
		return "", err
	}
	return basename(ref), nil
}

// Project returns the repository name from GITHUB_REPOSITORY ("org/repo" -> "repo").
func Project(r env.Reader) (string, error) {
	repo, err := Variable(r, EnvGitHubRepository)
	if err != nil {
		return "", err
	}
	return basename(repo), nil
}

// ReportsURL returns REPORTS_URL.
func ReportsURL(r env.Reader) (string, error) {
	return Variable(r, EnvReportsURL)
}

// TestModule returns TEST_MODULE.
func TestModule(r env.Reader) (string, error) {
	return Variable(r, EnvTestModule)
}

// PythonVersion returns PYTHON_VERSION.
func PythonVersion(r env.Reader) (string, error) {
	return Variable(r, EnvPythonVersion)
}

// IncludedBranches returns INCLUDED_BRANCHES without any parsing.
func IncludedBranches(r env.Reader) (string, error) {
	return Variable(r, EnvIncludedBranches)
}

// ForceSend returns FORCE_SEND verbatim, or DefaultForceSend when it is unset.
// Unlike Variable, an empty value is returned as "".
func ForceSend(r env.Reader) string {
	if value, ok := r.LookupEnv(EnvForceSend); ok {
		return value
	}
	return DefaultForceSend
}

// basename returns everything after the last slash.
// A trailing slash therefore yields "".
func basename(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}
