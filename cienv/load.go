// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cienv

import (
	"errors"

	"github.com/stacklok/toolhive-ci/env"
)

// Context holds every value resolved from the CI environment.
type Context struct {
	Branch                string `json:"branch" yaml:"branch"`
	Project               string `json:"project" yaml:"project"`
	ReportsURL            string `json:"reports_url" yaml:"reports_url"`
	TestModule            string `json:"test_module" yaml:"test_module"`
	PythonVersion         string `json:"python_version" yaml:"python_version"`
	IncludedBranches      string `json:"included_branches" yaml:"included_branches"`
	DeploymentDescription string `json:"deployment_description" yaml:"deployment_description"`
	ForceSend             string `json:"force_send" yaml:"force_send"`
}

// Load resolves all accessors from r.
// Every missing required variable is reported, joined in the order
// GITHUB_REF, GITHUB_REPOSITORY, REPORTS_URL, TEST_MODULE, PYTHON_VERSION,
// INCLUDED_BRANCHES. On error the returned Context is nil.
func Load(r env.Reader) (*Context, error) {
	c := &Context{
		DeploymentDescription: DeploymentDescription(r),
		ForceSend:             ForceSend(r),
	}

	required := []struct {
		dst *string
		get func(env.Reader) (string, error)
	}{
		{&c.Branch, Branch},
		{&c.Project, Project},
		{&c.ReportsURL, ReportsURL},
		{&c.TestModule, TestModule},
		{&c.PythonVersion, PythonVersion},
		{&c.IncludedBranches, IncludedBranches},
	}

	var errs []error
	for _, field := range required {
		value, err := field.get(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*field.dst = value
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}
