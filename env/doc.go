// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, so that code reading CI configuration can be exercised without
touching the real process environment.

# Basic Usage

Use OSReader to read variables from the running process:

	reader := &env.OSReader{}
	ref := reader.Getenv("GITHUB_REF")

	// LookupEnv distinguishes an unset variable from one set to ""
	value, ok := reader.LookupEnv("FORCE_SEND")

# Testing

MapReader is a ready-made in-memory source:

	reader := env.MapReader{"GITHUB_REF": "refs/heads/main"}

When a test needs to assert which variables are read, use the generated mock
in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("GITHUB_REF").Return("refs/heads/main")

# Design

Production code accepts an env.Reader and never calls os.Getenv directly.
Readers only read; nothing in this package sets or unsets variables.
*/
package env
