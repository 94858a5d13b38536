// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines read-only access to a table of environment variables
type Reader interface {
	// Getenv returns the value of the variable, or "" when it is not set.
	Getenv(key string) string
	// LookupEnv returns the value of the variable and whether it is set at all.
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the process environment
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv returns the value of the environment variable named by the key
// and reports whether it is present, even if empty
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over an in-memory table.
// A nil MapReader behaves as an empty environment.
type MapReader map[string]string

// Getenv returns the value stored under key, or "" when absent
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// LookupEnv returns the value stored under key and whether the key exists
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
