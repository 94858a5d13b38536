// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cienv

import (
	"errors"
	"fmt"
)

// ErrMissingVariable is matched by every MissingVariableError.
var ErrMissingVariable = errors.New("missing environment variable")

// MissingVariableError is returned when a required variable is unset or empty.
type MissingVariableError struct {
	Name string
}

// Error implements the error interface for MissingVariableError.
func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("no environment variable '%s' has been defined", e.Name)
}

// Is reports whether target is ErrMissingVariable.
func (*MissingVariableError) Is(target error) bool {
	return target == ErrMissingVariable
}
