// Copyright (C) 2024 The NAQMap Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package naerr defines the compiler's error kinds as
// sentinel values any caller can recognize with errors.Is,
// wrapped with a descriptive message via %w.
package naerr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedGate marks an unknown single-qubit gate
	// type encountered at code generation. Fatal for the
	// circuit; no partial output is useful.
	ErrUnsupportedGate = errors.New("unsupported gate")

	// ErrInvariantViolation marks a caller-supplied layer or
	// placement that breaks a documented precondition.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrConfigOutOfRange marks a rejected configuration value.
	ErrConfigOutOfRange = errors.New("config out of range")
)

// UnsupportedGate wraps ErrUnsupportedGate with context.
func UnsupportedGate(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnsupportedGate)...)
}

// InvariantViolation wraps ErrInvariantViolation with context.
func InvariantViolation(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvariantViolation)...)
}

// ConfigOutOfRange wraps ErrConfigOutOfRange with context.
func ConfigOutOfRange(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConfigOutOfRange)...)
}
