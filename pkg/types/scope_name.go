// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScopeName is the sentinel error wrapped by InvalidScopeNameError.
var ErrInvalidScopeName = errors.New("invalid scope name")

type (
	// ScopeName identifies a configuration tier: system-wide, user/global,
	// or repository-local. Comparison is case-insensitive; Canonical()
	// yields the lowercase form.
	ScopeName string

	// InvalidScopeNameError is returned when a ScopeName is not one of
	// the three recognized tiers.
	InvalidScopeNameError struct {
		Value ScopeName
	}
)

// The recognized configuration tiers, in precedence order (later tiers
// override earlier ones when git merges configuration).
const (
	ScopeSystem ScopeName = "system"
	ScopeGlobal ScopeName = "global"
	ScopeLocal  ScopeName = "local"
)

// Scopes lists the recognized tiers in precedence order.
func Scopes() []ScopeName {
	return []ScopeName{ScopeSystem, ScopeGlobal, ScopeLocal}
}

// String returns the string representation of the ScopeName.
func (s ScopeName) String() string { return string(s) }

// Canonical returns the lowercase form used for comparisons and display.
func (s ScopeName) Canonical() ScopeName {
	return ScopeName(strings.ToLower(string(s)))
}

// IsValid returns whether the ScopeName names a recognized tier.
func (s ScopeName) IsValid() (bool, []error) {
	switch s.Canonical() {
	case ScopeSystem, ScopeGlobal, ScopeLocal:
		return true, nil
	}
	return false, []error{&InvalidScopeNameError{Value: s}}
}

// Error implements the error interface for InvalidScopeNameError.
func (e *InvalidScopeNameError) Error() string {
	return fmt.Sprintf("invalid scope name %q: must be one of system, global, local", e.Value)
}

// Unwrap returns ErrInvalidScopeName for errors.Is() compatibility.
func (e *InvalidScopeNameError) Unwrap() error { return ErrInvalidScopeName }
