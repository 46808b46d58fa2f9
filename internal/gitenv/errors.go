// SPDX-License-Identifier: MPL-2.0

package gitenv

import (
	"errors"
	"fmt"
)

// ErrUnsupportedScope is the sentinel error wrapped by UnsupportedScopeError.
var ErrUnsupportedScope = errors.New("unsupported configuration scope")

// ErrHomeRelativePath is the sentinel error wrapped by HomeRelativePathError.
var ErrHomeRelativePath = errors.New("home-relative path not allowed")

type (
	// UnsupportedScopeError is returned by ForScope for a scope name that
	// is neither empty nor the reserved "local" token. The caller must
	// supply a recognized scope; there is nothing to retry.
	UnsupportedScopeError struct {
		Scope string
	}

	// HomeRelativePathError is returned when expanding a ~/-relative path
	// requires a home directory that the snapshot does not have. It is
	// fatal to that single expansion attempt only.
	HomeRelativePathError struct {
		Path string
	}
)

// Error implements the error interface for UnsupportedScopeError.
func (e *UnsupportedScopeError) Error() string {
	return fmt.Sprintf("unsupported configuration scope %q", e.Scope)
}

// Unwrap returns ErrUnsupportedScope for errors.Is() compatibility.
func (e *UnsupportedScopeError) Unwrap() error { return ErrUnsupportedScope }

// Error implements the error interface for HomeRelativePathError.
func (e *HomeRelativePathError) Error() string {
	return fmt.Sprintf("cannot expand home-relative path %q: the %q configuration scope has no home directory", e.Path, ScopeLocal)
}

// Unwrap returns ErrHomeRelativePath for errors.Is() compatibility.
func (e *HomeRelativePathError) Unwrap() error { return ErrHomeRelativePath }
