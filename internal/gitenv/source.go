// SPDX-License-Identifier: MPL-2.0

package gitenv

import "os"

type (
	// Source abstracts ambient process-environment access so tests can
	// supply deterministic values instead of depending on real OS state.
	// A non-nil error from either method means the value could not be
	// read; the resolver converts that to "absent", never to a failure.
	Source interface {
		// Getenv returns the value of an environment variable. An unset
		// variable is reported as "" with a nil error.
		Getenv(key string) (string, error)

		// UserHomeDir returns the platform's user-profile directory
		// without verifying that it exists.
		UserHomeDir() (string, error)
	}

	// OSSource is the production Source backed by the os package.
	OSSource struct{}

	// MapSource is a deterministic Source backed by in-memory values.
	// Lookup failures can be simulated per key via Errs, or wholesale for
	// the home lookup via HomeErr.
	MapSource struct {
		Env     map[string]string
		Errs    map[string]error
		Home    string
		HomeErr error
	}
)

// Getenv reads from the live process environment. It never fails.
func (OSSource) Getenv(key string) (string, error) {
	return os.Getenv(key), nil
}

// UserHomeDir reports the platform's user-profile directory.
func (OSSource) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Getenv reads from the in-memory map, honoring simulated errors.
func (s MapSource) Getenv(key string) (string, error) {
	if err, ok := s.Errs[key]; ok {
		return "", err
	}
	return s.Env[key], nil
}

// UserHomeDir reports the configured home directory or simulated failure.
func (s MapSource) UserHomeDir() (string, error) {
	if s.HomeErr != nil {
		return "", s.HomeErr
	}
	return s.Home, nil
}
