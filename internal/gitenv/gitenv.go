// SPDX-License-Identifier: MPL-2.0

// Package gitenv resolves the directories git itself would treat as
// authoritative sources of configuration for a configuration scope. It
// mirrors git's environment-variable and platform conventions so that
// path lookups built on top of it agree with what git resolves.
package gitenv

import (
	"runtime"
	"strings"
)

// ScopeLocal is the reserved scope token for repository-local configuration.
// Local configuration is always addressed relative to the repository itself,
// so no host-environment discovery happens for this scope.
const ScopeLocal = "local"

// Environment variable names consumed during resolution.
const (
	// EnvXDGConfigHome is the XDG base-directory config home.
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	// EnvProgramData is the Windows-wide shared configuration root.
	EnvProgramData = "PROGRAMDATA"
	// EnvPath is the executable search path, scanned on Windows to locate
	// the git installation.
	EnvPath = "PATH"
)

type (
	// Snapshot is the immutable set of resolved directories for one
	// resolution request. Each field is either absent or a non-empty,
	// non-whitespace string; construction normalizes blank input to absent.
	Snapshot struct {
		home          string
		xdgConfigHome string
		programData   string
		system        string
	}

	// Resolver constructs Snapshots from the process environment. The
	// environment source and platform tag are injectable so tests can
	// exercise both platform branches with deterministic values.
	Resolver struct {
		src  Source
		goos string
	}
)

// Empty is the shared all-absent snapshot returned for the local scope.
// It is reused, never reconstructed, and safe for concurrent reads.
var Empty = &Snapshot{}

// NewResolver returns a Resolver backed by the live process environment
// and the current platform.
func NewResolver() *Resolver {
	return &Resolver{src: OSSource{}, goos: runtime.GOOS}
}

// NewResolverWith returns a Resolver with an explicit environment source
// and platform tag. Tests use this to exercise both platform branches
// with deterministic values; production code uses NewResolver.
func NewResolverWith(src Source, goos string) *Resolver {
	return &Resolver{src: src, goos: goos}
}

// ForScope resolves the directory snapshot for a configuration scope.
//
// An empty scope means "use the ambient process environment". The reserved
// "local" token (compared case-insensitively) yields the shared Empty
// snapshot. Any other value is a caller error and returns
// *UnsupportedScopeError.
func (r *Resolver) ForScope(scope string) (*Snapshot, error) {
	switch {
	case scope == "":
		return r.FromProcessEnvironment(), nil
	case strings.EqualFold(scope, ScopeLocal):
		return Empty, nil
	default:
		return nil, &UnsupportedScopeError{Scope: scope}
	}
}

// FromProcessEnvironment resolves a snapshot from ambient process state.
// Every lookup degrades to absent on failure; this call itself never fails.
func (r *Resolver) FromProcessEnvironment() *Snapshot {
	home, err := r.src.UserHomeDir()
	if err != nil {
		// The platform cannot supply a user profile; home stays absent.
		home = ""
	}

	return newSnapshot(
		home,
		r.getenv(EnvXDGConfigHome),
		r.getenv(EnvProgramData),
		r.systemDir(),
	)
}

// getenv reads a variable through the injected source, converting lookup
// failure to "unset". Environment discovery is best-effort throughout.
func (r *Resolver) getenv(key string) string {
	v, err := r.src.Getenv(key)
	if err != nil {
		return ""
	}
	return v
}

func newSnapshot(home, xdgConfigHome, programData, system string) *Snapshot {
	return &Snapshot{
		home:          normalize(home),
		xdgConfigHome: normalize(xdgConfigHome),
		programData:   normalize(programData),
		system:        normalize(system),
	}
}

// normalize maps blank or whitespace-only values to absent.
func normalize(v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return v
}

// HomeDir returns the user's home/profile directory, if resolved.
func (s *Snapshot) HomeDir() (string, bool) {
	return s.home, s.home != ""
}

// XDGConfigHomeDir returns the XDG base-directory config home, if set.
func (s *Snapshot) XDGConfigHomeDir() (string, bool) {
	return s.xdgConfigHome, s.xdgConfigHome != ""
}

// ProgramDataDir returns the platform-wide shared configuration root, if set.
func (s *Snapshot) ProgramDataDir() (string, bool) {
	return s.programData, s.programData != ""
}

// SystemDir returns the directory holding git-wide configuration
// (conceptually <install>/etc or /etc), if discovered.
func (s *Snapshot) SystemDir() (string, bool) {
	return s.system, s.system != ""
}

// HomeForPathExpansion returns the home directory needed to expand a
// ~/-relative path. When the snapshot has no home directory (always the
// case for the local scope) it returns *HomeRelativePathError carrying the
// offending path, which is how local-scope snapshots block home-relative
// configuration references.
func (s *Snapshot) HomeForPathExpansion(path string) (string, error) {
	if s.home == "" {
		return "", &HomeRelativePathError{Path: path}
	}
	return s.home, nil
}
