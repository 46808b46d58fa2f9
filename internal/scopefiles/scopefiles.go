// SPDX-License-Identifier: MPL-2.0

// Package scopefiles enumerates the configuration files git would consult
// for a configuration scope, built on the directories resolved by gitenv.
// It constructs candidate paths only; parsing and merging stay with git.
package scopefiles

import (
	"os"
	"path/filepath"

	"gitscope-cli/internal/gitenv"
	"gitscope-cli/pkg/types"
)

// File names and segments fixed by git's conventions.
const (
	// systemFileName is the file under the system directory.
	systemFileName = "gitconfig"
	// globalDotFileName is the classic per-user file in the home directory.
	globalDotFileName = ".gitconfig"
	// localFileName is the file inside a repository's git directory.
	localFileName = "config"
)

// DefaultGitDir is the git directory assumed for the local scope when the
// caller does not name one. Repository discovery is deliberately not
// performed here.
const DefaultGitDir = ".git"

// Candidate is one configuration file git would read for a scope.
// Candidates for a scope are ordered the way git reads them: a later
// candidate overrides an earlier one.
type Candidate struct {
	Scope  types.ScopeName
	Path   types.FilesystemPath
	Exists bool
}

// ForScope lists the candidate configuration files for one scope.
//
// The gitDir argument applies to the local scope only and defaults to
// DefaultGitDir when empty. Scopes whose backing directories were not
// resolved yield no candidates rather than an error; only an unrecognized
// scope name fails.
func ForScope(snap *gitenv.Snapshot, scope types.ScopeName, gitDir string) ([]Candidate, error) {
	if ok, errs := scope.IsValid(); !ok {
		return nil, errs[0]
	}

	switch scope.Canonical() {
	case types.ScopeSystem:
		return systemCandidates(snap), nil
	case types.ScopeGlobal:
		return globalCandidates(snap), nil
	default:
		return localCandidates(gitDir), nil
	}
}

// All lists candidates for every scope in precedence order
// (system, then global, then local).
func All(snap *gitenv.Snapshot, localSnap *gitenv.Snapshot, gitDir string) ([]Candidate, error) {
	var out []Candidate
	for _, scope := range types.Scopes() {
		src := snap
		if scope == types.ScopeLocal {
			src = localSnap
		}
		cands, err := ForScope(src, scope, gitDir)
		if err != nil {
			return nil, err
		}
		out = append(out, cands...)
	}
	return out, nil
}

func systemCandidates(snap *gitenv.Snapshot) []Candidate {
	system, ok := snap.SystemDir()
	if !ok {
		return nil
	}
	return []Candidate{candidate(types.ScopeSystem, filepath.Join(system, systemFileName))}
}

// globalCandidates follows git's read order for the global scope: the XDG
// location first, then ~/.gitconfig (which therefore wins on conflicts).
// When XDG_CONFIG_HOME is unset git falls back to ~/.config/git/config.
func globalCandidates(snap *gitenv.Snapshot) []Candidate {
	var out []Candidate

	if xdg, ok := snap.XDGConfigHomeDir(); ok {
		out = append(out, candidate(types.ScopeGlobal, filepath.Join(xdg, "git", localFileName)))
	} else if home, ok := snap.HomeDir(); ok {
		out = append(out, candidate(types.ScopeGlobal, filepath.Join(home, ".config", "git", localFileName)))
	}

	if home, ok := snap.HomeDir(); ok {
		out = append(out, candidate(types.ScopeGlobal, filepath.Join(home, globalDotFileName)))
	}
	return out
}

func localCandidates(gitDir string) []Candidate {
	if gitDir == "" {
		gitDir = DefaultGitDir
	}
	return []Candidate{candidate(types.ScopeLocal, filepath.Join(gitDir, localFileName))}
}

func candidate(scope types.ScopeName, path string) Candidate {
	return Candidate{
		Scope:  scope,
		Path:   types.FilesystemPath(path),
		Exists: fileExists(path),
	}
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
