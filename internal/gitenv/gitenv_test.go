// SPDX-License-Identifier: MPL-2.0

package gitenv

import (
	"errors"
	"strings"
	"testing"

	"gitscope-cli/pkg/platform"
)

func unixResolver(src Source) *Resolver {
	return NewResolverWith(src, platform.Linux)
}

func TestForScope_LocalReturnsSharedEmptySnapshot(t *testing.T) {
	t.Parallel()

	r := unixResolver(MapSource{Home: "/home/u"})

	for _, scope := range []string{"local", "LOCAL", "Local", "lOcAl"} {
		snap, err := r.ForScope(scope)
		if err != nil {
			t.Fatalf("ForScope(%q) returned error: %v", scope, err)
		}
		if snap != Empty {
			t.Errorf("ForScope(%q) = %p, want the shared Empty instance %p", scope, snap, Empty)
		}
		if _, ok := snap.HomeDir(); ok {
			t.Errorf("ForScope(%q): home should be absent", scope)
		}
		if _, ok := snap.XDGConfigHomeDir(); ok {
			t.Errorf("ForScope(%q): xdg config home should be absent", scope)
		}
		if _, ok := snap.ProgramDataDir(); ok {
			t.Errorf("ForScope(%q): program data should be absent", scope)
		}
		if _, ok := snap.SystemDir(); ok {
			t.Errorf("ForScope(%q): system dir should be absent", scope)
		}
	}
}

func TestForScope_EmptyScopeMatchesProcessEnvironment(t *testing.T) {
	t.Parallel()

	src := MapSource{
		Home: "/home/u",
		Env: map[string]string{
			EnvXDGConfigHome: "/home/u/.config",
			EnvProgramData:   `C:\ProgramData`,
		},
	}
	r := unixResolver(src)

	fromScope, err := r.ForScope("")
	if err != nil {
		t.Fatalf("ForScope(\"\") returned error: %v", err)
	}
	direct := r.FromProcessEnvironment()

	if *fromScope != *direct {
		t.Errorf("ForScope(\"\") = %+v, want %+v", fromScope, direct)
	}
}

func TestForScope_UnsupportedScope(t *testing.T) {
	t.Parallel()

	r := unixResolver(MapSource{})

	for _, scope := range []string{"global", "system", "bogus", "locale"} {
		_, err := r.ForScope(scope)
		if err == nil {
			t.Fatalf("ForScope(%q) should fail", scope)
		}
		if !errors.Is(err, ErrUnsupportedScope) {
			t.Errorf("ForScope(%q) error should wrap ErrUnsupportedScope, got: %v", scope, err)
		}
		var scopeErr *UnsupportedScopeError
		if !errors.As(err, &scopeErr) {
			t.Fatalf("ForScope(%q) error should be *UnsupportedScopeError, got: %T", scope, err)
		}
		if scopeErr.Scope != scope {
			t.Errorf("UnsupportedScopeError.Scope = %q, want %q", scopeErr.Scope, scope)
		}
	}
}

func TestFromProcessEnvironment_Population(t *testing.T) {
	t.Parallel()

	src := MapSource{
		Home: "/home/u",
		Env: map[string]string{
			EnvXDGConfigHome: "/home/u/.config",
			EnvProgramData:   `C:\ProgramData`,
		},
	}
	snap := unixResolver(src).FromProcessEnvironment()

	if home, ok := snap.HomeDir(); !ok || home != "/home/u" {
		t.Errorf("HomeDir() = %q, %v; want /home/u, true", home, ok)
	}
	if xdg, ok := snap.XDGConfigHomeDir(); !ok || xdg != "/home/u/.config" {
		t.Errorf("XDGConfigHomeDir() = %q, %v; want /home/u/.config, true", xdg, ok)
	}
	if pd, ok := snap.ProgramDataDir(); !ok || pd != `C:\ProgramData` {
		t.Errorf("ProgramDataDir() = %q, %v; want C:\\ProgramData, true", pd, ok)
	}
	if sys, ok := snap.SystemDir(); !ok || sys != "/etc" {
		t.Errorf("SystemDir() = %q, %v; want /etc, true", sys, ok)
	}
}

func TestFromProcessEnvironment_BlankValuesAreAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  MapSource
	}{
		{"unset", MapSource{}},
		{"empty", MapSource{Env: map[string]string{EnvXDGConfigHome: "", EnvProgramData: ""}}},
		{"whitespace", MapSource{Env: map[string]string{EnvXDGConfigHome: "   ", EnvProgramData: "\t "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snap := unixResolver(tt.src).FromProcessEnvironment()

			if xdg, ok := snap.XDGConfigHomeDir(); ok {
				t.Errorf("XDGConfigHomeDir() = %q, want absent", xdg)
			}
			if pd, ok := snap.ProgramDataDir(); ok {
				t.Errorf("ProgramDataDir() = %q, want absent", pd)
			}
		})
	}
}

func TestFromProcessEnvironment_LookupFailuresDegradeToAbsent(t *testing.T) {
	t.Parallel()

	src := MapSource{
		HomeErr: errors.New("no profile"),
		Errs: map[string]error{
			EnvXDGConfigHome: errors.New("unreadable"),
			EnvProgramData:   errors.New("unreadable"),
		},
	}
	snap := unixResolver(src).FromProcessEnvironment()

	if home, ok := snap.HomeDir(); ok {
		t.Errorf("HomeDir() = %q, want absent when the platform cannot supply one", home)
	}
	if _, ok := snap.XDGConfigHomeDir(); ok {
		t.Error("XDGConfigHomeDir() should be absent on lookup failure")
	}
	if _, ok := snap.ProgramDataDir(); ok {
		t.Error("ProgramDataDir() should be absent on lookup failure")
	}
}

func TestHomeForPathExpansion(t *testing.T) {
	t.Parallel()

	t.Run("empty snapshot rejects home-relative paths", func(t *testing.T) {
		t.Parallel()

		_, err := Empty.HomeForPathExpansion("~/x")
		if err == nil {
			t.Fatal("HomeForPathExpansion on Empty should fail")
		}
		if !errors.Is(err, ErrHomeRelativePath) {
			t.Errorf("error should wrap ErrHomeRelativePath, got: %v", err)
		}
		var pathErr *HomeRelativePathError
		if !errors.As(err, &pathErr) {
			t.Fatalf("error should be *HomeRelativePathError, got: %T", err)
		}
		if pathErr.Path != "~/x" {
			t.Errorf("HomeRelativePathError.Path = %q, want %q", pathErr.Path, "~/x")
		}
	})

	t.Run("snapshot with home returns it", func(t *testing.T) {
		t.Parallel()

		snap := unixResolver(MapSource{Home: "/home/u"}).FromProcessEnvironment()
		home, err := snap.HomeForPathExpansion("~/x")
		if err != nil {
			t.Fatalf("HomeForPathExpansion returned error: %v", err)
		}
		if home != "/home/u" {
			t.Errorf("HomeForPathExpansion = %q, want /home/u", home)
		}
	})
}

func TestHomeRelativePathError_MentionsLocalScope(t *testing.T) {
	t.Parallel()

	err := &HomeRelativePathError{Path: "~/cfg"}
	msg := err.Error()
	for _, want := range []string{`"~/cfg"`, `"local"`, "configuration scope"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
}
