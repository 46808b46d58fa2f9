// SPDX-License-Identifier: MPL-2.0

package gitenv

import (
	"os"
	"path/filepath"
	"strings"

	"gitscope-cli/pkg/platform"
)

// EnvTestSystemDir overrides the fixed /etc system directory on
// non-Windows platforms. It exists only to support isolated testing and
// has no Windows counterpart.
const EnvTestSystemDir = "GITSCOPE_TEST_SYSTEM_DIR"

// Launcher filenames probed on PATH to locate a git installation on
// Windows. The executable form is always preferred over the script form:
// the full PATH is exhausted for git.exe before git.cmd is tried at all.
const (
	primaryLauncher   = "git.exe"
	secondaryLauncher = "git.cmd"
)

const unixSystemDir = "/etc"

// systemDir discovers the directory holding git-wide configuration.
// The platform branch is picked once from the resolver's platform tag.
func (r *Resolver) systemDir() string {
	if platform.IsWindowsLike(r.goos) {
		return r.windowsSystemDir()
	}

	if override := strings.TrimSpace(r.getenv(EnvTestSystemDir)); override != "" {
		return override
	}
	return unixSystemDir
}

// windowsSystemDir computes <git-installation-root>/etc, locating the
// installation root by scanning PATH for the git launcher. A PATH entry E
// containing the launcher marks E's parent as the installation root
// (launchers live in <install>/cmd or <install>/bin).
//
// Returns "" when no launcher is found anywhere on PATH. A registry probe
// of the Git for Windows install location would be the natural fallback
// here, but PATH scanning is the only supported mechanism.
func (r *Resolver) windowsSystemDir() string {
	entries := r.pathEntries()

	for _, launcher := range []string{primaryLauncher, secondaryLauncher} {
		for _, dir := range entries {
			if !fileExists(filepath.Join(dir, launcher)) {
				continue
			}
			return filepath.Join(filepath.Dir(dir), "etc")
		}
	}
	return ""
}

// pathEntries splits PATH into its ordered directory list. An unreadable
// PATH yields an empty list; discovery must never raise.
func (r *Resolver) pathEntries() []string {
	v, err := r.src.Getenv(EnvPath)
	if err != nil {
		return nil
	}

	var entries []string
	for _, e := range filepath.SplitList(v) {
		if e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
