// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"gitscope-cli/internal/gitenv"
	"gitscope-cli/internal/issue"
	"gitscope-cli/internal/scopefiles"
	"gitscope-cli/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// pathJSON is the machine-readable form of one candidate config file.
type pathJSON struct {
	Scope  string `json:"scope"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// newPathsCommand creates the `gitscope paths` command.
func newPathsCommand() *cobra.Command {
	var (
		scope   string
		gitDir  string
		all     bool
		jsonOut bool
	)

	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: "List the candidate configuration files for a scope",
		Long: `List the candidate configuration files git would consult for a scope.

Candidates are printed in read order: within a scope, a later file
overrides an earlier one. Repository discovery is not performed; the local
scope uses --git-dir (default ".git") verbatim.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return runPathsAll(gitDir, jsonOut || cfg.OutputFormat == "json")
			}
			return runPaths(scope, gitDir, jsonOut || cfg.OutputFormat == "json")
		},
	}

	pathsCmd.Flags().StringVar(&scope, "scope", "global", "configuration scope (system, global, local)")
	pathsCmd.Flags().StringVar(&gitDir, "git-dir", "", `git directory for the local scope (default ".git")`)
	pathsCmd.Flags().BoolVar(&all, "all", false, "list candidates for every scope")
	pathsCmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")

	return pathsCmd
}

func runPaths(scope, gitDir string, jsonOut bool) error {
	name := types.ScopeName(scope).Canonical()

	snap, err := snapshotFor(name)
	if err != nil {
		return err
	}

	cands, err := scopefiles.ForScope(snap, name, resolveGitDir(gitDir))
	if err != nil {
		renderIssue(issue.UnsupportedScopeId)
		return issue.NewErrorContext().
			WithOperation("list configuration files").
			WithResource(scope).
			WithSuggestion("Use one of: system, global, local").
			Wrap(err).
			BuildError()
	}

	log.Debug("listed candidates", "scope", name, "count", len(cands))
	return printCandidates(cands, jsonOut)
}

func runPathsAll(gitDir string, jsonOut bool) error {
	resolver := gitenv.NewResolver()

	ambient := resolver.FromProcessEnvironment()
	local, err := resolver.ForScope(gitenv.ScopeLocal)
	if err != nil {
		return err
	}

	cands, err := scopefiles.All(ambient, local, resolveGitDir(gitDir))
	if err != nil {
		return err
	}
	return printCandidates(cands, jsonOut)
}

// snapshotFor resolves the environment a scope's candidates are built
// from. The local scope maps to the reserved resolver token; system and
// global read the ambient process environment.
func snapshotFor(name types.ScopeName) (*gitenv.Snapshot, error) {
	resolverScope := ""
	if name == types.ScopeLocal {
		resolverScope = gitenv.ScopeLocal
	}
	return gitenv.NewResolver().ForScope(resolverScope)
}

// resolveGitDir applies the configured default when --git-dir is not given.
func resolveGitDir(gitDir string) string {
	if gitDir != "" {
		return gitDir
	}
	return cfg.DefaultGitDir
}

func printCandidates(cands []scopefiles.Candidate, jsonOut bool) error {
	if jsonOut {
		out := make([]pathJSON, 0, len(cands))
		for _, c := range cands {
			out = append(out, pathJSON{
				Scope:  c.Scope.String(),
				Path:   c.Path.String(),
				Exists: c.Exists,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(cands) == 0 {
		fmt.Println(SubtitleStyle.Render("(no candidate files: backing directories not resolved)"))
		return nil
	}

	for _, c := range cands {
		marker := SubtitleStyle.Render("absent")
		if c.Exists {
			marker = ValueStyle.Render("exists")
		}
		fmt.Printf("%s  %s  [%s]\n", KeyStyle.Render(string(c.Scope)), c.Path, marker)
	}
	return nil
}
