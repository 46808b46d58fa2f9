// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gitscope-cli/internal/gitenv"
	"gitscope-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newExpandCommand creates the `gitscope expand` command.
func newExpandCommand() *cobra.Command {
	var scope string

	expandCmd := &cobra.Command{
		Use:   "expand <path>",
		Short: "Expand a ~/-relative path against a scope's environment",
		Long: `Expand a ~/-relative path against the environment resolved for a scope.

Expansion needs a home directory. The local scope resolves without one,
so home-relative paths are rejected there with a descriptive error -- the
same behavior git applies to repository-local configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(args[0], scope)
		},
	}

	expandCmd.Flags().StringVar(&scope, "scope", "", `configuration scope ("" for ambient environment, or "local")`)

	return expandCmd
}

func runExpand(path, scope string) error {
	snap, err := gitenv.NewResolver().ForScope(scope)
	if err != nil {
		var unsupported *gitenv.UnsupportedScopeError
		if errors.As(err, &unsupported) {
			renderIssue(issue.UnsupportedScopeId)
		}
		return issue.NewErrorContext().
			WithOperation("resolve configuration scope").
			WithResource(scope).
			Wrap(err).
			BuildError()
	}

	expanded, err := expandHomeRelative(snap, path)
	if err != nil {
		var homeErr *gitenv.HomeRelativePathError
		if errors.As(err, &homeErr) {
			renderIssue(issue.HomeRelativePathId)
		}
		return issue.NewErrorContext().
			WithOperation("expand path").
			WithResource(path).
			WithSuggestion("Use an absolute path, or a scope that resolves a home directory").
			Wrap(err).
			BuildError()
	}

	fmt.Println(expanded)
	return nil
}

// expandHomeRelative substitutes the snapshot's home directory into a
// ~/-relative path. Non-home-relative paths pass through unchanged.
func expandHomeRelative(snap *gitenv.Snapshot, path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := snap.HomeForPathExpansion(path)
	if err != nil {
		return "", err
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[len("~/"):]), nil
}
